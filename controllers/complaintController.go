package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civicpulse/actions"
	"civicpulse/cache"
	"civicpulse/models"
	"civicpulse/session"
	"civicpulse/triage"
)

type complaintListQuery struct {
	Status   string `form:"status" binding:"max=50"`
	Priority string `form:"priority" binding:"omitempty,oneof=all critical high medium low"`
	Category string `form:"category" binding:"max=100"`
	Zone     string `form:"zone" binding:"max=100"`
	Q        string `form:"q" binding:"max=200"`
	Sort     string `form:"sort" binding:"omitempty,sortkey"`
	Open     *bool  `form:"open"`
}

// complaintQuery binds the list filters, translating the caller's status
// label. The authority board hides resolved complaints unless open=false.
func complaintQuery(c *gin.Context, role models.Role) (triage.ComplaintQuery, triage.SortKey, error) {
	var in complaintListQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		return triage.ComplaintQuery{}, "", err
	}

	q := triage.ComplaintQuery{
		Category: in.Category,
		Zone:     in.Zone,
		Text:     in.Q,
		OpenOnly: role == models.RoleAuthority,
	}
	if in.Open != nil {
		q.OpenOnly = *in.Open
	}
	if cat, ok := models.ParseCategory(in.Category); ok {
		q.Category = string(cat)
	}
	if in.Status != "" && !strings.EqualFold(in.Status, triage.All) {
		st, err := models.ParseStatus(role, in.Status)
		if err != nil {
			return q, "", err
		}
		q.Status = st
	}
	if in.Priority != "" {
		q.Priority = models.Priority(in.Priority)
	}
	sortKey, err := triage.ParseSortKey(in.Sort)
	if err != nil {
		return q, "", err
	}
	return q, sortKey, nil
}

// ListComplaints handles filtering, sorting and pagination of the complaint list
func (ctl *Controller) ListComplaints(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	q, sortKey, err := complaintQuery(c, account.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	complaints, err := ctl.store.Complaints(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve complaints", err)
		return
	}
	workers, pool, err := ctl.workerIndex(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve workers", err)
		return
	}

	filtered := triage.FilterComplaints(complaints, q, triage.WorkerNames(pool))
	sorted, err := triage.SortComplaints(filtered, sortKey, ctl.slaThreshold())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := pageParams(c, len(sorted))

	ctl.rememberView(ctx, account.ID, func(v *session.View) {
		v.Query, v.Sort = q, sortKey
	})

	c.JSON(http.StatusOK, gin.H{
		"complaints":      complaintViews(triage.Window(sorted, page), account.Role, workers, ctl.slaThreshold()),
		"totalComplaints": page.Total,
		"totalPages":      page.TotalPages,
		"currentPage":     page.Page,
		"limit":           page.Limit,
		"sort":            sortKey,
		"statusLabels":    models.StatusLabels(account.Role),
	})
}

// GetComplaint retrieves one complaint and marks it as the caller's inspected record
func (ctl *Controller) GetComplaint(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	complaint, found, err := ctl.store.Complaint(ctx, id)
	if err != nil {
		serverError(c, "Failed to retrieve complaint", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}
	workers, _, err := ctl.workerIndex(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve workers", err)
		return
	}

	ctl.rememberView(ctx, account.ID, func(v *session.View) { v.Inspect(id) })

	c.JSON(http.StatusOK, newComplaintView(complaint, account.Role, workers, ctl.slaThreshold()))
}

type summaryView struct {
	triage.Summary
	ByStatus map[string]int `json:"byStatus"`
}

// ComplaintSummary returns the KPI figures over the filtered complaint list
func (ctl *Controller) ComplaintSummary(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	q, _, err := complaintQuery(c, account.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	key := cache.Key("summary", string(account.Role), c.Request.URL.RawQuery)
	view, err := cache.Remember(ctx, ctl.cache, key, func() (summaryView, error) {
		complaints, err := ctl.store.Complaints(ctx)
		if err != nil {
			return summaryView{}, err
		}
		_, pool, err := ctl.workerIndex(ctx)
		if err != nil {
			return summaryView{}, err
		}
		s := triage.Summarize(triage.FilterComplaints(complaints, q, triage.WorkerNames(pool)))
		return summaryView{Summary: s, ByStatus: labelCounts(s.ByStatus, account.Role)}, nil
	})
	if err != nil {
		serverError(c, "Failed to summarize complaints", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type slaView struct {
	Violated     []complaintView `json:"violated"`
	NearDeadline []complaintView `json:"nearDeadline"`
	ThresholdHrs float64         `json:"thresholdHours"`
}

// SLAReport lists open complaints past or close to their deadline
func (ctl *Controller) SLAReport(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	q, _, err := complaintQuery(c, account.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	threshold := ctl.slaThreshold()
	key := cache.Key("sla", string(account.Role), c.Request.URL.RawQuery)
	view, err := cache.Remember(ctx, ctl.cache, key, func() (slaView, error) {
		complaints, err := ctl.store.Complaints(ctx)
		if err != nil {
			return slaView{}, err
		}
		workers, pool, err := ctl.workerIndex(ctx)
		if err != nil {
			return slaView{}, err
		}
		report := triage.BuildSLAReport(triage.FilterComplaints(complaints, q, triage.WorkerNames(pool)), threshold)
		return slaView{
			Violated:     complaintViews(report.Violated, account.Role, workers, threshold),
			NearDeadline: complaintViews(report.NearDeadline, account.Role, workers, threshold),
			ThresholdHrs: threshold.Hours(),
		}, nil
	})
	if err != nil {
		serverError(c, "Failed to build SLA report", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateComplaint submits a citizen report
func (ctl *Controller) CreateComplaint(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var input struct {
		Title       string   `json:"title" binding:"required,max=200"`
		Description string   `json:"description" binding:"required,max=1000"`
		Category    string   `json:"category" binding:"required,category"`
		Location    string   `json:"location" binding:"required,max=200"`
		Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,latitude"`
		Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,longitude"`
		Images      []string `json:"images,omitempty" binding:"max=5,dive,url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, _ := models.ParseCategory(input.Category)

	ctx, cancel := requestContext(c)
	defer cancel()

	receipt, err := ctl.gateway.SubmitReport(ctx, account, actions.ReportRequest{
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Images:      input.Images,
	})
	if err != nil {
		serverError(c, "Failed to submit report", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Report submitted",
		"receipt":  receipt,
		"status":   models.StatusReported.Label(account.Role),
		"category": category,
	})
}

var errNoEligibleWorker = errors.New("no available worker with spare capacity")

// AssignWorker assigns a worker to an open complaint. Without a workerId the
// recommended worker is used.
func (ctl *Controller) AssignWorker(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	var input struct {
		WorkerID string `json:"workerId" binding:"max=50"`
	}
	// An empty body asks for the recommended worker.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	complaint, found, err := ctl.store.Complaint(ctx, c.Param("id"))
	if err != nil {
		serverError(c, "Failed to retrieve complaint", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}
	if complaint.Status == models.StatusResolved {
		c.JSON(http.StatusConflict, gin.H{"error": "Complaint is already " + complaint.Status.Label(account.Role)})
		return
	}

	var worker models.Worker
	if input.WorkerID == "" {
		pool, err := ctl.store.Workers(ctx)
		if err != nil {
			serverError(c, "Failed to retrieve workers", err)
			return
		}
		if worker, ok = triage.RecommendWorker(pool); !ok {
			c.JSON(http.StatusConflict, gin.H{"error": errNoEligibleWorker.Error()})
			return
		}
	} else {
		worker, found, err = ctl.store.Worker(ctx, input.WorkerID)
		if err != nil {
			serverError(c, "Failed to retrieve worker", err)
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		if len(triage.Eligible([]models.Worker{worker})) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Worker " + worker.Name + " is not available"})
			return
		}
	}

	receipt, err := ctl.gateway.AssignWorker(ctx, account, complaint.ID, worker.ID)
	if err != nil {
		serverError(c, "Failed to assign worker", err)
		return
	}

	ctl.rememberView(ctx, account.ID, func(v *session.View) { v.Clear() })

	c.JSON(http.StatusOK, gin.H{
		"message": "Worker assigned",
		"receipt": receipt,
		"worker":  newWorkerView(worker),
		"status":  models.StatusAssigned.Label(account.Role),
	})
}

// MyComplaints lists the caller's own reports, newest activity first, with
// their leaderboard standing
func (ctl *Controller) MyComplaints(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	complaints, err := ctl.store.Complaints(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve complaints", err)
		return
	}
	workers, _, err := ctl.workerIndex(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve workers", err)
		return
	}

	mine := triage.Filter(complaints, triage.ReportedBy(account.Name))
	sorted, err := triage.SortComplaints(mine, triage.SortRecency, ctl.slaThreshold())
	if err != nil {
		serverError(c, "Failed to sort complaints", err)
		return
	}
	page := pageParams(c, len(sorted))
	standing, _ := triage.Standing(complaints, account.Name)

	c.JSON(http.StatusOK, gin.H{
		"complaints":      complaintViews(triage.Window(sorted, page), account.Role, workers, ctl.slaThreshold()),
		"totalComplaints": page.Total,
		"totalPages":      page.TotalPages,
		"currentPage":     page.Page,
		"limit":           page.Limit,
		"stats":           standing,
	})
}
