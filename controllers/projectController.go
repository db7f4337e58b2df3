package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicpulse/actions"
	"civicpulse/cache"
	"civicpulse/models"
	"civicpulse/session"
	"civicpulse/triage"
)

type projectListQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=all active completed upcoming sponsored"`
	Category  string `form:"category" binding:"max=100"`
	Q         string `form:"q" binding:"max=200"`
	Sponsored bool   `form:"sponsored"`
	Sort      string `form:"sort" binding:"omitempty,oneof=recency time recent newest funding remaining"`
}

// ListProjects returns the CSR project catalogue with filtering, sorting and pagination
func (ctl *Controller) ListProjects(c *gin.Context) {
	var in projectListQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := triage.ProjectQuery{Category: in.Category, Text: in.Q, SponsoredOnly: in.Sponsored}
	if ps, ok := models.ParseProjectStatus(in.Status); ok {
		q.Status = ps
	}
	sortKey, err := triage.ParseSortKey(in.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	projects, err := ctl.store.Projects(ctx)
	if err != nil {
		serverError(c, "Failed to retrieve projects", err)
		return
	}
	sorted, err := triage.SortProjects(triage.FilterProjects(projects, q), sortKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := pageParams(c, len(sorted))

	views := make([]projectView, 0, page.Limit)
	for _, p := range triage.Window(sorted, page) {
		views = append(views, newProjectView(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"projects":      views,
		"totalProjects": page.Total,
		"totalPages":    page.TotalPages,
		"currentPage":   page.Page,
		"limit":         page.Limit,
		"sort":          sortKey,
	})
}

// GetProject retrieves one project and marks it as the caller's inspected record
func (ctl *Controller) GetProject(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	project, found, err := ctl.store.Project(ctx, id)
	if err != nil {
		serverError(c, "Failed to retrieve project", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	ctl.rememberView(ctx, account.ID, func(v *session.View) { v.Inspect(id) })
	c.JSON(http.StatusOK, newProjectView(project))
}

// ProjectSummary returns the CSR analytics figures
func (ctl *Controller) ProjectSummary(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	summary, err := cache.Remember(ctx, ctl.cache, cache.Key("projects", "summary"), func() (triage.ProjectSummary, error) {
		projects, err := ctl.store.Projects(ctx)
		if err != nil {
			return triage.ProjectSummary{}, err
		}
		return triage.SummarizeProjects(projects), nil
	})
	if err != nil {
		serverError(c, "Failed to summarize projects", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SponsorProject pledges funds to a project that still needs them
func (ctl *Controller) SponsorProject(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	var input struct {
		Amount  int64  `json:"amount" binding:"required,gt=0"`
		Message string `json:"message" binding:"max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	project, found, err := ctl.store.Project(ctx, c.Param("id"))
	if err != nil {
		serverError(c, "Failed to retrieve project", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if project.FullyFunded() {
		c.JSON(http.StatusConflict, gin.H{"error": "Project is already fully funded"})
		return
	}
	if input.Amount > project.AmountRemaining() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Amount exceeds the remaining funding",
			"amountRemaining": project.AmountRemaining(),
		})
		return
	}

	receipt, err := ctl.gateway.Sponsor(ctx, account, actions.SponsorRequest{
		ProjectID: project.ID,
		Amount:    input.Amount,
		Message:   input.Message,
	})
	if err != nil {
		serverError(c, "Failed to sponsor project", err)
		return
	}

	ctl.rememberView(ctx, account.ID, func(v *session.View) { v.Clear() })

	c.JSON(http.StatusOK, gin.H{
		"message":         "Sponsorship confirmed",
		"receipt":         receipt,
		"amount":          input.Amount,
		"amountRemaining": project.AmountRemaining() - input.Amount,
	})
}
