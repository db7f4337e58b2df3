package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civicpulse/session"
	"civicpulse/triage"
)

func viewResponse(v session.View) gin.H {
	inspected, _ := v.InspectedID()
	panel, _ := v.OpenPanel()
	return gin.H{
		"inspected": inspected,
		"panel":     panel,
		"query":     v.Query,
		"sort":      v.Sort,
		"updatedAt": v.UpdatedAt,
	}
}

// GetView returns the caller's saved view state, empty when nothing was saved
func (ctl *Controller) GetView(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	view, _, err := ctl.sessions.Get(ctx, account.ID)
	if err != nil {
		serverError(c, "Failed to load view state", err)
		return
	}
	c.JSON(http.StatusOK, viewResponse(view))
}

// UpdateView inspects a record or opens a panel; the two are mutually exclusive
func (ctl *Controller) UpdateView(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	var input struct {
		Inspect string `json:"inspect" binding:"max=50"`
		Panel   string `json:"panel" binding:"omitempty,panel"`
		Clear   bool   `json:"clear"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Inspect != "" && input.Panel != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Choose either a record to inspect or a panel to open"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	view, _, err := ctl.sessions.Get(ctx, account.ID)
	if err != nil {
		serverError(c, "Failed to load view state", err)
		return
	}
	switch {
	case input.Clear:
		view.Clear()
	case input.Inspect != "":
		view.Inspect(input.Inspect)
	case input.Panel != "":
		panel, _ := triage.ParsePanel(input.Panel)
		view.Open(panel)
	}
	view.UpdatedAt = time.Now().UTC()
	if err := ctl.sessions.Put(ctx, account.ID, view); err != nil {
		serverError(c, "Failed to save view state", err)
		return
	}
	c.JSON(http.StatusOK, viewResponse(view))
}

// ClearView forgets the caller's view state
func (ctl *Controller) ClearView(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ctl.sessions.Delete(ctx, account.ID); err != nil {
		serverError(c, "Failed to clear view state", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "View state cleared"})
}
