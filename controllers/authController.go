package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicpulse/actions"
	"civicpulse/middlewares"
	"civicpulse/models"
	"civicpulse/triage"
	authUtils "civicpulse/utils"
)

// LoginUser signs the caller into the portal named in the body. Every
// credential is accepted.
func (ctl *Controller) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"max=128"`
		Name     string `json:"name" binding:"max=50"`
		Role     string `json:"role" binding:"required,portal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, _ := models.ParseRole(input.Role)

	ctx, cancel := requestContext(c)
	defer cancel()

	account, err := ctl.gateway.Login(ctx, actions.LoginRequest{Email: input.Email, Name: input.Name, Role: role})
	if err != nil {
		serverError(c, "Something went wrong", err)
		return
	}
	ctl.issueToken(c, http.StatusOK, account)
}

// RegisterUser creates a citizen account
func (ctl *Controller) RegisterUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	account, err := ctl.gateway.Register(ctx, actions.LoginRequest{Email: input.Email, Name: input.Name, Role: models.RoleCitizen})
	if err != nil {
		serverError(c, "Something went wrong", err)
		return
	}
	ctl.issueToken(c, http.StatusCreated, account)
}

func (ctl *Controller) issueToken(c *gin.Context, status int, account models.Account) {
	token, err := authUtils.GenerateToken(account, ctl.cfg.JWTSecret, ctl.cfg.TokenTTL())
	if err != nil {
		serverError(c, "Something went wrong", err)
		return
	}

	// For production, don't set domain to allow cross-origin cookies
	domain := ctl.cfg.Domain
	if ctl.cfg.Production() {
		domain = ""
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AuthCookie,
		Value:    token,
		MaxAge:   int(ctl.cfg.TokenTTL().Seconds()),
		Path:     "/",
		Domain:   domain,
		Secure:   ctl.cfg.Production(),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	c.JSON(status, gin.H{
		"token":        token,
		"user":         account,
		"statusLabels": models.StatusLabels(account.Role),
	})
}

// GetMe returns the authenticated account
func (ctl *Controller) GetMe(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	resp := gin.H{
		"user":         account,
		"statusLabels": models.StatusLabels(account.Role),
	}
	if account.Role == models.RoleCitizen {
		ctx, cancel := requestContext(c)
		defer cancel()
		complaints, err := ctl.store.Complaints(ctx)
		if err != nil {
			serverError(c, "Failed to retrieve complaints", err)
			return
		}
		resp["stats"], _ = triage.Standing(complaints, account.Name)
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutUser clears the auth_token cookie
func (ctl *Controller) LogoutUser(c *gin.Context) {
	c.SetCookie(middlewares.AuthCookie, "", -1, "/", ctl.cfg.Domain, ctl.cfg.Production(), true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
