package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/utils"
)

const tokenLifetime = 24 * time.Hour

// Login authenticates a seeded or registered user and returns a bearer token.
func (o *Org) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	o.mu.Lock()
	rec, ok := o.users[req.Email]
	o.mu.Unlock()
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(req.Email, string(rec.role), tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{AccessToken: token, Role: rec.role})
}

// Register creates a new account and signs it in.
func (o *Org) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "email and password are required")
		return
	}

	o.mu.Lock()
	if _, exists := o.users[req.Email]; exists {
		o.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "user already exists", "")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		o.mu.Unlock()
		utils.JSONError(c, http.StatusInternalServerError, "failed to register", err.Error())
		return
	}
	role := RoleForEmail(req.Email)
	o.users[req.Email] = &userRecord{passwordHash: hash, role: role}
	o.mu.Unlock()

	token, err := utils.GenerateToken(req.Email, string(role), tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{AccessToken: token, Role: role})
}

// InitiateRegistration reports whether the email already has an account.
func (o *Org) InitiateRegistration(c *gin.Context) {
	var req models.InitiateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	o.mu.Lock()
	_, exists := o.users[req.Email]
	o.mu.Unlock()
	c.JSON(http.StatusOK, models.InitiateRegistrationResponse{Existing: exists})
}

// Token exchanges API credentials for a bearer token with manager rights.
func (o *Org) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	o.mu.Lock()
	secret, ok := o.apiKeys[req.APIKey]
	o.mu.Unlock()
	if !ok || secret != req.APISecret {
		utils.JSONError(c, http.StatusUnauthorized, "invalid api credentials", "")
		return
	}
	token, err := utils.GenerateToken("api:"+req.APIKey, string(models.RoleTravelManager), tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{AccessToken: token, Role: models.RoleTravelManager})
}
