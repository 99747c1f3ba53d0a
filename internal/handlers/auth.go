package handlers

import (
	"errors"
	"net/http"
	"time"

	"inkwell/internal/apperr"
	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users    *services.UserService
	tokenTTL time.Duration
}

func NewAuthHandler(users *services.UserService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, tokenTTL: tokenTTL}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "All fields are required", nil)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			respond(c, http.StatusConflict, "Email already exists", nil)
		case errors.Is(err, apperr.ErrValidation):
			respond(c, http.StatusBadRequest, msg(err), nil)
		default:
			serverError(c, "Failed to register", err)
		}
		return
	}

	respond(c, http.StatusCreated, "Account created successfully", gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	user, token, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrValidation):
			respond(c, http.StatusBadRequest, msg(err), nil)
		case errors.Is(err, apperr.ErrUnauthenticated):
			// One message for unknown email and wrong password both.
			respond(c, http.StatusBadRequest, "Incorrect email or password", nil)
		default:
			serverError(c, "Failed to login", err)
		}
		return
	}

	c.SetCookie(middleware.TokenCookie, token, int(h.tokenTTL.Seconds()), "/", "", false, true)
	respond(c, http.StatusOK, "Welcome back "+user.FirstName, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	respond(c, http.StatusOK, "Logged out successfully", nil)
}
