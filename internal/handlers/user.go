package handlers

import (
	"errors"
	"io"
	"net/http"

	"inkwell/internal/apperr"
	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UpdateProfile applies a partial profile edit from a multipart form. Only
// fields present in the form change; an attached photo goes through the
// uploader first.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.ActingUserID(c)

	var update services.ProfileUpdate
	update.FirstName = formField(c, "first_name")
	update.LastName = formField(c, "last_name")
	update.Occupation = formField(c, "occupation")
	update.Bio = formField(c, "bio")
	update.Instagram = formField(c, "instagram")
	update.Facebook = formField(c, "facebook")
	update.LinkedIn = formField(c, "linkedin")
	update.GitHub = formField(c, "github")

	var photo io.Reader
	var photoName string
	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		photo = file
		photoName = header.Filename
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, update, photo, photoName)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, apperr.ErrUpload):
			serverError(c, "Failed to upload photo", err)
		default:
			serverError(c, "Failed to update profile", err)
		}
		return
	}

	respond(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to fetch users", err)
		return
	}

	respond(c, http.StatusOK, "User list fetched successfully", gin.H{
		"total": len(users),
		"users": users,
	})
}

// formField distinguishes an absent form field from an empty one, preserving
// partial-update semantics.
func formField(c *gin.Context, name string) *string {
	if value, ok := c.GetPostForm(name); ok {
		return &value
	}
	return nil
}
