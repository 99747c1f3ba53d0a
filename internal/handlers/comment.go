package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/apperr"
	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	blogID, ok := parseID(c, "blogId")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found", nil)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Comment content is required", nil)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), blogID, middleware.ActingUserID(c), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "Blog not found", nil)
		case errors.Is(err, apperr.ErrValidation):
			respond(c, http.StatusBadRequest, msg(err), nil)
		default:
			serverError(c, "Error creating comment", err)
		}
		return
	}

	respond(c, http.StatusCreated, "Comment added successfully", gin.H{"comment": comment})
}

func (h *CommentHandler) ListByBlog(c *gin.Context) {
	blogID, ok := parseID(c, "blogId")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found", nil)
		return
	}

	comments, err := h.comments.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respond(c, http.StatusNotFound, "Blog not found", nil)
			return
		}
		serverError(c, "Error fetching comments", err)
		return
	}

	respond(c, http.StatusOK, "Comments fetched successfully", gin.H{"comments": comments})
}

func (h *CommentHandler) Edit(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		respond(c, http.StatusNotFound, "Comment not found", nil)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Comment content is required", nil)
		return
	}

	comment, err := h.comments.Edit(c.Request.Context(), commentID, middleware.ActingUserID(c), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "Comment not found", nil)
		case errors.Is(err, apperr.ErrForbidden):
			respond(c, http.StatusForbidden, "Unauthorized to edit this comment", nil)
		case errors.Is(err, apperr.ErrValidation):
			respond(c, http.StatusBadRequest, msg(err), nil)
		default:
			serverError(c, "Error editing comment", err)
		}
		return
	}

	respond(c, http.StatusOK, "Comment updated successfully", gin.H{"comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		respond(c, http.StatusNotFound, "Comment not found", nil)
		return
	}

	err := h.comments.Delete(c.Request.Context(), commentID, middleware.ActingUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "Comment not found", nil)
		case errors.Is(err, apperr.ErrForbidden):
			respond(c, http.StatusForbidden, "Unauthorized to delete this comment", nil)
		default:
			serverError(c, "Error deleting comment", err)
		}
		return
	}

	respond(c, http.StatusOK, "Comment deleted successfully", nil)
}
