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

type BlogHandler struct {
	blogs *services.BlogService
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type createBlogRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Blog title and category are required.", nil)
		return
	}

	blog, err := h.blogs.Create(c.Request.Context(), middleware.ActingUserID(c), req.Title, req.Category)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			respond(c, http.StatusBadRequest, "Blog title and category are required.", nil)
			return
		}
		serverError(c, "Failed to create blog", err)
		return
	}

	respond(c, http.StatusCreated, "Blog created successfully.", gin.H{"blog": blog})
}

// Update applies a partial edit from a multipart form, with an optional
// thumbnail file.
func (h *BlogHandler) Update(c *gin.Context) {
	blogID, ok := parseID(c, "blogId")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found!", nil)
		return
	}

	update := services.BlogUpdate{
		Title:       formField(c, "title"),
		Subtitle:    formField(c, "subtitle"),
		Description: formField(c, "description"),
		Category:    formField(c, "category"),
	}

	var thumbnail io.Reader
	var thumbnailName string
	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		thumbnail = file
		thumbnailName = header.Filename
	}

	blog, err := h.blogs.Update(c.Request.Context(), blogID, middleware.ActingUserID(c), update, thumbnail, thumbnailName)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "Blog not found!", nil)
		case errors.Is(err, apperr.ErrForbidden):
			respond(c, http.StatusForbidden, "Unauthorized to update this blog", nil)
		case errors.Is(err, apperr.ErrValidation):
			respond(c, http.StatusBadRequest, msg(err), nil)
		case errors.Is(err, apperr.ErrUpload):
			serverError(c, "Failed to upload thumbnail", err)
		default:
			serverError(c, "Error updating blog", err)
		}
		return
	}

	respond(c, http.StatusOK, "Blog updated successfully", gin.H{"blog": blog})
}

// TogglePublish sets the publish flag from the query value, or flips the
// current one when no value is supplied.
func (h *BlogHandler) TogglePublish(c *gin.Context) {
	blogID, ok := parseID(c, "blogId")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found!", nil)
		return
	}

	var explicit *bool
	switch c.Query("publish") {
	case "true":
		v := true
		explicit = &v
	case "false":
		v := false
		explicit = &v
	}

	published, err := h.blogs.SetPublished(c.Request.Context(), blogID, middleware.ActingUserID(c), explicit)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "Blog not found!", nil)
		case errors.Is(err, apperr.ErrForbidden):
			respond(c, http.StatusForbidden, "Unauthorized to update this blog", nil)
		default:
			serverError(c, "Failed to update status", err)
		}
		return
	}

	message := "Blog is Unpublished"
	if published {
		message = "Blog is Published"
	}
	respond(c, http.StatusOK, message, nil)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	blogID, ok := parseID(c, "id")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found", nil)
		return
	}

	err := h.blogs.Delete(c.Request.Context(), blogID, middleware.ActingUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			respond(c, http.StatusNotFound, "Blog not found", nil)
		case errors.Is(err, apperr.ErrForbidden):
			respond(c, http.StatusForbidden, "Unauthorized to delete this blog", nil)
		default:
			serverError(c, "Error deleting blog", err)
		}
		return
	}

	respond(c, http.StatusOK, "Blog deleted successfully", nil)
}

func (h *BlogHandler) Like(c *gin.Context) {
	blogID, ok := parseID(c, "id")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found", nil)
		return
	}

	if err := h.blogs.Like(c.Request.Context(), blogID, middleware.ActingUserID(c)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respond(c, http.StatusNotFound, "Blog not found", nil)
			return
		}
		serverError(c, "Error liking blog", err)
		return
	}

	respond(c, http.StatusOK, "Blog liked", nil)
}

func (h *BlogHandler) Dislike(c *gin.Context) {
	blogID, ok := parseID(c, "id")
	if !ok {
		respond(c, http.StatusNotFound, "Blog not found", nil)
		return
	}

	if err := h.blogs.Dislike(c.Request.Context(), blogID, middleware.ActingUserID(c)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respond(c, http.StatusNotFound, "Blog not found", nil)
			return
		}
		serverError(c, "Error disliking blog", err)
		return
	}

	respond(c, http.StatusOK, "Blog disliked", nil)
}

func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.blogs.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, "Error fetching blogs", err)
		return
	}

	respond(c, http.StatusOK, "Blogs fetched successfully", gin.H{"blogs": blogs})
}

func (h *BlogHandler) ListPublished(c *gin.Context) {
	blogs, err := h.blogs.ListPublished(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to get published blogs", err)
		return
	}

	// Distinguish "nothing published yet" from a failure: the empty outcome
	// keeps the payload so the client can tell the two apart.
	if len(blogs) == 0 {
		respond(c, http.StatusNotFound, "No published blogs found", gin.H{"blogs": blogs})
		return
	}

	respond(c, http.StatusOK, "Published blogs fetched successfully", gin.H{"blogs": blogs})
}

func (h *BlogHandler) ListOwn(c *gin.Context) {
	blogs, err := h.blogs.ListOwn(c.Request.Context(), middleware.ActingUserID(c))
	if err != nil {
		serverError(c, "Error fetching blogs", err)
		return
	}

	message := "Blogs fetched successfully"
	if len(blogs) == 0 {
		message = "No blogs found."
	}
	respond(c, http.StatusOK, message, gin.H{"blogs": blogs})
}

func (h *BlogHandler) TotalLikes(c *gin.Context) {
	stats, err := h.blogs.TotalLikes(c.Request.Context(), middleware.ActingUserID(c))
	if err != nil {
		serverError(c, "Failed to fetch total blog likes", err)
		return
	}

	respond(c, http.StatusOK, "Total likes fetched successfully", gin.H{
		"totalBlogs": stats.TotalBlogs,
		"totalLikes": stats.TotalLikes,
	})
}
