package services

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/apperr"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// CommentService attaches comments to blogs. A comment's lifecycle is bound
// to its blog; edits and deletes belong to the commenter alone.
type CommentService struct {
	comments repository.CommentRepository
	blogs    repository.BlogRepository
	users    repository.UserRepository
}

func NewCommentService(comments repository.CommentRepository, blogs repository.BlogRepository, users repository.UserRepository) *CommentService {
	return &CommentService{comments: comments, blogs: blogs, users: users}
}

func (s *CommentService) Create(ctx context.Context, blogID, userID uint, content string) (*models.CommentView, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content is required", apperr.ErrValidation)
	}

	// The blog must exist at creation time; orphan comments are never written.
	if _, err := s.blogs.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		BlogID:  blogID,
		UserID:  userID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	view := commentViewOf(*comment)
	if user, err := s.users.FindByID(ctx, userID); err == nil {
		view.User = user.Display()
	}
	return &view, nil
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID uint) ([]models.CommentView, error) {
	if _, err := s.blogs.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, commentViewOf(comment))
	}
	return views, nil
}

func (s *CommentService) Edit(ctx context.Context, commentID, actingUser uint, content string) (*models.CommentView, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content is required", apperr.ErrValidation)
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actingUser {
		return nil, fmt.Errorf("%w: not the author of comment %d", apperr.ErrForbidden, commentID)
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	view := commentViewOf(*comment)
	return &view, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, actingUser uint) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actingUser {
		return fmt.Errorf("%w: not the author of comment %d", apperr.ErrForbidden, commentID)
	}

	return s.comments.Delete(ctx, commentID)
}
