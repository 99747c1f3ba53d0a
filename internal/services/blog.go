package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"inkwell/internal/apperr"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/utils"
)

// BlogService owns the content lifecycle: draft creation, edits, the publish
// flag, likes and the comment-cascading delete. Mutations require the acting
// user to be the blog's author, except like/dislike which any authenticated
// user may perform.
type BlogService struct {
	blogs    repository.BlogRepository
	users    repository.UserRepository
	uploader Uploader
}

func NewBlogService(blogs repository.BlogRepository, users repository.UserRepository, uploader Uploader) *BlogService {
	return &BlogService{blogs: blogs, users: users, uploader: uploader}
}

// BlogUpdate carries a partial edit. Nil fields leave the stored value
// untouched.
type BlogUpdate struct {
	Title       *string
	Subtitle    *string
	Description *string
	Category    *string
}

func (s *BlogService) Create(ctx context.Context, authorID uint, title, category string) (*models.BlogView, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: blog title and category are required", apperr.ErrValidation)
	}

	blog := &models.Blog{
		AuthorID: authorID,
		Title:    title,
		Category: category,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	return s.view(ctx, blog), nil
}

func (s *BlogService) Update(ctx context.Context, blogID, actingUser uint, update BlogUpdate, thumbnail io.Reader, thumbnailName string) (*models.BlogView, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != actingUser {
		return nil, fmt.Errorf("%w: not the author of blog %d", apperr.ErrForbidden, blogID)
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, fmt.Errorf("%w: blog title cannot be empty", apperr.ErrValidation)
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		return nil, fmt.Errorf("%w: blog category cannot be empty", apperr.ErrValidation)
	}

	// The upload runs before any field is applied so a failed upload leaves
	// the stored record unchanged.
	if thumbnail != nil {
		url, err := s.uploader.Upload(ctx, thumbnail, thumbnailName, "blog_thumbnails")
		if err != nil {
			return nil, err
		}
		blog.Thumbnail = url
	}

	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Subtitle != nil {
		blog.Subtitle = *update.Subtitle
	}
	if update.Description != nil {
		blog.Description = *update.Description
	}
	if update.Category != nil {
		blog.Category = *update.Category
	}
	// AuthorID is never touched: authorship is fixed at creation.

	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, err
	}

	return s.view(ctx, blog), nil
}

// SetPublished sets the publish flag to the explicit value, or flips the
// current one when explicit is nil. Returns the resulting flag.
func (s *BlogService) SetPublished(ctx context.Context, blogID, actingUser uint, explicit *bool) (bool, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return false, err
	}
	if blog.AuthorID != actingUser {
		return false, fmt.Errorf("%w: not the author of blog %d", apperr.ErrForbidden, blogID)
	}

	if explicit != nil {
		blog.IsPublished = *explicit
	} else {
		blog.IsPublished = !blog.IsPublished
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		return false, err
	}
	return blog.IsPublished, nil
}

func (s *BlogService) Delete(ctx context.Context, blogID, actingUser uint) error {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog.AuthorID != actingUser {
		return fmt.Errorf("%w: not the author of blog %d", apperr.ErrForbidden, blogID)
	}

	// Blog, comments and like rows go in one transaction; no orphans either way.
	return s.blogs.DeleteCascade(ctx, blogID)
}

func (s *BlogService) Like(ctx context.Context, blogID, userID uint) error {
	if _, err := s.blogs.FindByID(ctx, blogID); err != nil {
		return err
	}
	return s.blogs.AddLike(ctx, blogID, userID)
}

func (s *BlogService) Dislike(ctx context.Context, blogID, userID uint) error {
	if _, err := s.blogs.FindByID(ctx, blogID); err != nil {
		return err
	}
	return s.blogs.RemoveLike(ctx, blogID, userID)
}

// TotalLikes sums likes across every blog the user authored. A user with no
// blogs gets zeros, not an error.
func (s *BlogService) TotalLikes(ctx context.Context, authorID uint) (*models.LikeStats, error) {
	return s.blogs.LikeStats(ctx, authorID)
}

func (s *BlogService) ListAll(ctx context.Context) ([]models.BlogView, error) {
	blogs, err := s.blogs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(blogs), nil
}

func (s *BlogService) ListPublished(ctx context.Context) ([]models.BlogView, error) {
	blogs, err := s.blogs.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(blogs), nil
}

func (s *BlogService) ListOwn(ctx context.Context, authorID uint) ([]models.BlogView, error) {
	blogs, err := s.blogs.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return viewsOf(blogs), nil
}

// view builds a read projection for a freshly written blog, resolving the
// author's display fields.
func (s *BlogService) view(ctx context.Context, blog *models.Blog) *models.BlogView {
	v := viewOf(*blog)
	author, err := s.users.FindByID(ctx, blog.AuthorID)
	if err != nil {
		log.Printf("blog %d: resolve author %d: %v", blog.ID, blog.AuthorID, err)
		return &v
	}
	v.Author = author.Display()
	return &v
}

func viewsOf(blogs []models.Blog) []models.BlogView {
	views := make([]models.BlogView, 0, len(blogs))
	for _, blog := range blogs {
		views = append(views, viewOf(blog))
	}
	return views
}

func viewOf(blog models.Blog) models.BlogView {
	likes := make([]uint, 0, len(blog.Likes))
	for _, like := range blog.Likes {
		likes = append(likes, like.UserID)
	}

	comments := make([]models.CommentView, 0, len(blog.Comments))
	for _, comment := range blog.Comments {
		comments = append(comments, commentViewOf(comment))
	}

	return models.BlogView{
		ID:              blog.ID,
		Title:           blog.Title,
		Subtitle:        blog.Subtitle,
		Description:     blog.Description,
		DescriptionHTML: utils.RenderMarkdown(blog.Description),
		Category:        blog.Category,
		Thumbnail:       blog.Thumbnail,
		IsPublished:     blog.IsPublished,
		Author:          blog.Author.Display(),
		Likes:           likes,
		Comments:        comments,
		CreatedAt:       blog.CreatedAt,
		UpdatedAt:       blog.UpdatedAt,
	}
}

func commentViewOf(comment models.Comment) models.CommentView {
	return models.CommentView{
		ID:        comment.ID,
		BlogID:    comment.BlogID,
		Content:   comment.Content,
		User:      comment.User.Display(),
		CreatedAt: comment.CreatedAt,
	}
}
