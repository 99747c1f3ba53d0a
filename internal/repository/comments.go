package repository

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/apperr"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	ListByBlog(ctx context.Context, blogID uint) ([]models.Comment, error)
}

type gormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &gormCommentRepository{db: db}
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return storeErr("create comment", err)
	}
	return nil
}

func (r *gormCommentRepository) FindByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %d", apperr.ErrNotFound, id)
		}
		return nil, storeErr("find comment", err)
	}
	return &comment, nil
}

func (r *gormCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("User").Save(comment).Error; err != nil {
		return storeErr("update comment", err)
	}
	return nil
}

func (r *gormCommentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return storeErr("delete comment", err)
	}
	return nil
}

func (r *gormCommentRepository) ListByBlog(ctx context.Context, blogID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, storeErr("list comments", err)
	}
	return comments, nil
}
