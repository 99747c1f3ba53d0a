package repository

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/apperr"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id uint) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	// DeleteCascade removes the blog together with its comments and like
	// rows as one transaction.
	DeleteCascade(ctx context.Context, id uint) error

	ListAll(ctx context.Context) ([]models.Blog, error)
	ListPublished(ctx context.Context) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Blog, error)

	// AddLike and RemoveLike are store-level set operations: both are
	// idempotent and safe under concurrent calls on the same blog.
	AddLike(ctx context.Context, blogID, userID uint) error
	RemoveLike(ctx context.Context, blogID, userID uint) error
	LikeStats(ctx context.Context, authorID uint) (*models.LikeStats, error)
}

type gormBlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &gormBlogRepository{db: db}
}

func (r *gormBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return storeErr("create blog", err)
	}
	return nil
}

func (r *gormBlogRepository) FindByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).Preload("Likes").First(&blog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog %d", apperr.ErrNotFound, id)
		}
		return nil, storeErr("find blog", err)
	}
	return &blog, nil
}

func (r *gormBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Omit("Likes", "Comments", "Author").Save(blog).Error; err != nil {
		return storeErr("update blog", err)
	}
	return nil
}

func (r *gormBlogRepository) DeleteCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, id).Error
	})
	if err != nil {
		return storeErr("delete blog", err)
	}
	return nil
}

// populated applies the read-side population: author display fields,
// comments newest first, each with its commenter, plus the likes rows.
func (r *gormBlogRepository) populated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User")
}

func (r *gormBlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.populated(ctx).Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, storeErr("list blogs", err)
	}
	return blogs, nil
}

func (r *gormBlogRepository) ListPublished(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.populated(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, storeErr("list published blogs", err)
	}
	return blogs, nil
}

func (r *gormBlogRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.populated(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, storeErr("list blogs by author", err)
	}
	return blogs, nil
}

func (r *gormBlogRepository) AddLike(ctx context.Context, blogID, userID uint) error {
	like := models.Like{BlogID: blogID, UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return storeErr("add like", err)
	}
	return nil
}

func (r *gormBlogRepository) RemoveLike(ctx context.Context, blogID, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Delete(&models.Like{}).Error
	if err != nil {
		return storeErr("remove like", err)
	}
	return nil
}

func (r *gormBlogRepository) LikeStats(ctx context.Context, authorID uint) (*models.LikeStats, error) {
	var blogCount int64
	err := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("author_id = ?", authorID).
		Count(&blogCount).Error
	if err != nil {
		return nil, storeErr("count blogs", err)
	}

	var likeCount int64
	err = r.db.WithContext(ctx).
		Model(&models.Like{}).
		Joins("JOIN blogs ON blogs.id = likes.blog_id").
		Where("blogs.author_id = ?", authorID).
		Count(&likeCount).Error
	if err != nil {
		return nil, storeErr("count likes", err)
	}

	return &models.LikeStats{TotalBlogs: int(blogCount), TotalLikes: int(likeCount)}, nil
}
