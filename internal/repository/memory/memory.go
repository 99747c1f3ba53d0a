// Package memory holds in-memory implementations of the repository
// interfaces. They back the service tests; a single mutex stands in for the
// store's per-document atomicity.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"inkwell/internal/apperr"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type likeKey struct {
	blogID uint
	userID uint
}

type Store struct {
	mu       sync.Mutex
	users    map[uint]models.User
	blogs    map[uint]models.Blog
	comments map[uint]models.Comment
	likes    map[likeKey]models.Like

	nextUserID    uint
	nextBlogID    uint
	nextCommentID uint
	nextLikeID    uint
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]models.User),
		blogs:    make(map[uint]models.Blog),
		comments: make(map[uint]models.Comment),
		likes:    make(map[likeKey]models.Like),
	}
}

func (s *Store) Users() repository.UserRepository       { return &userRepo{s} }
func (s *Store) Blogs() repository.BlogRepository       { return &blogRepo{s} }
func (s *Store) Comments() repository.CommentRepository { return &commentRepo{s} }

// ---- users ----

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("%w: email %s", apperr.ErrConflict, user.Email)
		}
	}

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: email", apperr.ErrNotFound)
}

func (r *userRepo) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("%w: user %d", apperr.ErrNotFound, user.ID)
	}
	user.UpdatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) List(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// ---- blogs ----

type blogRepo struct {
	s *Store
}

func (r *blogRepo) Create(_ context.Context, blog *models.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextBlogID++
	blog.ID = r.s.nextBlogID
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	r.s.blogs[blog.ID] = *blog
	return nil
}

func (r *blogRepo) FindByID(_ context.Context, id uint) (*models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	blog, ok := r.s.blogs[id]
	if !ok {
		return nil, fmt.Errorf("%w: blog %d", apperr.ErrNotFound, id)
	}
	blog.Likes = r.s.likesOf(id)
	return &blog, nil
}

func (r *blogRepo) Update(_ context.Context, blog *models.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.blogs[blog.ID]; !ok {
		return fmt.Errorf("%w: blog %d", apperr.ErrNotFound, blog.ID)
	}
	blog.UpdatedAt = time.Now()
	stored := *blog
	stored.Likes = nil
	stored.Comments = nil
	r.s.blogs[blog.ID] = stored
	return nil
}

func (r *blogRepo) DeleteCascade(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.blogs, id)
	for cid, comment := range r.s.comments {
		if comment.BlogID == id {
			delete(r.s.comments, cid)
		}
	}
	for key := range r.s.likes {
		if key.blogID == id {
			delete(r.s.likes, key)
		}
	}
	return nil
}

func (r *blogRepo) ListAll(_ context.Context) ([]models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.collect(func(models.Blog) bool { return true }), nil
}

func (r *blogRepo) ListPublished(_ context.Context) ([]models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.collect(func(b models.Blog) bool { return b.IsPublished }), nil
}

func (r *blogRepo) ListByAuthor(_ context.Context, authorID uint) ([]models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.collect(func(b models.Blog) bool { return b.AuthorID == authorID }), nil
}

func (r *blogRepo) AddLike(_ context.Context, blogID, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := likeKey{blogID: blogID, userID: userID}
	if _, ok := r.s.likes[key]; ok {
		return nil
	}
	r.s.nextLikeID++
	r.s.likes[key] = models.Like{ID: r.s.nextLikeID, BlogID: blogID, UserID: userID}
	return nil
}

func (r *blogRepo) RemoveLike(_ context.Context, blogID, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.likes, likeKey{blogID: blogID, userID: userID})
	return nil
}

func (r *blogRepo) LikeStats(_ context.Context, authorID uint) (*models.LikeStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := &models.LikeStats{}
	for _, blog := range r.s.blogs {
		if blog.AuthorID != authorID {
			continue
		}
		stats.TotalBlogs++
		for key := range r.s.likes {
			if key.blogID == blog.ID {
				stats.TotalLikes++
			}
		}
	}
	return stats, nil
}

// collect returns populated copies matching the filter, newest first.
// Callers must hold the lock.
func (s *Store) collect(match func(models.Blog) bool) []models.Blog {
	blogs := make([]models.Blog, 0)
	for _, blog := range s.blogs {
		if !match(blog) {
			continue
		}
		blog.Author = s.users[blog.AuthorID]
		blog.Likes = s.likesOf(blog.ID)
		blog.Comments = s.commentsOf(blog.ID)
		blogs = append(blogs, blog)
	}
	sort.Slice(blogs, func(i, j int) bool {
		if !blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
		}
		return blogs[i].ID > blogs[j].ID
	})
	return blogs
}

func (s *Store) likesOf(blogID uint) []models.Like {
	likes := make([]models.Like, 0)
	for key, like := range s.likes {
		if key.blogID == blogID {
			likes = append(likes, like)
		}
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].ID < likes[j].ID })
	return likes
}

func (s *Store) commentsOf(blogID uint) []models.Comment {
	comments := make([]models.Comment, 0)
	for _, comment := range s.comments {
		if comment.BlogID == blogID {
			comment.User = s.users[comment.UserID]
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	return comments
}

// ---- comments ----

type commentRepo struct {
	s *Store
}

func (r *commentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCommentID++
	comment.ID = r.s.nextCommentID
	comment.CreatedAt = time.Now()
	stored := *comment
	stored.User = models.User{}
	r.s.comments[comment.ID] = stored
	return nil
}

func (r *commentRepo) FindByID(_ context.Context, id uint) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return nil, fmt.Errorf("%w: comment %d", apperr.ErrNotFound, id)
	}
	comment.User = r.s.users[comment.UserID]
	return &comment, nil
}

func (r *commentRepo) Update(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[comment.ID]; !ok {
		return fmt.Errorf("%w: comment %d", apperr.ErrNotFound, comment.ID)
	}
	stored := *comment
	stored.User = models.User{}
	r.s.comments[comment.ID] = stored
	return nil
}

func (r *commentRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.comments, id)
	return nil
}

func (r *commentRepo) ListByBlog(_ context.Context, blogID uint) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.commentsOf(blogID), nil
}
