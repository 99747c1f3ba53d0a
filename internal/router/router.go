package router

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Blogs    *handlers.BlogHandler
	Comments *handlers.CommentHandler

	JWTSecret []byte
	UserRepo  repository.UserRepository
}

// RegisterRoutes wires the API surface. Public reads skip the gate; all
// mutating routes and identity-scoped reads sit behind it.
func RegisterRoutes(r *gin.Engine, d Deps) {
	authRequired := middleware.AuthRequired(d.JWTSecret, d.UserRepo)

	user := r.Group("/api/v1/user")
	{
		user.POST("/register", d.Auth.Register)
		user.POST("/login", d.Auth.Login)
		user.GET("/logout", d.Auth.Logout)
		user.GET("/all-users", d.Users.ListUsers)

		user.PUT("/profile/update", authRequired, d.Users.UpdateProfile)
	}

	blog := r.Group("/api/v1/blog")
	{
		// Public reads
		blog.GET("/get-all-blogs", d.Blogs.ListAll)
		blog.GET("/get-published-blogs", d.Blogs.ListPublished)

		// Protected
		blog.POST("", authRequired, d.Blogs.Create)
		blog.PUT("/:blogId", authRequired, d.Blogs.Update)
		blog.PATCH("/:blogId", authRequired, d.Blogs.TogglePublish)
		blog.GET("/get-own-blogs", authRequired, d.Blogs.ListOwn)
		blog.DELETE("/delete/:id", authRequired, d.Blogs.Delete)
		blog.GET("/:id/like", authRequired, d.Blogs.Like)
		blog.GET("/:id/dislike", authRequired, d.Blogs.Dislike)
		blog.GET("/my-blogs/likes", authRequired, d.Blogs.TotalLikes)
	}

	comment := r.Group("/api/v1/comment")
	{
		comment.GET("/:blogId/all", d.Comments.ListByBlog)

		comment.POST("/:blogId/create", authRequired, d.Comments.Create)
		comment.PUT("/:id/edit", authRequired, d.Comments.Edit)
		comment.DELETE("/:id/delete", authRequired, d.Comments.Delete)
	}
}
