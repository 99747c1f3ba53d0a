package main

import (
	"log"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/handlers"
	"inkwell/internal/repository"
	"inkwell/internal/router"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()

	// Initialize Database
	conn := db.Init(cfg.DatabaseURL)

	// Repositories
	userRepo := repository.NewUserRepository(conn)
	blogRepo := repository.NewBlogRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)

	// Services
	uploader := services.NewImgurUploader(cfg.ImgurClientID)
	userService := services.NewUserService(userRepo, uploader, []byte(cfg.JWTSecret), cfg.TokenTTL)
	blogService := services.NewBlogService(blogRepo, userRepo, uploader)
	commentService := services.NewCommentService(commentRepo, blogRepo, userRepo)

	// Initialize Gin
	r := gin.Default()

	router.RegisterRoutes(r, router.Deps{
		Auth:      handlers.NewAuthHandler(userService, cfg.TokenTTL),
		Users:     handlers.NewUserHandler(userService),
		Blogs:     handlers.NewBlogHandler(blogService),
		Comments:  handlers.NewCommentHandler(commentService),
		JWTSecret: []byte(cfg.JWTSecret),
		UserRepo:  userRepo,
	})

	log.Printf("Inkwell server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
