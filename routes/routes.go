package routes

import (
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes wires repositories, services and controllers over the given
// Badger DB and returns the application router.
func SetupRoutes(db *badger.DB, cfg *config.Config, logger zerolog.Logger) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	tagRepo := repositories.NewBadgerTagRepository(db)

	tagService := services.NewTagService(tagRepo, logger)
	postService := services.NewPostService(db, postRepo, commentRepo, tagService, logger)
	commentService := services.NewCommentService(db, commentRepo, logger)
	queryService := services.NewQueryService(postRepo, commentRepo, cfg.DefaultPageSize)

	postController := controllers.NewPostController(postService, queryService)
	commentController := controllers.NewCommentController(postService, commentService, queryService, cfg.CommentNeedApproval)
	tagController := controllers.NewTagController(tagService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api").Subrouter()

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Comments API endpoints
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/approve", commentController.Approve).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	// Tag discovery endpoints
	api.HandleFunc("/tags", tagController.Index).Methods("GET")
	api.HandleFunc("/tags/{tag}", tagController.Show).Methods("GET")

	return router
}
