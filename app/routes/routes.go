package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
)

// SetupRoutes wires repositories, services and controllers onto a router.
// Paths keep their trailing slash; StrictSlash redirects the bare form.
func SetupRoutes(db *gorm.DB) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)

	postController := controllers.NewPostController(services.NewPostService(postRepo))
	commentController := controllers.NewCommentController(services.NewCommentService(commentRepo, postRepo))

	api := router.PathPrefix("/api").Subrouter()

	// Posts endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("/", postController.Index).Methods("GET")
	posts.HandleFunc("/", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}/", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}/", postController.Patch).Methods("PATCH")
	posts.HandleFunc("/{id:[0-9]+}/", postController.Delete).Methods("DELETE")

	// Comments endpoints, nested under their post
	posts.HandleFunc("/{postId:[0-9]+}/comments/", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments/", commentController.Create).Methods("POST")
	posts.HandleFunc("/{postId:[0-9]+}/comments/{commentId:[0-9]+}/", commentController.Show).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments/{commentId:[0-9]+}/", commentController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
