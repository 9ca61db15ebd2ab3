package controllers

import (
	"testing"

	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// setupTestControllers wires controllers onto real repositories over an
// in-memory SQLite database and registers the API routes.
func setupTestControllers(t *testing.T) (*mux.Router, *services.PostService, *services.CommentService) {
	t.Helper()

	db, err := repositories.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.LogMode(false)
	require.NoError(t, repositories.Migrate(db))
	t.Cleanup(func() { db.Close() })

	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	postController := NewPostController(postService)
	commentController := NewCommentController(commentService)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/posts/", postController.Index).Methods("GET")
	router.HandleFunc("/api/posts/", postController.Create).Methods("POST")
	router.HandleFunc("/api/posts/{id:[0-9]+}/", postController.Show).Methods("GET")
	router.HandleFunc("/api/posts/{id:[0-9]+}/", postController.Update).Methods("PUT")
	router.HandleFunc("/api/posts/{id:[0-9]+}/", postController.Patch).Methods("PATCH")
	router.HandleFunc("/api/posts/{id:[0-9]+}/", postController.Delete).Methods("DELETE")
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments/", commentController.Index).Methods("GET")
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments/", commentController.Create).Methods("POST")
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments/{commentId:[0-9]+}/", commentController.Show).Methods("GET")
	router.HandleFunc("/api/posts/{postId:[0-9]+}/comments/{commentId:[0-9]+}/", commentController.Delete).Methods("DELETE")

	return router, postService, commentService
}
