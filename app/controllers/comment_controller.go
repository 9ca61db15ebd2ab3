package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments nested under a post
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing all comments for a post, oldest first. The list is
// not paginated; an existing post with no comments yields an empty array.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, comments)
}

// Create handles creating a new comment on a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var in models.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.CreateComment(postID, &in)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}

// Show handles retrieving a single comment through its post's path
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := parseID(vars["postId"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	commentID, err := parseID(vars["commentId"])
	if err != nil {
		sendError(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.GetComment(postID, commentID)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, comment)
}

// Delete handles deleting a comment through its post's path
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := parseID(vars["postId"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	commentID, err := parseID(vars["commentId"])
	if err != nil {
		sendError(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	if err := cc.commentService.DeleteComment(postID, commentID); err != nil {
		sendServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
