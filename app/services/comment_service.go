package services

import (
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates the input and creates a comment bound to the given
// post. The post must exist.
func (s *CommentService) CreateComment(postID uint, in *models.CommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &models.Comment{
		PostID:    postID,
		Content:   *in.Content,
		Author:    *in.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post, oldest first. The post
// must exist; an existing post with no comments yields an empty list.
func (s *CommentService) ListPostComments(postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(postID)
}

// GetComment retrieves a comment addressed through its post. A comment whose
// stored parent differs from postID is reported as not found, even though it
// exists under another post.
func (s *CommentService) GetComment(postID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

// DeleteComment deletes a comment, subject to the same ownership rule as
// GetComment.
func (s *CommentService) DeleteComment(postID, commentID uint) error {
	if _, err := s.GetComment(postID, commentID); err != nil {
		return err
	}

	return s.commentRepo.Delete(commentID)
}
