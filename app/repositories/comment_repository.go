package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/jinzhu/gorm"
)

// GormCommentRepository implements CommentRepository on a relational database.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create inserts a new comment.
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %v", err)
	}
	return nil
}

// GetByID retrieves a comment by ID.
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %v", err)
	}
	return &comment, nil
}

// ListByPost retrieves every comment on a post, oldest first.
func (r *GormCommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %v", err)
	}
	return comments, nil
}

// Delete removes a comment by ID.
func (r *GormCommentRepository) Delete(id uint) error {
	res := r.db.Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
