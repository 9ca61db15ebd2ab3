package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Count() (int, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	ListByPost(postID uint) ([]*models.Comment, error)
	Delete(id uint) error
}
