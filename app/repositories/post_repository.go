package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/jinzhu/gorm"
)

// GormPostRepository implements PostRepository on a relational database.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create inserts a new post.
func (r *GormPostRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %v", err)
	}
	return nil
}

// GetByID retrieves a post by ID.
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %v", err)
	}
	return &post, nil
}

// List retrieves a page of posts, newest first.
func (r *GormPostRepository) List(limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Order("created_at desc").Limit(limit).Offset(offset).Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %v", err)
	}
	return posts, nil
}

// Count returns the total number of posts.
func (r *GormPostRepository) Count() (int, error) {
	var count int
	if err := r.db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count posts: %v", err)
	}
	return count, nil
}

// Update saves changed fields of an existing post.
func (r *GormPostRepository) Update(post *models.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return fmt.Errorf("failed to update post: %v", err)
	}
	return nil
}

// Delete removes a post and every comment that references it, atomically.
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %v", err)
		}

		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete post: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
