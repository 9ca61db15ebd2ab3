package services

import (
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates the input and creates a new blog post. Both
// timestamps are set to the same instant so that updated_at == created_at
// until the first mutation.
func (s *PostService) CreatePost(in *models.PostInput) (*models.Post, error) {
	if err := in.Validate(false); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(post)

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves one page of posts, newest first, along with the total
// number of posts.
func (s *PostService) ListPosts(limit, offset int) ([]*models.Post, int, error) {
	total, err := s.postRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	posts, err := s.postRepo.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// UpdatePost applies the input to an existing post. A full update requires
// title, content and author to all be present; a partial update touches only
// the supplied fields. Either way updated_at is refreshed and created_at is
// preserved.
func (s *PostService) UpdatePost(id uint, in *models.PostInput, partial bool) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(partial); err != nil {
		return nil, err
	}

	in.Apply(post)
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(id uint) error {
	return s.postRepo.Delete(id)
}
