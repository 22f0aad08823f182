package repository

import (
	"errors"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository is the post store interface.
// Listing order is id descending (newest first); the public catalog
// and the dashboard both rely on it.
type PostRepository interface {
	List(offset, limit int) ([]*domain.Post, error)
	ListAll() ([]*domain.Post, error)
	Count() (int64, error)
	FindByID(id uint) (*domain.Post, error)
	FindBySlug(slug string) (*domain.Post, error)

	Create(post *domain.Post) error
	Update(id uint, post *domain.Post) error
	Delete(id uint) error
}

// postRepository GORM implementation
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns a page of posts, newest first
func (r *postRepository) List(offset, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post

	err := r.db.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// ListAll returns every post, newest first
func (r *postRepository) ListAll() ([]*domain.Post, error) {
	var posts []*domain.Post

	err := r.db.
		Order("id DESC").
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// Count returns the total number of posts
func (r *postRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Post{}).Count(&total).Error
	return total, err
}

// FindByID retrieves a single post by surrogate key
func (r *postRepository) FindByID(id uint) (*domain.Post, error) {
	var post domain.Post

	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// FindBySlug retrieves a single post by its public slug.
// Slugs are assumed effectively unique; the first match wins.
func (r *postRepository) FindBySlug(slug string) (*domain.Post, error) {
	var post domain.Post

	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// Create inserts a new post; the store assigns the id
func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// Update overwrites all editable fields and the last-touched date.
// A missing id reports ErrPostNotFound and leaves the store unchanged.
func (r *postRepository) Update(id uint, post *domain.Post) error {
	res := r.db.Model(&domain.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     post.Title,
			"sub_title": post.Subtitle,
			"slug":      post.Slug,
			"content":   post.Content,
			"img_file":  post.ImageFile,
			"date":      post.CreatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrPostNotFound
	}

	return nil
}

// Delete removes a post. A missing id reports ErrPostNotFound.
func (r *postRepository) Delete(id uint) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Post{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrPostNotFound
	}

	return nil
}
