package service

import (
	"context"
	"math"
	"time"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/pkg/cache"
)

// PostService business logic for the post catalog and the editor
type PostService interface {
	ListPosts(page int) ([]*domain.Post, *common.Meta, error)
	ListAllPosts() ([]*domain.Post, error)
	GetPostBySlug(slug string) (*domain.Post, error)

	// GetEditorPost returns the post for the edit view; sentinel id 0
	// or a missing id yields the empty create-form placeholder.
	GetEditorPost(id uint) (*domain.Post, error)
	// SavePost upserts: id 0 creates, any other id overwrites all
	// editable fields. The last-touched date is reset either way.
	SavePost(id uint, req *domain.EditPostRequest) (*domain.Post, error)
	DeletePost(id uint) error
}

type postService struct {
	repo    repository.PostRepository
	cache   cache.Service
	perPage int
}

// cachedListing is the serialized shape of one public listing page
type cachedListing struct {
	Posts []*domain.Post `json:"posts"`
	Meta  *common.Meta   `json:"meta"`
}

// NewPostService creates a new PostService. cacheService may be nil
// when Redis is not configured.
func NewPostService(repo repository.PostRepository, perPage int, cacheService cache.Service) PostService {
	if perPage < 1 {
		perPage = 5
	}
	return &postService{repo: repo, cache: cacheService, perPage: perPage}
}

// ListPosts retrieves one page of the public catalog, newest first.
// The requested page is clamped into [1, lastPage]; an empty catalog
// behaves as page 1 of an empty slice.
func (s *postService) ListPosts(page int) ([]*domain.Post, *common.Meta, error) {
	ctx := context.Background()

	if s.cache != nil && page >= 1 {
		var cached cachedListing
		if err := s.cache.Get(ctx, cache.ListingKey(page), &cached); err == nil {
			return cached.Posts, cached.Meta, nil
		}
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, nil, err
	}

	last := int(math.Ceil(float64(total) / float64(s.perPage)))
	if last < 1 {
		last = 1
	}

	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	posts, err := s.repo.List((page-1)*s.perPage, s.perPage)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{
		Page:     page,
		PerPage:  s.perPage,
		Total:    total,
		LastPage: last,
	}
	if page > 1 {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if page < last {
		next := page + 1
		meta.NextPage = &next
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cache.ListingKey(page), cachedListing{Posts: posts, Meta: meta}, cache.TTLListing)
	}

	return posts, meta, nil
}

// ListAllPosts returns the full catalog for the dashboard
func (s *postService) ListAllPosts() ([]*domain.Post, error) {
	return s.repo.ListAll()
}

// GetPostBySlug retrieves a single post for public viewing
func (s *postService) GetPostBySlug(slug string) (*domain.Post, error) {
	ctx := context.Background()

	if s.cache != nil {
		var cached domain.Post
		if err := s.cache.Get(ctx, cache.PostKey(slug), &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cache.PostKey(slug), post, cache.TTLPost)
	}

	return post, nil
}

// GetEditorPost retrieves a post for editing. A missing row must not
// fail: the edit view renders a create form from the placeholder.
func (s *postService) GetEditorPost(id uint) (*domain.Post, error) {
	if id == 0 {
		return domain.EmptyPost(), nil
	}

	post, err := s.repo.FindByID(id)
	if err != nil {
		if err == common.ErrPostNotFound {
			return domain.EmptyPost(), nil
		}
		return nil, err
	}

	return post, nil
}

// SavePost creates (sentinel id 0) or overwrites a post
func (s *postService) SavePost(id uint, req *domain.EditPostRequest) (*domain.Post, error) {
	post := &domain.Post{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Slug:      req.Slug,
		Content:   req.Content,
		ImageFile: req.ImageFile,
		CreatedAt: time.Now(),
	}

	if id == 0 {
		if err := s.repo.Create(post); err != nil {
			return nil, err
		}
	} else {
		post.ID = id
		if err := s.repo.Update(id, post); err != nil {
			return nil, err
		}
	}

	s.invalidate()
	return post, nil
}

// DeletePost removes a post
func (s *postService) DeletePost(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

// invalidate drops the cached public surface after a mutation
func (s *postService) invalidate() {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateAll(context.Background())
}
