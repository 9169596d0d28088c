package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// BlogRepository handles database operations for the blogs table
type BlogRepository struct {
	db DB
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db DB) *BlogRepository {
	return &BlogRepository{db: db}
}

const blogColumns = `id, slug, title, excerpt, content, image_url, published, created_at, updated_at`

// GetPublished retrieves published posts, newest first
func (r *BlogRepository) GetPublished() ([]models.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE published = true
		ORDER BY created_at DESC
	`

	blogs := []models.Blog{}
	if err := r.db.Select(&blogs, query); err != nil {
		return nil, fmt.Errorf("failed to list published blogs: %w", err)
	}

	return blogs, nil
}

// GetPublishedBySlug retrieves a single published post by slug
func (r *BlogRepository) GetPublishedBySlug(slug string) (*models.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE slug = $1 AND published = true
	`

	var blog models.Blog
	if err := r.db.Get(&blog, query, slug); err != nil {
		return nil, err
	}

	return &blog, nil
}

// GetAll retrieves all posts including unpublished drafts
func (r *BlogRepository) GetAll() ([]models.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at DESC
	`

	blogs := []models.Blog{}
	if err := r.db.Select(&blogs, query); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return blogs, nil
}

// GetByID retrieves a post by id regardless of published state
func (r *BlogRepository) GetByID(id int64) (*models.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1
	`

	var blog models.Blog
	if err := r.db.Get(&blog, query, id); err != nil {
		return nil, err
	}

	return &blog, nil
}

// Create inserts a new post and returns it
func (r *BlogRepository) Create(req models.CreateBlogRequest) (*models.Blog, error) {
	query := `
		INSERT INTO blogs (slug, title, excerpt, content, image_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + blogColumns

	var blog models.Blog
	err := r.db.Get(&blog, query, req.Slug, req.Title, req.Excerpt, req.Content, req.ImageURL, req.Published)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	return &blog, nil
}

// Update applies the non-nil fields of req to a post
func (r *BlogRepository) Update(id int64, req models.UpdateBlogRequest) (*models.Blog, error) {
	query := `
		UPDATE blogs
		SET slug = COALESCE($2, slug),
		    title = COALESCE($3, title),
		    excerpt = COALESCE($4, excerpt),
		    content = COALESCE($5, content),
		    image_url = COALESCE($6, image_url),
		    published = COALESCE($7, published),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	var blog models.Blog
	err := r.db.Get(&blog, query, id, req.Slug, req.Title, req.Excerpt, req.Content, req.ImageURL, req.Published)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// Delete removes a post
func (r *BlogRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// SitemapRefs projects slug and update time for published posts
func (r *BlogRepository) SitemapRefs() ([]models.SitemapRef, error) {
	query := `
		SELECT slug AS ref, updated_at
		FROM blogs
		WHERE published = true
		ORDER BY id
	`

	refs := []models.SitemapRef{}
	if err := r.db.Select(&refs, query); err != nil {
		return nil, fmt.Errorf("failed to project blog sitemap refs: %w", err)
	}

	return refs, nil
}
