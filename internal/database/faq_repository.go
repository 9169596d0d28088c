package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// FAQRepository handles database operations for the faqs table
type FAQRepository struct {
	db DB
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db DB) *FAQRepository {
	return &FAQRepository{db: db}
}

const faqColumns = `id, question, answer, sort_order, active`

// GetActive retrieves visible FAQs in display order
func (r *FAQRepository) GetActive() ([]models.FAQ, error) {
	query := `
		SELECT ` + faqColumns + `
		FROM faqs
		WHERE active = true
		ORDER BY sort_order, id
	`

	faqs := []models.FAQ{}
	if err := r.db.Select(&faqs, query); err != nil {
		return nil, fmt.Errorf("failed to list active faqs: %w", err)
	}

	return faqs, nil
}

// GetAll retrieves all FAQs
func (r *FAQRepository) GetAll() ([]models.FAQ, error) {
	query := `
		SELECT ` + faqColumns + `
		FROM faqs
		ORDER BY sort_order, id
	`

	faqs := []models.FAQ{}
	if err := r.db.Select(&faqs, query); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	return faqs, nil
}

// Create inserts a new FAQ and returns it
func (r *FAQRepository) Create(req models.CreateFAQRequest) (*models.FAQ, error) {
	query := `
		INSERT INTO faqs (question, answer, sort_order, active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + faqColumns

	var faq models.FAQ
	if err := r.db.Get(&faq, query, req.Question, req.Answer, req.SortOrder, req.Active); err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	return &faq, nil
}

// Update applies the non-nil fields of req to an FAQ
func (r *FAQRepository) Update(id int64, req models.UpdateFAQRequest) (*models.FAQ, error) {
	query := `
		UPDATE faqs
		SET question = COALESCE($2, question),
		    answer = COALESCE($3, answer),
		    sort_order = COALESCE($4, sort_order),
		    active = COALESCE($5, active)
		WHERE id = $1
		RETURNING ` + faqColumns

	var faq models.FAQ
	if err := r.db.Get(&faq, query, id, req.Question, req.Answer, req.SortOrder, req.Active); err != nil {
		return nil, err
	}

	return &faq, nil
}

// Delete removes an FAQ
func (r *FAQRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
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
