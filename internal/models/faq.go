package models

// FAQ represents a frequently asked question shown on the site
type FAQ struct {
	ID        int64  `json:"id" db:"id"`
	Question  string `json:"question" db:"question"`
	Answer    string `json:"answer" db:"answer"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
	Active    bool   `json:"active" db:"active"`
}

// CreateFAQRequest represents the request to create an FAQ
type CreateFAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

// UpdateFAQRequest represents the request to update an FAQ.
// Nil fields are left untouched.
type UpdateFAQRequest struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}
