package models

import (
	"time"
)

// SitemapRef is the projection the sitemap assembler reads for each
// publishable entity: the path fragment (slug or numeric id) and the
// row's last update time, when one exists.
type SitemapRef struct {
	Ref       string     `db:"ref"`
	UpdatedAt *time.Time `db:"updated_at"`
}
