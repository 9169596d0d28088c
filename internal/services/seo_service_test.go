package services

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sitemapSourceFunc adapts a function to the SitemapSource interface
type sitemapSourceFunc func() ([]models.SitemapRef, error)

func (f sitemapSourceFunc) SitemapRefs() ([]models.SitemapRef, error) {
	return f()
}

func emptySource() SitemapSource {
	return sitemapSourceFunc(func() ([]models.SitemapRef, error) {
		return []models.SitemapRef{}, nil
	})
}

func failingSource() SitemapSource {
	return sitemapSourceFunc(func() ([]models.SitemapRef, error) {
		return nil, fmt.Errorf("connection reset")
	})
}

func refsSource(refs ...models.SitemapRef) SitemapSource {
	return sitemapSourceFunc(func() ([]models.SitemapRef, error) {
		return refs, nil
	})
}

func newTestSEOService(t *testing.T, mockSetup func(sqlmock.Sqlmock), blogs, cars, tours SitemapSource) *SEOService {
	t.Helper()

	db, mock := newTestDB(t)
	if mockSetup != nil {
		mockSetup(mock)
	}

	settings := NewSettingsService(database.NewSettingRepository(db))
	svc := NewSEOService(settings, blogs, cars, tours, "https://www.atlasrides.com", testLogger())
	svc.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func expectRobotsSetting(value string) func(sqlmock.Sqlmock) {
	return func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("robots_txt").
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "updated_at"}).
				AddRow(1, "robots_txt", value, time.Now()))
	}
}

func expectNoRobotsSetting() func(sqlmock.Sqlmock) {
	return func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("robots_txt").
			WillReturnError(sql.ErrNoRows)
	}
}

func TestRobotsTxt(t *testing.T) {
	t.Run("Default When No Override Stored", func(t *testing.T) {
		svc := newTestSEOService(t, expectNoRobotsSetting(), emptySource(), emptySource(), emptySource())

		body := svc.RobotsTxt()
		assert.Contains(t, body, "User-agent: Googlebot")
		assert.Contains(t, body, "User-agent: Bingbot")
		assert.Contains(t, body, "User-agent: *")
		assert.Contains(t, body, "Sitemap: https://www.atlasrides.com/sitemap.xml")
	})

	t.Run("Stored Override Wins", func(t *testing.T) {
		svc := newTestSEOService(t, expectRobotsSetting(`"User-agent: *\nDisallow: /"`),
			emptySource(), emptySource(), emptySource())

		body := svc.RobotsTxt()
		assert.Equal(t, "User-agent: *\nDisallow: /", body)
	})

	t.Run("Default When Read Fails", func(t *testing.T) {
		svc := newTestSEOService(t, func(mock sqlmock.Sqlmock) {
			mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
				WithArgs("robots_txt").
				WillReturnError(fmt.Errorf("connection reset"))
		}, emptySource(), emptySource(), emptySource())

		body := svc.RobotsTxt()
		assert.Contains(t, body, "User-agent: Googlebot")
	})

	t.Run("Blank Override Falls Back To Default", func(t *testing.T) {
		svc := newTestSEOService(t, expectRobotsSetting(`"  "`),
			emptySource(), emptySource(), emptySource())

		body := svc.RobotsTxt()
		assert.Contains(t, body, "User-agent: Googlebot")
	})
}

func TestNormalizeRobotsValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Literal Newlines Unescaped", `User-agent: *\nDisallow: /`, "User-agent: *\nDisallow: /"},
		{"Surrounding Quotes Stripped", `"User-agent: *"`, "User-agent: *"},
		{"Only One Quote Pair Stripped", `""User-agent: *""`, `"User-agent: *"`},
		{"Whitespace Trimmed", "  User-agent: *  ", "User-agent: *"},
		{"Plain Value Untouched", "User-agent: *", "User-agent: *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRobotsValue(tt.value))
		})
	}
}

func TestSitemapXML(t *testing.T) {
	t.Run("Static Pages Always Present", func(t *testing.T) {
		svc := newTestSEOService(t, nil, emptySource(), emptySource(), emptySource())

		body, err := svc.SitemapXML()
		require.NoError(t, err)

		doc := string(body)
		assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, doc, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
		for _, path := range []string{"/", "/cars", "/tours", "/blog", "/contact"} {
			assert.Contains(t, doc, "<loc>https://www.atlasrides.com"+path+"</loc>")
		}
		assert.Equal(t, len(StaticPages), strings.Count(doc, "<url>"))
	})

	t.Run("Dynamic Entries Use Update Time", func(t *testing.T) {
		updated := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
		svc := newTestSEOService(t, nil,
			refsSource(models.SitemapRef{Ref: "hello-world", UpdatedAt: &updated}),
			refsSource(models.SitemapRef{Ref: "7"}),
			refsSource(models.SitemapRef{Ref: "3"}),
		)

		body, err := svc.SitemapXML()
		require.NoError(t, err)

		doc := string(body)
		assert.Contains(t, doc, "<loc>https://www.atlasrides.com/blog/hello-world</loc>")
		assert.Contains(t, doc, "<lastmod>2024-01-15</lastmod>")
		assert.Contains(t, doc, "<loc>https://www.atlasrides.com/car/7</loc>")
		assert.Contains(t, doc, "<loc>https://www.atlasrides.com/trip/3</loc>")
		// Entries without an update time fall back to the frozen clock
		assert.Contains(t, doc, "<lastmod>2024-06-01</lastmod>")
	})

	t.Run("Failed Section Is Omitted Not Fatal", func(t *testing.T) {
		svc := newTestSEOService(t, nil,
			failingSource(),
			refsSource(models.SitemapRef{Ref: "7"}),
			emptySource(),
		)

		body, err := svc.SitemapXML()
		require.NoError(t, err)

		doc := string(body)
		assert.NotContains(t, doc, "/blog/")
		assert.Contains(t, doc, "<loc>https://www.atlasrides.com/car/7</loc>")
	})

	t.Run("All Sections Failing Still Yields Static Pages", func(t *testing.T) {
		svc := newTestSEOService(t, nil, failingSource(), failingSource(), failingSource())

		body, err := svc.SitemapXML()
		require.NoError(t, err)
		assert.Equal(t, len(StaticPages), strings.Count(string(body), "<url>"))
	})
}
