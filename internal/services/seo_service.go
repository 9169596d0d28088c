package services

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// StaticPage is a compiled-in top-level site path with its crawl hints
type StaticPage struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// StaticPages is the fixed catalog of top-level site paths. The
// sitemap always contains exactly these entries plus whatever dynamic
// sections resolve.
var StaticPages = []StaticPage{
	{Path: "/", ChangeFreq: "daily", Priority: 1.0},
	{Path: "/cars", ChangeFreq: "daily", Priority: 0.9},
	{Path: "/tours", ChangeFreq: "weekly", Priority: 0.8},
	{Path: "/blog", ChangeFreq: "weekly", Priority: 0.8},
	{Path: "/contact", ChangeFreq: "monthly", Priority: 0.5},
}

// SitemapSource projects a publishable collection into sitemap refs
type SitemapSource interface {
	SitemapRefs() ([]models.SitemapRef, error)
}

// SEOService assembles the crawler-facing documents: robots.txt and
// sitemap.xml.
type SEOService struct {
	settings *SettingsService
	blogs    SitemapSource
	cars     SitemapSource
	tours    SitemapSource
	baseURL  string
	logger   *logrus.Logger

	now func() time.Time // injectable clock for tests
}

// NewSEOService creates a new SEOService
func NewSEOService(settings *SettingsService, blogs, cars, tours SitemapSource, baseURL string, logger *logrus.Logger) *SEOService {
	return &SEOService{
		settings: settings,
		blogs:    blogs,
		cars:     cars,
		tours:    tours,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
		now:      time.Now,
	}
}

// DefaultRobotsTxt returns the compiled-in robots document
func (s *SEOService) DefaultRobotsTxt() string {
	return fmt.Sprintf(`User-agent: Googlebot
Allow: /

User-agent: Bingbot
Allow: /

User-agent: *
Allow: /

Sitemap: %s/sitemap.xml
`, s.baseURL)
}

// RobotsTxt returns the robots document: the admin-stored override
// when one exists, the compiled-in default otherwise. Read failures
// degrade to the default; this endpoint never errors.
func (s *SEOService) RobotsTxt() string {
	value, ok, err := s.settings.Get(models.SettingRobotsTxt)
	if err != nil {
		s.logger.WithError(err).Warn("robots_txt setting read failed, serving default")
		return s.DefaultRobotsTxt()
	}
	if !ok {
		return s.DefaultRobotsTxt()
	}

	custom := NormalizeRobotsValue(value)
	if custom == "" {
		return s.DefaultRobotsTxt()
	}
	return custom
}

// NormalizeRobotsValue cleans an admin-stored robots document:
// literal backslash-n sequences become real newlines and a single
// pair of surrounding quotes is stripped. Artifacts of the value
// having passed through JSON encoders more than once.
func NormalizeRobotsValue(value string) string {
	value = strings.ReplaceAll(value, `\n`, "\n")
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return strings.TrimSpace(value)
}

// sitemap XML shapes per the sitemap protocol

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// dynamic sitemap sections in emission order
type sitemapSection struct {
	name       string
	pathPrefix string
	source     SitemapSource
}

// SitemapXML assembles the sitemap document. The three dynamic reads
// fan out concurrently; a failed section is logged and omitted so the
// document is always served with whatever succeeded.
func (s *SEOService) SitemapXML() ([]byte, error) {
	today := s.now().UTC().Format("2006-01-02")

	urls := make([]sitemapURL, 0, len(StaticPages))
	for _, page := range StaticPages {
		urls = append(urls, sitemapURL{
			Loc:        s.baseURL + page.Path,
			LastMod:    today,
			ChangeFreq: page.ChangeFreq,
			Priority:   strconv.FormatFloat(page.Priority, 'f', 1, 64),
		})
	}

	sections := []sitemapSection{
		{name: "blogs", pathPrefix: "/blog/", source: s.blogs},
		{name: "cars", pathPrefix: "/car/", source: s.cars},
		{name: "tours", pathPrefix: "/trip/", source: s.tours},
	}

	results := make([][]models.SitemapRef, len(sections))
	var wg sync.WaitGroup
	for i, section := range sections {
		wg.Add(1)
		go func(i int, section sitemapSection) {
			defer wg.Done()
			refs, err := section.source.SitemapRefs()
			if err != nil {
				// Empty and error are distinct: an error omits the
				// section loudly instead of silently shipping nothing.
				s.logger.WithError(err).WithField("section", section.name).
					Warn("sitemap section read failed, omitting")
				return
			}
			results[i] = refs
		}(i, section)
	}
	wg.Wait()

	for i, section := range sections {
		for _, ref := range results[i] {
			lastMod := today
			if ref.UpdatedAt != nil {
				lastMod = ref.UpdatedAt.UTC().Format("2006-01-02")
			}
			urls = append(urls, sitemapURL{
				Loc:        s.baseURL + section.pathPrefix + ref.Ref,
				LastMod:    lastMod,
				ChangeFreq: "weekly",
				Priority:   "0.7",
			})
		}
	}

	doc := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
