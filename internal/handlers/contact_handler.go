package handlers

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/atlasrides/rental-backend/internal/config"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/atlasrides/rental-backend/internal/utils"
	"github.com/atlasrides/rental-backend/pkg/email"
	"github.com/atlasrides/rental-backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContactHandler relays contact form submissions by email
type ContactHandler struct {
	cfg            *config.Config
	gateway        email.Gateway
	emailValidator *validator.EmailValidator
	rateLimits     *services.RateLimitService
	logger         *logrus.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cfg *config.Config, gateway email.Gateway, emailValidator *validator.EmailValidator, rateLimits *services.RateLimitService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		cfg:            cfg,
		gateway:        gateway,
		emailValidator: emailValidator,
		rateLimits:     rateLimits,
		logger:         logger,
	}
}

// SendContact validates a submission and relays it to the site owner
// POST /api/send-contact
func (h *ContactHandler) SendContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Request body must be valid JSON"})
		return
	}

	senderEmail, err := h.emailValidator.Validate(req.Email)
	if err != nil || strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		// No per-field detail; the form enforces specifics client-side.
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Name, a valid email address, subject and message are required",
		})
		return
	}

	if err := h.rateLimits.CheckContactRateLimit(c.ClientIP()); err != nil {
		var rateErr *services.RateLimitError
		if errors.As(err, &rateErr) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited", "message": rateErr.Message})
			return
		}
		// A broken rate limit store must not block the form.
		h.logger.WithError(err).Warn("contact rate limit check failed")
	}

	// Misconfiguration is an operator problem, reported distinctly
	// from provider outages.
	if !h.cfg.EmailConfigured() {
		h.logger.Error("contact relay invoked without email configuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "not_configured", "message": "Email service is not configured"})
		return
	}

	msg := email.Message{
		From:    h.cfg.Email.FromEmail,
		To:      []string{h.cfg.Email.ToEmail},
		ReplyTo: senderEmail,
		Subject: fmt.Sprintf("[Contact] %s", strings.TrimSpace(req.Subject)),
		HTML:    contactEmailHTML(req, senderEmail, utils.SummarizeUserAgent(c.Request.UserAgent())),
	}

	if _, err := h.gateway.Send(msg); err != nil {
		// Provider detail stays in the logs.
		h.logger.WithError(err).Error("contact email send failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "send_failed", "message": "Failed to send message"})
		return
	}

	if err := h.rateLimits.RecordContactRequest(c.ClientIP()); err != nil {
		h.logger.WithError(err).Warn("failed to record contact request")
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// TestEmailConfig reports email configuration state and optionally
// sends a probe email
// GET /api/test-email-config?send=true&to=<addr>
func (h *ContactHandler) TestEmailConfig(c *gin.Context) {
	status := gin.H{
		"gateway":     h.gateway.Name(),
		"api_key_set": h.cfg.Email.APIKey != "",
		"from_set":    h.cfg.Email.FromEmail != "",
		"to_set":      h.cfg.Email.ToEmail != "",
		"configured":  h.cfg.EmailConfigured(),
		"usage":       "GET /api/test-email-config?send=true&to=you@example.com sends a probe email",
	}

	if c.Query("send") != "true" {
		c.JSON(http.StatusOK, status)
		return
	}

	probeTo := c.Query("to")
	if probeTo == "" || !h.cfg.EmailConfigured() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_prerequisites",
			"message": "Probe send requires email configuration and a to address",
		})
		return
	}

	if _, err := h.emailValidator.Validate(probeTo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_prerequisites", "message": "Probe to address is not a valid email"})
		return
	}

	_, err := h.gateway.Send(email.Message{
		From:    h.cfg.Email.FromEmail,
		To:      []string{probeTo},
		Subject: "Email configuration probe",
		Text:    "This probe confirms the contact relay can deliver mail.",
	})
	if err != nil {
		h.logger.WithError(err).Error("probe email send failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "send_failed", "message": "Probe email failed to send"})
		return
	}

	status["sent"] = true
	status["sent_to"] = probeTo
	c.JSON(http.StatusOK, status)
}

// contactEmailHTML renders the relayed submission. User input is
// escaped; the admin reads this in a mail client.
func contactEmailHTML(req models.ContactRequest, senderEmail, device string) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>", html.EscapeString(strings.TrimSpace(req.Name))))
	b.WriteString(fmt.Sprintf("<p><strong>Email:</strong> %s</p>", html.EscapeString(senderEmail)))
	b.WriteString(fmt.Sprintf("<p><strong>Subject:</strong> %s</p>", html.EscapeString(strings.TrimSpace(req.Subject))))
	b.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(strings.TrimSpace(req.Message))))
	if device != "" {
		b.WriteString(fmt.Sprintf("<p><em>Sent from %s</em></p>", html.EscapeString(device)))
	}
	return b.String()
}
