package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/mailing"
	"github.com/ignite/newsletter/internal/pkg/httputil"
	"github.com/ignite/newsletter/internal/pkg/logger"
)

// EmailSender delivers one email to one recipient. *emailclient.Client
// satisfies it.
type EmailSender interface {
	SendEmail(ctx context.Context, recipient domain.SubscriberEmail, subject, htmlContent, textContent string) error
}

// Handlers contains all HTTP handlers
type Handlers struct {
	emailSender EmailSender
	templates   *mailing.TemplateService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(emailSender EmailSender, templates *mailing.TemplateService) *Handlers {
	return &Handlers{emailSender: emailSender, templates: templates}
}

// HealthCheck answers 200 with an empty body.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Subscribe validates a form-encoded sign-up (name, email) and sends the
// welcome email. Invalid input is a 400; a failed send is a 500.
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())

	if err := r.ParseForm(); err != nil {
		httputil.BadRequest(w, "invalid form body")
		return
	}
	for _, field := range []string{"name", "email"} {
		if !r.PostForm.Has(field) {
			httputil.BadRequest(w, "missing the "+field)
			return
		}
	}

	subscriber, err := domain.ParseNewSubscriber(r.PostForm.Get("name"), r.PostForm.Get("email"))
	if err != nil {
		logger.Info("rejected subscription", "request_id", requestID, "reason", err)
		httputil.BadRequest(w, err.Error())
		return
	}

	msg, err := h.templates.RenderWelcome(subscriber.Name)
	if err != nil {
		httputil.InternalError(w, err, "request_id", requestID)
		return
	}

	if err := h.emailSender.SendEmail(r.Context(), subscriber.Email, msg.Subject, msg.HTML, msg.Text); err != nil {
		httputil.InternalError(w, err, "request_id", requestID, "subscriber_email", subscriber.Email)
		return
	}

	logger.Info("new subscriber", "request_id", requestID, "subscriber_email", subscriber.Email)
	httputil.OK(w, map[string]string{"status": "subscribed"})
}
