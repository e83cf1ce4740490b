package mailing

import (
	"fmt"

	"github.com/ignite/newsletter/internal/domain"
)

const (
	welcomeSubjectTemplate = `Welcome to our newsletter, {{ name | first_name }}!`

	welcomeHTMLTemplate = `<p>Hi {{ name | escape }},</p>
<p>Thanks for subscribing! You will receive the next issue in your inbox.</p>`

	welcomeTextTemplate = `Hi {{ name }},

Thanks for subscribing! You will receive the next issue in your inbox.`
)

// Message is rendered email content, ready for the dispatch client.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// RenderWelcome renders the welcome email for a new subscriber.
func (ts *TemplateService) RenderWelcome(name domain.SubscriberName) (Message, error) {
	bindings := map[string]interface{}{"name": name.String()}

	subject, err := ts.Render("welcome.subject", welcomeSubjectTemplate, bindings)
	if err != nil {
		return Message{}, fmt.Errorf("rendering welcome subject: %w", err)
	}
	htmlBody, err := ts.Render("welcome.html", welcomeHTMLTemplate, bindings)
	if err != nil {
		return Message{}, fmt.Errorf("rendering welcome html: %w", err)
	}
	textBody, err := ts.Render("welcome.text", welcomeTextTemplate, bindings)
	if err != nil {
		return Message{}, fmt.Errorf("rendering welcome text: %w", err)
	}

	return Message{Subject: subject, HTML: htmlBody, Text: textBody}, nil
}
