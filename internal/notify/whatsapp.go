// Package notify builds the WhatsApp deep link that hands a captured lead
// over to a human conversation. Opening the link is the client's job; the
// server only guarantees the link is always built, whether or not the lead
// was persisted.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"tenthouse_backend/internal/models"
)

// WhatsAppBuilder constructs wa.me deep links prefilled with lead details.
type WhatsAppBuilder struct {
	number       string // E.164 without the leading plus, e.g. 919926543692
	businessName string
}

// NewWhatsAppBuilder creates a builder for the business's WhatsApp number.
// The number may contain '+' or spaces; they are stripped to the wa.me form.
func NewWhatsAppBuilder(number, businessName string) *WhatsAppBuilder {
	number = strings.ReplaceAll(number, "+", "")
	number = strings.ReplaceAll(number, " ", "")
	return &WhatsAppBuilder{number: number, businessName: businessName}
}

// EnquiryMessage renders the prefilled message text for a lead. Field order
// is fixed: greeting, Name, WhatsApp, Service, Event Date, Location, the Note
// block, and a closing call-to-action.
func (b *WhatsAppBuilder) EnquiryMessage(e *models.Enquiry) string {
	note := e.Message
	if strings.TrimSpace(note) == "" {
		note = models.DefaultEnquiryNote
	}
	return fmt.Sprintf(
		"Hello %s 👑\n\n"+
			"Name: %s\n"+
			"WhatsApp: %s\n"+
			"Service: %s\n"+
			"Event Date: %s\n"+
			"Location: %s\n\n"+
			"Note:\n%s\n\n"+
			"Please contact me.",
		b.businessName, e.Name, e.Phone, e.Service, e.EventDate, e.City, note,
	)
}

// EnquiryLink returns the full wa.me URL with the url-encoded message.
func (b *WhatsAppBuilder) EnquiryLink(e *models.Enquiry) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.number, url.QueryEscape(b.EnquiryMessage(e)))
}
