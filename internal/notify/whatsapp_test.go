package notify

import (
	"net/url"
	"strings"
	"testing"

	"tenthouse_backend/internal/models"
)

func TestEnquiryLinkEncodesAllFieldsInOrder(t *testing.T) {
	b := NewWhatsAppBuilder("+91 9926543692", "Azad Tent House")
	enquiry := &models.Enquiry{
		Name:      "Rajesh Kumar",
		Phone:     "+919999999999",
		EventDate: "2025-12-01",
		City:      "Chandia",
		Service:   "Royal Stage Design",
		Message:   "Need a stage for 500 guests",
	}

	link := b.EnquiryLink(enquiry)

	const prefix = "https://wa.me/919926543692?text="
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("link = %q, want prefix %q", link, prefix)
	}

	text, err := url.QueryUnescape(strings.TrimPrefix(link, prefix))
	if err != nil {
		t.Fatalf("link text is not url-encoded: %v", err)
	}

	wantInOrder := []string{
		"Hello Azad Tent House",
		"Name: Rajesh Kumar",
		"WhatsApp: +919999999999",
		"Service: Royal Stage Design",
		"Event Date: 2025-12-01",
		"Location: Chandia",
		"Need a stage for 500 guests",
		"Please contact me.",
	}
	pos := -1
	for _, want := range wantInOrder {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Fatalf("message %q missing %q", text, want)
		}
		if idx <= pos {
			t.Fatalf("message field %q out of order in %q", want, text)
		}
		pos = idx
	}
}

func TestEnquiryMessageDefaultsBlankNote(t *testing.T) {
	b := NewWhatsAppBuilder("919926543692", "Azad Tent House")
	msg := b.EnquiryMessage(&models.Enquiry{
		Name:      "Priya",
		Phone:     "+918888888888",
		EventDate: "2026-01-15",
		City:      "Indore",
		Message:   "   ",
	})

	if !strings.Contains(msg, models.DefaultEnquiryNote) {
		t.Errorf("message %q should contain default note %q", msg, models.DefaultEnquiryNote)
	}
}

func TestNewWhatsAppBuilderNormalizesNumber(t *testing.T) {
	b := NewWhatsAppBuilder("+91 99 265 43692", "Azad Tent House")
	link := b.EnquiryLink(&models.Enquiry{Name: "x", Phone: "y", EventDate: "z", City: "c"})
	if !strings.HasPrefix(link, "https://wa.me/919926543692?") {
		t.Errorf("number not normalized: %q", link)
	}
}
