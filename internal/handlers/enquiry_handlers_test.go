package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeEnquiryService struct {
	submitted []services.SubmitEnquiryRequest
	result    *services.SubmitEnquiryResult
	err       error
}

func (f *fakeEnquiryService) SubmitEnquiry(req services.SubmitEnquiryRequest) (*services.SubmitEnquiryResult, error) {
	f.submitted = append(f.submitted, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeEnquiryService) GetEnquiries() ([]models.Enquiry, error) { return nil, nil }
func (f *fakeEnquiryService) DeleteEnquiry(id int64) error            { return nil }

func newEnquiryRouter(svc services.EnquiryService) *gin.Engine {
	engine := gin.New()
	handler := NewEnquiryHandler(svc)
	engine.POST("/api/v1/enquiries", handler.SubmitEnquiry)
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSubmitEnquiryReturnsDeepLink(t *testing.T) {
	svc := &fakeEnquiryService{
		result: &services.SubmitEnquiryResult{
			Persisted:   true,
			WhatsAppURL: "https://wa.me/919926543692?text=Hello",
		},
	}
	engine := newEnquiryRouter(svc)

	w := postJSON(engine, "/api/v1/enquiries", `{
		"name": "Rajesh Kumar",
		"phone": "+919999999999",
		"event_date": "2025-12-01",
		"city": "Chandia",
		"service": "Royal Stage Design",
		"message": "Need a stage for 500 guests"
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	var resp services.SubmitEnquiryResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.WhatsAppURL != svc.result.WhatsAppURL {
		t.Errorf("whatsapp_url = %q, want %q", resp.WhatsAppURL, svc.result.WhatsAppURL)
	}
	if len(svc.submitted) != 1 || svc.submitted[0].City != "Chandia" {
		t.Errorf("service received %v", svc.submitted)
	}
}

func TestSubmitEnquiryMissingRequiredFieldIsRejectedBeforeService(t *testing.T) {
	svc := &fakeEnquiryService{}
	engine := newEnquiryRouter(svc)

	// phone omitted
	w := postJSON(engine, "/api/v1/enquiries", `{
		"name": "Rajesh Kumar",
		"event_date": "2025-12-01",
		"city": "Chandia"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
	}
	if len(svc.submitted) != 0 {
		t.Error("service must not be invoked for an invalid payload")
	}
}

func TestSubmitEnquiryMalformedJSON(t *testing.T) {
	svc := &fakeEnquiryService{}
	engine := newEnquiryRouter(svc)

	if w := postJSON(engine, "/api/v1/enquiries", `{not json`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(svc.submitted) != 0 {
		t.Error("service must not be invoked for a malformed payload")
	}
}
