package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tenthouse_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.InitJWT("test-signing-key"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type allowlistVerifier struct {
	allowed map[int64]bool
	err     error
}

func (v *allowlistVerifier) VerifyAdmin(adminID int64) error {
	if v.err != nil {
		return v.err
	}
	if !v.allowed[adminID] {
		return errAccessDenied
	}
	return nil
}

var errAccessDenied = errors.New("access denied")

func newGuardedRouter(verifier AdminVerifier) (*gin.Engine, *bool) {
	handlerRan := false
	engine := gin.New()
	guarded := engine.Group("/admin")
	guarded.Use(AuthMiddleware(), AdminAuthMiddleware(verifier))
	guarded.GET("/panel", func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return engine, &handlerRan
}

func request(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGuardDeniesWithoutSession(t *testing.T) {
	engine, handlerRan := newGuardedRouter(&allowlistVerifier{allowed: map[int64]bool{}})

	if w := request(engine, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := request(engine, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
	if *handlerRan {
		t.Error("protected handler must never run without a valid session")
	}
}

func TestGuardDeniesNonAllowlistedAdmin(t *testing.T) {
	engine, handlerRan := newGuardedRouter(&allowlistVerifier{allowed: map[int64]bool{}})

	token, err := utils.GenerateAccessToken(7, "former@azadtent.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if w := request(engine, token); w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if *handlerRan {
		t.Error("protected handler must never run for a non-allowlisted session")
	}
}

func TestGuardDeniesOnVerifierFailure(t *testing.T) {
	engine, handlerRan := newGuardedRouter(&allowlistVerifier{err: errAccessDenied})

	token, err := utils.GenerateAccessToken(1, "admin@azadtent.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if w := request(engine, token); w.Code != http.StatusForbidden {
		t.Errorf("verifier failure must deny, status = %d, want 403", w.Code)
	}
	if *handlerRan {
		t.Error("protected handler must never run when the allow-list check fails")
	}
}

func TestGuardAdmitsAllowlistedAdmin(t *testing.T) {
	engine, handlerRan := newGuardedRouter(&allowlistVerifier{allowed: map[int64]bool{1: true}})

	token, err := utils.GenerateAccessToken(1, "admin@azadtent.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if w := request(engine, token); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	if !*handlerRan {
		t.Error("protected handler should have run for an allow-listed admin")
	}
}
