package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/mailbite/internal/pkg/config"
	"github.com/shandysiswandi/mailbite/internal/pkg/goerror"
	"github.com/shandysiswandi/mailbite/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbite/internal/pkg/uid"
)

func newTestRouter(t *testing.T, env string) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  env: "+env+"\n"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	return NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
}

func doRequest(r *Router, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterSuccessCodec(t *testing.T) {
	r := newTestRouter(t, "development")
	r.GET("/ping", func(*Request) (any, error) {
		return map[string]string{"pong": "yes"}, nil
	})

	rec := doRequest(r, http.MethodGet, "/ping", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["pong"] != "yes" {
		t.Errorf("body = %v", body)
	}
}

type teapotResponse struct {
	OK bool `json:"ok"`
}

func (teapotResponse) StatusCode() int { return http.StatusTeapot }

func TestRouterStatusCodeOverride(t *testing.T) {
	r := newTestRouter(t, "development")
	r.GET("/tea", func(*Request) (any, error) {
		return teapotResponse{OK: true}, nil
	})

	rec := doRequest(r, http.MethodGet, "/tea", "")
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
}

func TestRouterValidationError(t *testing.T) {
	r := newTestRouter(t, "development")
	r.POST("/things", func(*Request) (any, error) {
		return nil, goerror.NewInvalidFormat("phrase is required")
	})

	rec := doRequest(r, http.MethodPost, "/things", "{}")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if !strings.Contains(body.Error, "required") {
		t.Errorf("error = %q, should mention required", body.Error)
	}
}

func TestRouterDispatchErrorDetails(t *testing.T) {
	cause := errors.New("535 5.7.8 Username and Password not accepted")
	handler := func(*Request) (any, error) {
		return nil, goerror.NewDispatch(cause, "Email authentication failed.", goerror.CodeDispatchAuth)
	}

	type errBody struct {
		Success   bool   `json:"success"`
		Error     string `json:"error"`
		Details   string `json:"details"`
		Timestamp string `json:"timestamp"`
	}

	// Development mode exposes the raw provider error.
	dev := newTestRouter(t, "development")
	dev.POST("/send", handler)
	rec := doRequest(dev, http.MethodPost, "/send", "{}")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body errBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Email authentication failed." {
		t.Errorf("error = %q", body.Error)
	}
	if body.Details != cause.Error() {
		t.Errorf("details = %q, want raw cause", body.Details)
	}
	if body.Timestamp == "" {
		t.Error("timestamp should be set on server errors")
	}

	// Production hides details.
	prod := newTestRouter(t, "production")
	prod.POST("/send", handler)
	rec = doRequest(prod, http.MethodPost, "/send", "{}")
	body = errBody{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Details != "" {
		t.Errorf("details = %q, should be hidden in production", body.Details)
	}
}

func TestRouterNotFound(t *testing.T) {
	r := newTestRouter(t, "development")
	r.GET("/", func(*Request) (any, error) { return map[string]string{}, nil })
	r.GET("/health", func(*Request) (any, error) { return map[string]string{}, nil })
	r.POST("/submit-function", func(*Request) (any, error) { return map[string]string{}, nil })

	rec := doRequest(r, http.MethodGet, "/nope", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body struct {
		Error              string   `json:"error"`
		AvailableEndpoints []string `json:"availableEndpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error == "" {
		t.Error("error should be set")
	}
	if len(body.AvailableEndpoints) != 3 {
		t.Errorf("availableEndpoints = %v", body.AvailableEndpoints)
	}
}

func TestRouterRecoverer(t *testing.T) {
	r := newTestRouter(t, "development")
	r.GET("/boom", func(*Request) (any, error) {
		panic("unexpected")
	})

	rec := doRequest(r, http.MethodGet, "/boom", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Error == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestRouterRealIP(t *testing.T) {
	r := newTestRouter(t, "development")

	var seen string
	r.GET("/ip", func(req *Request) (any, error) {
		seen = req.ClientIP()
		return map[string]string{}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen != "203.0.113.9" {
		t.Errorf("client ip = %q, want forwarded address", seen)
	}
}
