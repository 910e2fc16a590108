package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent", header: ""},
		{name: "kept when valid", header: "host-req-42", wantSame: true},
		{name: "replaced when it has spaces", header: "bad id"},
		{name: "replaced when too long", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get(RequestIDHeader); got != seen {
				t.Errorf("response header = %q, context = %q", got, seen)
			}
			if tt.wantSame {
				if seen != tt.header {
					t.Errorf("request id = %q, want %q", seen, tt.header)
				}
				return
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("request id %q is not a UUID: %v", seen, err)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		want           language.Tag
	}{
		{name: "default", target: "/", want: language.English},
		{name: "header", target: "/", acceptLanguage: "fr-CH, fr;q=0.9", want: language.French},
		{name: "query wins", target: "/?lang=en", acceptLanguage: "fr", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got language.Tag
			h := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLocalizer(r.Context()).Tag()
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("localizer = %v, want %v", got, tt.want)
			}
			if rec.Header().Get("Content-Language") != tt.want.String() {
				t.Errorf("Content-Language = %q, want %q", rec.Header().Get("Content-Language"), tt.want)
			}
		})
	}
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := RequestID(Recoverer(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "internal_error") {
		t.Errorf("body = %q", rec.Body.String())
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("log = %q, want panic record", buf.String())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	out := buf.String()
	for _, want := range []string{`"status":418`, `"bytes":15`, `"path":"/health"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q should contain %s", out, want)
		}
	}
}
