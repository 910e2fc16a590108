package openveo

import (
	"context"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
)

const (
	testClientID     = "moodle"
	testClientSecret = "s3cr3t"
	testAccessToken  = "access-token"
)

// newTestServer starts a fake web service answering the token endpoint and
// the given video handler.
func newTestServer(t *testing.T, videoHandler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		id, secret, ok := r.BasicAuth()
		if !ok || id != testClientID || secret != testClientSecret {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + testAccessToken + `","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /publish/videos/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		videoHandler(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	c, err := NewClient(ClientConfig{
		BaseURL:      baseURL,
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClientConfig
	}{
		{name: "missing URL", cfg: ClientConfig{ClientID: "id", ClientSecret: "secret"}},
		{name: "relative URL", cfg: ClientConfig{BaseURL: "openveo.local", ClientID: "id", ClientSecret: "secret"}},
		{name: "unsupported scheme", cfg: ClientConfig{BaseURL: "ftp://openveo.local", ClientID: "id", ClientSecret: "secret"}},
		{name: "missing client id", cfg: ClientConfig{BaseURL: "https://openveo.local", ClientSecret: "secret"}},
		{name: "missing client secret", cfg: ClientConfig{BaseURL: "https://openveo.local", ClientID: "id"}},
		{name: "unreadable certificate", cfg: ClientConfig{BaseURL: "https://openveo.local", ClientID: "id", ClientSecret: "secret", CertificateFile: "/nonexistent/ca.pem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, repository.ErrNotConfigured)
		})
	}
}

func TestNewClient_InvalidCertificateContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

	_, err := NewClient(ClientConfig{
		BaseURL:         "https://openveo.local",
		ClientID:        "id",
		ClientSecret:    "secret",
		CertificateFile: path,
	})
	assert.ErrorIs(t, err, repository.ErrNotConfigured)
}

func TestNewClient_NoNetworkCall(t *testing.T) {
	srv, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := NewClient(ClientConfig{BaseURL: srv.URL, ClientID: testClientID})
	assert.ErrorIs(t, err, repository.ErrNotConfigured)

	_ = newTestClient(t, srv.URL)
	assert.Equal(t, int32(0), hits.Load())
}

func TestClient_GetVideo(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		want       *model.Video
		wantErr    error
		wantRemote *repository.RemoteError
	}{
		{
			name: "published video",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "ryiKXvW1X", r.PathValue("id"))
				_, _ = w.Write([]byte(`{"entity":{"id":"ryiKXvW1X","title":"Lecture 1","state":12,"thumbnail":"https://cdn.example.com/thumb.jpg","date":1527502496987}}`))
			},
			want: &model.Video{
				ID:        "ryiKXvW1X",
				Title:     "Lecture 1",
				State:     model.StatePublished,
				Thumbnail: "https://cdn.example.com/thumb.jpg",
				Date:      1527502496987,
			},
		},
		{
			name: "unpublished video",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"entity":{"id":"ryiKXvW1X","title":"Draft","state":6,"date":0}}`))
			},
			want: &model.Video{ID: "ryiKXvW1X", Title: "Draft", State: 6},
		},
		{
			name: "no entity",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			want: nil,
		},
		{
			name: "error payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"code":3,"module":"publish"}}`))
			},
			wantRemote: &repository.RemoteError{Code: "3", Module: "publish"},
		},
		{
			name: "error payload with numeric module",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":{"code":"5","module":7}}`))
			},
			wantRemote: &repository.RemoteError{Code: "5", Module: "7"},
		},
		{
			name: "error payload with unexpected fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"code":{"id":1},"module":null}}`))
			},
			wantRemote: &repository.RemoteError{Code: `{"id":1}`},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantErr: repository.ErrConnectionFailed,
		},
		{
			name: "unexpected status without payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{}`))
			},
			wantErr: repository.ErrConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.handler)
			c := newTestClient(t, srv.URL)

			got, err := c.GetVideo(context.Background(), "ryiKXvW1X")

			switch {
			case tt.wantRemote != nil:
				var remoteErr *repository.RemoteError
				require.True(t, errors.As(err, &remoteErr), "expected RemoteError, got %v", err)
				assert.Equal(t, tt.wantRemote, remoteErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClient_GetVideo_TokenRejected(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("video endpoint should not be reached without a token")
	})

	c, err := NewClient(ClientConfig{
		BaseURL:      srv.URL,
		ClientID:     testClientID,
		ClientSecret: "wrong",
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)

	_, err = c.GetVideo(context.Background(), "ryiKXvW1X")
	assert.ErrorIs(t, err, repository.ErrConnectionFailed)
}

func TestClient_GetVideo_Unreachable(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(t, srv.URL)
	srv.Close()

	_, err := c.GetVideo(context.Background(), "ryiKXvW1X")
	assert.ErrorIs(t, err, repository.ErrConnectionFailed)
}

func TestClient_GetVideo_CustomCertificate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + testAccessToken + `","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /publish/videos/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"entity":{"id":"abc","title":"Secure","state":12,"date":2000}}`))
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	certPath := filepath.Join(t.TempDir(), "ca.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	require.NoError(t, os.WriteFile(certPath, certPEM, 0o600))

	c, err := NewClient(ClientConfig{
		BaseURL:         srv.URL,
		ClientID:        testClientID,
		ClientSecret:    testClientSecret,
		CertificateFile: certPath,
		Timeout:         5 * time.Second,
	})
	require.NoError(t, err)

	got, err := c.GetVideo(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Secure", got.Title)
	assert.Equal(t, int64(2000), got.Date)
}
