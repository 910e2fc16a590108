// Package openveo implements the OpenVeo web service client.
package openveo

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
)

const (
	tokenPath       = "token"
	maxResponseSize = 1 << 20
)

// ClientConfig holds the connection settings of the web service.
type ClientConfig struct {
	BaseURL         string
	ClientID        string
	ClientSecret    string
	CertificateFile string // Optional: PEM bundle trusted for TLS
	Timeout         time.Duration
}

// Client requests the OpenVeo web service on behalf of a registered
// client application. It implements repository.VideoCatalog.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

var _ repository.VideoCatalog = (*Client)(nil)

// NewClient validates the configuration and prepares an authenticated
// client. No request is sent until the first lookup; the access token is
// fetched lazily with the client credentials grant and refreshed on expiry.
// Returns an error wrapping repository.ErrNotConfigured on invalid settings.
func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrNotConfigured, err)
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: client id and secret are required", repository.ErrNotConfigured)
	}

	transport, err := newTransport(cfg.CertificateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrNotConfigured, err)
	}

	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL.JoinPath(tokenPath).String(),
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The token source keeps this context for every token request.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	})

	httpClient := credentials.Client(tokenCtx)
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("web service URL is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid web service URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported web service URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("web service URL has no host")
	}
	return u, nil
}

func newTransport(certificateFile string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if certificateFile == "" {
		return transport, nil
	}

	data, err := os.ReadFile(certificateFile)
	if err != nil {
		return nil, fmt.Errorf("read certificate: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("no PEM certificate found in %s", certificateFile)
	}

	transport.TLSClientConfig = &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}
	return transport, nil
}

// videoEntity is the JSON representation of a video in web service responses.
type videoEntity struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	State     int     `json:"state"`
	Thumbnail string  `json:"thumbnail"`
	Date      float64 `json:"date"`
}

// errorPayload fields are left raw: module is a name such as "publish"
// and code is a number, but neither is trusted to keep its type.
type errorPayload struct {
	Code   json.RawMessage `json:"code"`
	Module json.RawMessage `json:"module"`
}

func (p *errorPayload) toRemoteError() *repository.RemoteError {
	return &repository.RemoteError{
		Code:   rawText(p.Code),
		Module: rawText(p.Module),
	}
}

// rawText returns a JSON string unquoted and any other value as written.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

type videoResponse struct {
	Entity *videoEntity  `json:"entity"`
	Error  *errorPayload `json:"error"`
}

// GetVideo sends GET publish/videos/{id}. The request is never retried.
func (c *Client) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	endpoint := c.baseURL.JoinPath("publish", "videos", url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", repository.ErrConnectionFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	var body videoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response (status %d): %v", repository.ErrConnectionFailed, resp.StatusCode, err)
	}

	// Error payloads come with a non 2xx status, check them first.
	if body.Error != nil {
		return nil, body.Error.toRemoteError()
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: unexpected status %d", repository.ErrConnectionFailed, resp.StatusCode)
	}

	if body.Entity == nil {
		return nil, nil
	}

	return &model.Video{
		ID:        body.Entity.ID,
		Title:     body.Entity.Title,
		State:     model.State(body.Entity.State),
		Thumbnail: body.Entity.Thumbnail,
		Date:      int64(body.Entity.Date),
	}, nil
}
