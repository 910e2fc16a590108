package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/metrics"
)

// SearchInput contains the input parameters for resolving a video URL.
type SearchInput struct {
	URL string
	// AcceptedTypes are the extensions accepted by the host field.
	// Empty means any type.
	AcceptedTypes []string
}

// SearchOutput contains the result of resolving a video URL.
// Reference is only set when the video is published.
type SearchOutput struct {
	Outcome   model.Outcome
	Reference *model.VideoReference
	ManageURL string
}

// ReferenceService defines the interface for resolving OpenVeo video
// references.
type ReferenceService interface {
	// Search resolves a public video URL into a reference.
	// Returns model.ErrNoCompatibleType when no supported extension is
	// accepted. Every other failure yields an output without reference.
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// ReferenceDetails looks up a stored reference. A non-zero fileStatus
	// short-circuits to a missing outcome without remote call.
	ReferenceDetails(ctx context.Context, id string, fileStatus int) model.Outcome

	// Link returns the public URL of a video.
	Link(id string) string

	// ManageURL returns the URL of the OpenVeo back office.
	ManageURL() string
}

// ReferenceServiceConfig holds configuration for ReferenceService.
type ReferenceServiceConfig struct {
	// CDNURL is the public base URL videos are served from.
	CDNURL string
	// SupportedExtensions are the synthetic extensions references can
	// take, in order of preference.
	SupportedExtensions []string
}

type referenceService struct {
	catalog repository.VideoCatalog
	events  repository.EventPublisher

	cdnURL              string
	supportedExtensions []string
}

// NewReferenceService creates a new ReferenceService instance.
// Returns repository.ErrNotConfigured when the CDN URL or the supported
// extensions are missing.
func NewReferenceService(
	catalog repository.VideoCatalog,
	events repository.EventPublisher,
	cfg ReferenceServiceConfig,
) (ReferenceService, error) {
	cdnURL := strings.Trim(strings.TrimSpace(cfg.CDNURL), "/")
	u, err := url.Parse(cdnURL)
	if cdnURL == "" || err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid CDN URL %q: %w", cfg.CDNURL, repository.ErrNotConfigured)
	}

	var extensions []string
	for _, ext := range cfg.SupportedExtensions {
		if ext = strings.TrimSpace(ext); ext != "" {
			extensions = append(extensions, ext)
		}
	}
	if len(extensions) == 0 {
		return nil, fmt.Errorf("no supported extension: %w", repository.ErrNotConfigured)
	}

	return &referenceService{
		catalog:             catalog,
		events:              events,
		cdnURL:              cdnURL,
		supportedExtensions: extensions,
	}, nil
}

// Search resolves a public video URL into a reference.
func (s *referenceService) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	output := &SearchOutput{ManageURL: s.ManageURL()}

	id, err := model.ParseVideoURL(input.URL)
	if err != nil {
		output.Outcome = model.Unmatched()
		metrics.LookupsTotal.WithLabelValues(metrics.LookupSearch, output.Outcome.Kind.String()).Inc()
		return output, nil
	}

	accepted := input.AcceptedTypes
	if len(accepted) == 0 {
		accepted = []string{model.AnyType}
	}
	extension, err := model.SelectExtension(accepted, s.supportedExtensions)
	if err != nil {
		return nil, err
	}

	output.Outcome = s.lookup(ctx, metrics.LookupSearch, id)
	if output.Outcome.IsPublished() {
		reference, err := model.NewVideoReference(output.Outcome.Video, extension)
		if err != nil {
			return nil, fmt.Errorf("build reference: %w", err)
		}
		output.Reference = reference
	}

	return output, nil
}

// ReferenceDetails looks up a stored reference.
func (s *referenceService) ReferenceDetails(ctx context.Context, id string, fileStatus int) model.Outcome {
	if fileStatus != 0 || !model.IsValidVideoID(id) {
		outcome := model.Missing(id)
		metrics.LookupsTotal.WithLabelValues(metrics.LookupDetails, outcome.Kind.String()).Inc()
		return outcome
	}

	return s.lookup(ctx, metrics.LookupDetails, id)
}

// Link returns the public URL of a video.
func (s *referenceService) Link(id string) string {
	return s.cdnURL + model.VideoPath(id)
}

// ManageURL returns the URL of the OpenVeo back office.
func (s *referenceService) ManageURL() string {
	return s.cdnURL + "/be"
}

// lookup fetches a video with a single request and classifies the answer.
func (s *referenceService) lookup(ctx context.Context, operation, id string) model.Outcome {
	var outcome model.Outcome

	video, err := s.catalog.GetVideo(ctx, id)
	switch {
	case err != nil:
		s.reportFailure(ctx, id, err)
		outcome = model.RequestFailed(id, err)
	case !video.IsPublished():
		outcome = model.Missing(id)
	default:
		outcome = model.Published(video)
	}

	metrics.LookupsTotal.WithLabelValues(operation, outcome.Kind.String()).Inc()
	return outcome
}

// reportFailure emits the diagnostic event matching a failed request.
func (s *referenceService) reportFailure(ctx context.Context, id string, err error) {
	var event model.Event

	var remoteErr *repository.RemoteError
	if errors.As(err, &remoteErr) {
		event = model.NewGettingVideosFailedEvent(id, remoteErr.Code, remoteErr.Module)
	} else {
		event = model.NewConnectionFailedEvent(id, err.Error())
	}

	s.publish(ctx, event)
}

// publish sends an event without failing the caller.
func (s *referenceService) publish(ctx context.Context, event model.Event) {
	if err := s.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		slog.Warn("failed to publish event",
			"event_id", event.ID,
			"event", event.Name,
			"error", err,
		)
		metrics.EventsTotal.WithLabelValues(event.Name.String(), metrics.StatusError).Inc()
		return
	}

	metrics.EventsTotal.WithLabelValues(event.Name.String(), metrics.StatusSuccess).Inc()
}
