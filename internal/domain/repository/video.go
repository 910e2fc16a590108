package repository

import (
	"context"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
)

// VideoCatalog gives read access to the remote OpenVeo video catalogue.
// Implementations should be provided by the infrastructure layer (e.g., the OpenVeo web service client).
type VideoCatalog interface {
	// GetVideo retrieves a video by its identifier with a single request.
	// Returns nil, nil when the service answers without an entity.
	// Transport failures wrap ErrConnectionFailed, error payloads are
	// returned as *RemoteError.
	GetVideo(ctx context.Context, id string) (*model.Video, error)
}
