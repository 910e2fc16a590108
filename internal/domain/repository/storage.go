package repository

import (
	"context"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
)

// FileReferenceStore gives access to the host files referencing videos
// through repository instances.
// Implementations should be provided by the infrastructure layer (e.g., PostgreSQL).
type FileReferenceStore interface {
	// ListInstances returns every instance of the given repository type,
	// ordered by id. Returns an empty slice when there is none.
	ListInstances(ctx context.Context, repositoryType string) ([]model.RepositoryInstance, error)

	// RemoveFiles deletes the files referencing the instance together with
	// their references, and returns the number of removed files.
	RemoveFiles(ctx context.Context, instanceID int64) (int64, error)
}
