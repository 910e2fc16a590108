package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/metrics"
)

// UninstallOutput reports what the uninstaller removed.
type UninstallOutput struct {
	Instances    int
	RemovedFiles int64
}

// UninstallService removes the host files left behind by the repository.
//
// Videos can't be downloaded, so the host has nothing to import when the
// repository goes away and keeps files pointing at references that no
// longer resolve.
type UninstallService interface {
	// RemoveRepositoryFiles removes the files of every repository instance.
	// Stops at the first instance that fails; instances already processed
	// stay removed.
	RemoveRepositoryFiles(ctx context.Context) (*UninstallOutput, error)
}

type uninstallService struct {
	store repository.FileReferenceStore
}

// NewUninstallService creates a new UninstallService instance.
func NewUninstallService(store repository.FileReferenceStore) UninstallService {
	return &uninstallService{store: store}
}

func (s *uninstallService) RemoveRepositoryFiles(ctx context.Context) (*UninstallOutput, error) {
	instances, err := s.store.ListInstances(ctx, model.RepositoryType)
	if err != nil {
		return nil, fmt.Errorf("list repository instances: %w", err)
	}

	output := &UninstallOutput{}
	for _, instance := range instances {
		removed, err := s.store.RemoveFiles(ctx, instance.ID)
		if err != nil {
			return output, fmt.Errorf("remove files of instance %d: %w", instance.ID, err)
		}

		slog.Info("repository instance files removed",
			"instance_id", instance.ID,
			"instance_name", instance.Name,
			"removed_files", removed,
		)

		output.Instances++
		output.RemovedFiles += removed
		metrics.FilesRemovedTotal.Add(float64(removed))
	}

	return output, nil
}
