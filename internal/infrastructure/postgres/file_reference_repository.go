package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
)

// DBTX is an interface that abstracts pgxpool.Pool for testability.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// FileReferenceRepository implements repository.FileReferenceStore on the
// host database tables.
type FileReferenceRepository struct {
	db DBTX
}

// NewFileReferenceRepository creates a new FileReferenceRepository instance.
func NewFileReferenceRepository(db DBTX) *FileReferenceRepository {
	return &FileReferenceRepository{db: db}
}

// ListInstances retrieves the repository instances of the given type.
func (r *FileReferenceRepository) ListInstances(ctx context.Context, repositoryType string) ([]model.RepositoryInstance, error) {
	const query = `
		SELECT i.id, COALESCE(i.name, ''), i.contextid
		FROM repository_instances i
		JOIN repository r ON r.id = i.typeid
		WHERE r.type = $1
		ORDER BY i.id
	`

	rows, err := r.db.Query(ctx, query, repositoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to query repository instances: %w", err)
	}
	defer rows.Close()

	instances := []model.RepositoryInstance{}
	for rows.Next() {
		var instance model.RepositoryInstance
		if err := rows.Scan(&instance.ID, &instance.Name, &instance.ContextID); err != nil {
			return nil, fmt.Errorf("failed to scan repository instance: %w", err)
		}
		instances = append(instances, instance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repository instances: %w", err)
	}

	return instances, nil
}

// RemoveFiles deletes, in one transaction, the files pointing at a
// reference of the instance and then the references themselves.
func (r *FileReferenceRepository) RemoveFiles(ctx context.Context, instanceID int64) (int64, error) {
	const (
		deleteFiles = `
			DELETE FROM files
			WHERE referencefileid IN (
				SELECT id FROM files_reference WHERE repositoryid = $1
			)
		`
		deleteReferences = `
			DELETE FROM files_reference
			WHERE repositoryid = $1
		`
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	tag, err := tx.Exec(ctx, deleteFiles, instanceID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("failed to delete files of instance %d: %w", instanceID, err)
	}
	removed := tag.RowsAffected()

	if _, err := tx.Exec(ctx, deleteReferences, instanceID); err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("failed to delete file references of instance %d: %w", instanceID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit file removal: %w", err)
	}

	return removed, nil
}

// Compile-time verification that FileReferenceRepository implements repository.FileReferenceStore.
var _ repository.FileReferenceStore = (*FileReferenceRepository)(nil)
