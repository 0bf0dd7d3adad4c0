package services

import (
	"context"
	"fmt"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// SnapshotService is the backup/restore boundary. Export is a plain read;
// Restore replaces the whole store atomically, keeping the document's ids.
type SnapshotService interface {
	Export(ctx context.Context) (*models.Snapshot, error)
	Restore(ctx context.Context, snapshot *models.RestoreSnapshot) error
}

type snapshotService struct {
	repo repositories.SnapshotRepository
}

func NewSnapshotService(repo repositories.SnapshotRepository) SnapshotService {
	return &snapshotService{repo: repo}
}

func (s *snapshotService) Export(ctx context.Context) (*models.Snapshot, error) {
	return s.repo.Export(ctx)
}

// Restore rejects null documents and documents with missing required keys
// before any deletion happens; only a fully validated document reaches the
// replace transaction. A document with present-but-empty lists is valid and
// wipes the store.
func (s *snapshotService) Restore(ctx context.Context, snapshot *models.RestoreSnapshot) error {
	if snapshot.Empty() {
		return fmt.Errorf("%w: no data provided", models.ErrValidation)
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	return s.repo.Restore(ctx, snapshot)
}
