package services

import (
	"context"
	"database/sql"
	"testing"

	"opsboard/internal/repositories"
	"opsboard/internal/storage"
)

type testRepos struct {
	db         *sql.DB
	categories repositories.CategoryRepository
	people     repositories.PersonRepository
	tasks      repositories.TaskRepository
	notes      repositories.NoteRepository
	snapshots  repositories.SnapshotRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	db, err := storage.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &testRepos{
		db:         db,
		categories: repositories.NewCategoryRepository(db),
		people:     repositories.NewPersonRepository(db),
		tasks:      repositories.NewTaskRepository(db),
		notes:      repositories.NewNoteRepository(db),
		snapshots:  repositories.NewSnapshotRepository(db, "sqlite3"),
	}
}

func testCtx() context.Context {
	return context.Background()
}
