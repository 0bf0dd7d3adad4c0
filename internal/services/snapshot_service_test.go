package services

import (
	"errors"
	"testing"

	"opsboard/internal/models"
)

func TestRestoreRejectsEmptyDocument(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSnapshotService(repos.snapshots)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := repos.categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store: %v", err)
	}

	// A zero-value document decodes from "null" or "{}": no lists at all.
	err := svc.Restore(testCtx(), &models.RestoreSnapshot{})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	// Rejected before any deletion: the category is still there.
	if _, err := repos.categories.FindByID(testCtx(), cat.ID); err != nil {
		t.Fatalf("store was touched by a rejected restore: %v", err)
	}
}

func TestRestoreEmptyListsWipesStore(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSnapshotService(repos.snapshots)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := repos.categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store: %v", err)
	}

	// Present-but-empty lists are a valid document, the export of an empty
	// store. Restoring it clears everything.
	doc := &models.RestoreSnapshot{
		Categories: []models.RestoreCategory{},
		People:     []models.RestorePerson{},
		Tasks:      []models.RestoreTask{},
		Notes:      []models.RestoreNote{},
	}
	if err := svc.Restore(testCtx(), doc); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if _, err := repos.categories.FindByID(testCtx(), cat.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("category survived an empty-lists restore: %v", err)
	}
}

func TestRestoreRejectsMissingRequiredKeys(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSnapshotService(repos.snapshots)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := repos.categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store: %v", err)
	}

	// A task without category_id is malformed.
	id := int64(1)
	text := "orphan"
	doc := &models.RestoreSnapshot{
		Tasks: []models.RestoreTask{{ID: &id, Text: &text}},
	}
	err := svc.Restore(testCtx(), doc)
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	if _, err := repos.categories.FindByID(testCtx(), cat.ID); err != nil {
		t.Fatalf("store changed despite validation failure: %v", err)
	}
}

func TestExportRestoreViaService(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSnapshotService(repos.snapshots)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := repos.categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store: %v", err)
	}

	exported, err := svc.Export(testCtx())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported.Categories) != 1 {
		t.Fatalf("exported %d categories, want 1", len(exported.Categories))
	}

	c := exported.Categories[0]
	doc := &models.RestoreSnapshot{
		Categories: []models.RestoreCategory{{ID: &c.ID, Name: &c.Name, Color: &c.Color, Order: c.Order}},
	}
	if err := svc.Restore(testCtx(), doc); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, err := repos.categories.FindByID(testCtx(), c.ID)
	if err != nil {
		t.Fatalf("restored category missing: %v", err)
	}
	if got.Name != c.Name || got.Color != c.Color || got.Order != c.Order {
		t.Fatalf("restored category differs: %+v != %+v", got, c)
	}
}
