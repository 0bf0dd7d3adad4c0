package repositories

import (
	"errors"
	"testing"

	"opsboard/internal/models"
)

func TestTaskOrderPerCategory(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	tasks := NewTaskRepository(db)

	ops := &models.Category{Name: "Ops", Color: "red"}
	infra := &models.Category{Name: "Infra", Color: "blue"}
	for _, c := range []*models.Category{ops, infra} {
		if err := categories.Store(testCtx(), c); err != nil {
			t.Fatalf("store category: %v", err)
		}
	}

	// Interleave creates across the two categories; each keeps its own 1..N.
	for i := 1; i <= 3; i++ {
		for _, c := range []*models.Category{ops, infra} {
			task := &models.Task{CategoryID: c.ID, Text: "step"}
			if err := tasks.Store(testCtx(), task); err != nil {
				t.Fatalf("store task: %v", err)
			}
			if task.Order != int64(i) {
				t.Fatalf("category %q task %d: order = %d, want %d", c.Name, i, task.Order, i)
			}
			if task.Done {
				t.Fatalf("new task must default to not done")
			}
		}
	}
}

func TestTaskCreateMissingCategory(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskRepository(db)

	err := tasks.Store(testCtx(), &models.Task{CategoryID: 999, Text: "orphan"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if n := countRows(t, db, "tasks"); n != 0 {
		t.Fatalf("tasks written = %d, want 0", n)
	}
}

func TestTaskUpdatePersonAndDone(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	tasks := NewTaskRepository(db)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store category: %v", err)
	}
	task := &models.Task{CategoryID: cat.ID, Text: "patch servers"}
	if err := tasks.Store(testCtx(), task); err != nil {
		t.Fatalf("store task: %v", err)
	}

	// Assigning a person id is not validated against the people table.
	pid := int64(12345)
	task.PersonID = &pid
	task.Done = true
	if err := tasks.Update(testCtx(), task); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := tasks.FindByID(testCtx(), task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.PersonID == nil || *got.PersonID != pid || !got.Done {
		t.Fatalf("unexpected task after update: %+v", got)
	}

	// Explicit null clears the assignment.
	got.PersonID = nil
	if err := tasks.Update(testCtx(), got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = tasks.FindByID(testCtx(), task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.PersonID != nil {
		t.Fatalf("person reference not cleared: %+v", got)
	}
}

func TestTaskDeleteCascadesNotes(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	tasks := NewTaskRepository(db)
	notes := NewNoteRepository(db)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store category: %v", err)
	}
	task := &models.Task{CategoryID: cat.ID, Text: "rotate certs"}
	if err := tasks.Store(testCtx(), task); err != nil {
		t.Fatalf("store task: %v", err)
	}
	for _, date := range []string{"2025-01-03", "2025-01-04"} {
		if _, err := notes.Upsert(testCtx(), task.ID, date, "progress"); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	if err := tasks.Delete(testCtx(), task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := countRows(t, db, "notes"); n != 0 {
		t.Fatalf("notes left = %d, want 0", n)
	}
}
