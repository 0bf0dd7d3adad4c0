package repositories

import (
	"errors"
	"testing"

	"opsboard/internal/models"
)

func TestPersonDeleteDetachesTasks(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	tasks := NewTaskRepository(db)
	people := NewPersonRepository(db)

	cat := &models.Category{Name: "Ops", Color: "red"}
	if err := categories.Store(testCtx(), cat); err != nil {
		t.Fatalf("store category: %v", err)
	}
	alice := &models.Person{Name: "Alice"}
	if err := people.Store(testCtx(), alice); err != nil {
		t.Fatalf("store person: %v", err)
	}
	task := &models.Task{CategoryID: cat.ID, Text: "on call", PersonID: &alice.ID}
	if err := tasks.Store(testCtx(), task); err != nil {
		t.Fatalf("store task: %v", err)
	}

	if err := people.Delete(testCtx(), alice.ID); err != nil {
		t.Fatalf("delete person: %v", err)
	}

	got, err := tasks.FindByID(testCtx(), task.ID)
	if err != nil {
		t.Fatalf("task must survive the person delete: %v", err)
	}
	if got.PersonID != nil {
		t.Fatalf("task still references deleted person: %+v", got)
	}
	if _, err := people.FindByID(testCtx(), alice.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("person lookup: err = %v, want ErrNotFound", err)
	}
}

func TestPersonUpdate(t *testing.T) {
	db := newTestDB(t)
	people := NewPersonRepository(db)

	p := &models.Person{Name: "Bob"}
	if err := people.Store(testCtx(), p); err != nil {
		t.Fatalf("store: %v", err)
	}
	p.Name = "Robert"
	if err := people.Update(testCtx(), p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := people.FindByID(testCtx(), p.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Name != "Robert" {
		t.Fatalf("name = %q, want Robert", got.Name)
	}
}
