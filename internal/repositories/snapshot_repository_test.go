package repositories

import (
	"errors"
	"sort"
	"testing"

	"opsboard/internal/models"
)

func seedStore(t *testing.T, categories CategoryRepository, people PersonRepository, tasks TaskRepository, notes NoteRepository) {
	t.Helper()
	ops := &models.Category{Name: "Ops", Color: "#ff0000"}
	infra := &models.Category{Name: "Infra", Color: "#00ff00"}
	for _, c := range []*models.Category{ops, infra} {
		if err := categories.Store(testCtx(), c); err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	alice := &models.Person{Name: "Alice"}
	if err := people.Store(testCtx(), alice); err != nil {
		t.Fatalf("seed person: %v", err)
	}
	t1 := &models.Task{CategoryID: ops.ID, Text: "Patch servers", PersonID: &alice.ID}
	t2 := &models.Task{CategoryID: infra.ID, Text: "Renew certs", Done: true}
	for _, task := range []*models.Task{t1, t2} {
		if err := tasks.Store(testCtx(), task); err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}
	if _, err := notes.Upsert(testCtx(), t1.ID, "2025-01-03", "started"); err != nil {
		t.Fatalf("seed note: %v", err)
	}
	if _, err := notes.Upsert(testCtx(), t2.ID, "2025-01-04", "waiting on CA"); err != nil {
		t.Fatalf("seed note: %v", err)
	}
}

func toRestore(s *models.Snapshot) *models.RestoreSnapshot {
	out := &models.RestoreSnapshot{}
	for i := range s.Categories {
		c := s.Categories[i]
		out.Categories = append(out.Categories, models.RestoreCategory{
			ID: &c.ID, Name: &c.Name, Color: &c.Color, Order: c.Order,
		})
	}
	for i := range s.People {
		p := s.People[i]
		out.People = append(out.People, models.RestorePerson{ID: &p.ID, Name: &p.Name})
	}
	for i := range s.Tasks {
		task := s.Tasks[i]
		out.Tasks = append(out.Tasks, models.RestoreTask{
			ID: &task.ID, CategoryID: &task.CategoryID, PersonID: task.PersonID,
			Text: &task.Text, Done: task.Done, Order: task.Order,
		})
	}
	for i := range s.Notes {
		n := s.Notes[i]
		out.Notes = append(out.Notes, models.RestoreNote{
			ID: &n.ID, TaskID: &n.TaskID, Date: &n.Date, Content: n.Content,
		})
	}
	return out
}

func sortSnapshot(s *models.Snapshot) {
	sort.Slice(s.Categories, func(i, j int) bool { return s.Categories[i].ID < s.Categories[j].ID })
	sort.Slice(s.People, func(i, j int) bool { return s.People[i].ID < s.People[j].ID })
	sort.Slice(s.Tasks, func(i, j int) bool { return s.Tasks[i].ID < s.Tasks[j].ID })
	sort.Slice(s.Notes, func(i, j int) bool { return s.Notes[i].ID < s.Notes[j].ID })
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	people := NewPersonRepository(db)
	tasks := NewTaskRepository(db)
	notes := NewNoteRepository(db)
	snapshots := NewSnapshotRepository(db, "sqlite3")

	seedStore(t, categories, people, tasks, notes)

	exported, err := snapshots.Export(testCtx())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Restore wipes every table before re-inserting, so this exercises the
	// full export -> wipe -> rebuild cycle.
	if err := snapshots.Restore(testCtx(), toRestore(exported)); err != nil {
		t.Fatalf("restore: %v", err)
	}

	after, err := snapshots.Export(testCtx())
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}

	sortSnapshot(exported)
	sortSnapshot(after)
	if len(after.Categories) != len(exported.Categories) ||
		len(after.People) != len(exported.People) ||
		len(after.Tasks) != len(exported.Tasks) ||
		len(after.Notes) != len(exported.Notes) {
		t.Fatalf("record counts changed: before %+v after %+v", exported, after)
	}
	for i := range exported.Categories {
		if after.Categories[i] != exported.Categories[i] {
			t.Fatalf("category %d: %+v != %+v", i, after.Categories[i], exported.Categories[i])
		}
	}
	for i := range exported.People {
		if after.People[i] != exported.People[i] {
			t.Fatalf("person %d: %+v != %+v", i, after.People[i], exported.People[i])
		}
	}
	for i := range exported.Tasks {
		a, b := after.Tasks[i], exported.Tasks[i]
		samePerson := (a.PersonID == nil) == (b.PersonID == nil) &&
			(a.PersonID == nil || *a.PersonID == *b.PersonID)
		if a.ID != b.ID || a.CategoryID != b.CategoryID || !samePerson ||
			a.Text != b.Text || a.Done != b.Done || a.Order != b.Order {
			t.Fatalf("task %d: %+v != %+v", i, a, b)
		}
	}
	for i := range exported.Notes {
		if after.Notes[i] != exported.Notes[i] {
			t.Fatalf("note %d: %+v != %+v", i, after.Notes[i], exported.Notes[i])
		}
	}
}

func TestRestoreFreshIDsAfterwards(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	snapshots := NewSnapshotRepository(db, "sqlite3")

	id := int64(40)
	name, color := "Ops", "red"
	doc := &models.RestoreSnapshot{
		Categories: []models.RestoreCategory{{ID: &id, Name: &name, Color: &color, Order: 1}},
	}
	if err := snapshots.Restore(testCtx(), doc); err != nil {
		t.Fatalf("restore: %v", err)
	}

	fresh := &models.Category{Name: "Next", Color: "blue"}
	if err := categories.Store(testCtx(), fresh); err != nil {
		t.Fatalf("store after restore: %v", err)
	}
	if fresh.ID <= id {
		t.Fatalf("fresh id %d collides with restored id %d", fresh.ID, id)
	}
}

func TestRestoreRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	people := NewPersonRepository(db)
	tasks := NewTaskRepository(db)
	notes := NewNoteRepository(db)
	snapshots := NewSnapshotRepository(db, "sqlite3")

	seedStore(t, categories, people, tasks, notes)
	before, err := snapshots.Export(testCtx())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Two notes on the same (task, date) violate the unique index mid-insert.
	nid1, nid2 := int64(1), int64(2)
	tid := int64(1)
	cid := int64(1)
	cname, ccolor, text, date := "X", "grey", "t", "2025-02-02"
	bad := &models.RestoreSnapshot{
		Categories: []models.RestoreCategory{{ID: &cid, Name: &cname, Color: &ccolor}},
		Tasks:      []models.RestoreTask{{ID: &tid, CategoryID: &cid, Text: &text}},
		Notes: []models.RestoreNote{
			{ID: &nid1, TaskID: &tid, Date: &date, Content: "a"},
			{ID: &nid2, TaskID: &tid, Date: &date, Content: "b"},
		},
	}
	err = snapshots.Restore(testCtx(), bad)
	if !errors.Is(err, models.ErrRestore) {
		t.Fatalf("err = %v, want ErrRestore", err)
	}

	after, err := snapshots.Export(testCtx())
	if err != nil {
		t.Fatalf("export after rollback: %v", err)
	}
	sortSnapshot(before)
	sortSnapshot(after)
	if len(after.Categories) != len(before.Categories) ||
		len(after.People) != len(before.People) ||
		len(after.Tasks) != len(before.Tasks) ||
		len(after.Notes) != len(before.Notes) {
		t.Fatalf("store changed despite rollback: before %+v after %+v", before, after)
	}
	for i := range before.Notes {
		if after.Notes[i] != before.Notes[i] {
			t.Fatalf("note %d changed despite rollback", i)
		}
	}
}
