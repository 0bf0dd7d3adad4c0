package models

import "fmt"

// Snapshot is the full-store backup document. Lists carry every field of
// every record with no guaranteed relative order inside a list.
type Snapshot struct {
	Categories []Category `json:"categories"`
	People     []Person   `json:"people"`
	Tasks      []Task     `json:"tasks"`
	Notes      []Note     `json:"notes"`
}

// RestoreSnapshot mirrors Snapshot with pointer fields so that missing
// required keys are detectable per record. Optional fields (order, done,
// person_id, content) default like the live create paths do.
type RestoreSnapshot struct {
	Categories []RestoreCategory `json:"categories"`
	People     []RestorePerson   `json:"people"`
	Tasks      []RestoreTask     `json:"tasks"`
	Notes      []RestoreNote     `json:"notes"`
}

type RestoreCategory struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Order int64   `json:"order"`
}

type RestorePerson struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type RestoreTask struct {
	ID         *int64  `json:"id"`
	CategoryID *int64  `json:"category_id"`
	PersonID   *int64  `json:"person_id"`
	Text       *string `json:"text"`
	Done       bool    `json:"done"`
	Order      int64   `json:"order"`
}

type RestoreNote struct {
	ID      *int64  `json:"id"`
	TaskID  *int64  `json:"task_id"`
	Date    *string `json:"date"`
	Content string  `json:"content"`
}

// Validate checks every record for its required keys before the restore
// transaction starts deleting anything.
func (s *RestoreSnapshot) Validate() error {
	for i, c := range s.Categories {
		if c.ID == nil || c.Name == nil || c.Color == nil {
			return fmt.Errorf("%w: categories[%d]: id, name and color are required", ErrValidation, i)
		}
	}
	for i, p := range s.People {
		if p.ID == nil || p.Name == nil {
			return fmt.Errorf("%w: people[%d]: id and name are required", ErrValidation, i)
		}
	}
	for i, t := range s.Tasks {
		if t.ID == nil || t.CategoryID == nil || t.Text == nil {
			return fmt.Errorf("%w: tasks[%d]: id, category_id and text are required", ErrValidation, i)
		}
	}
	for i, n := range s.Notes {
		if n.ID == nil || n.TaskID == nil || n.Date == nil {
			return fmt.Errorf("%w: notes[%d]: id, task_id and date are required", ErrValidation, i)
		}
	}
	return nil
}

// Empty reports whether the restore document carries no lists at all, i.e.
// the payload was null or an object without any of the four keys. A document
// whose lists are present but empty is NOT empty: restoring it wipes the
// store, which is how an exported empty store round-trips.
func (s *RestoreSnapshot) Empty() bool {
	return s == nil ||
		s.Categories == nil && s.People == nil && s.Tasks == nil && s.Notes == nil
}
