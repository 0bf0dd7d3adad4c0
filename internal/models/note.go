package models

// DateLayout is the wire and storage format for note dates. Fixed-width and
// zero-padded, so lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// Note is a dated free-text annotation on one task. At most one note exists
// per (task, date); the upsert path enforces it, a unique index backs it up.
type Note struct {
	ID      int64  `json:"id"`
	TaskID  int64  `json:"task_id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Content string `json:"content"`
}

// NoteRange bounds a date query. Both bounds inclusive; a nil bound on
// either side disables filtering entirely (original behavior: filter only
// when both bounds are present).
type NoteRange struct {
	Start *string
	End   *string
}
