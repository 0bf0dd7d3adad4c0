package models

// MaxTaskTextLen bounds the task description; the storage column is
// VARCHAR(500) to match.
const MaxTaskTextLen = 500

// Task is a unit of work inside one category, optionally assigned to a
// person. PersonID is nullable and is not validated against the people
// table on write; deleting a person nulls it. Order sorts siblings within
// the category, same opaque-key semantics as Category.Order.
type Task struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	PersonID   *int64 `json:"person_id"`
	Text       string `json:"text"`
	Done       bool   `json:"done"`
	Order      int64  `json:"order"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
// PersonID distinguishes "absent" (leave as-is) from "null" (unassign):
// the inner pointer may itself be nil. Handlers fill it from the raw
// request body, hence no json tag.
type TaskUpdate struct {
	Text     *string `json:"text"`
	Done     *bool   `json:"done"`
	PersonID **int64 `json:"-"`
	Order    *int64  `json:"order"`
}
