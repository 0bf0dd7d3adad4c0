package models

// Category is a named, colored grouping of tasks with a display position.
// Order is an opaque sort key: gaps and ties are legal, consumers sort
// ascending with id as the tie-break.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // css class or hex
	Order int64  `json:"order"`
}

// CategoryUpdate carries a partial update; nil fields are left untouched.
type CategoryUpdate struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Order *int64  `json:"order"`
}

// CategoryWithTasks is the /api/init embedding: a category plus its tasks
// sorted by order.
type CategoryWithTasks struct {
	Category
	Tasks []Task `json:"tasks"`
}
