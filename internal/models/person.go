package models

// Person is somebody a task can be assigned to. Deleting a person never
// deletes their tasks; the tasks' person reference is cleared instead.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PersonUpdate carries a partial update; nil fields are left untouched.
type PersonUpdate struct {
	Name *string `json:"name"`
}
