package models

// BoardState is the initial-state document: categories sorted by order with
// their tasks embedded (also order-sorted), plus all known people.
type BoardState struct {
	Categories []CategoryWithTasks `json:"categories"`
	People     []Person            `json:"people"`
}
