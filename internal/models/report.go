package models

// WeeklyReport is the rendering-ready projection of one 7-day window.
// It is pure data: the PDF renderer consumes it without touching the store.
type WeeklyReport struct {
	MonthName string           `json:"month_name"` // upper-case, e.g. "JANUARY"
	Year      int              `json:"year"`
	StartDate string           `json:"start_date"` // YYYY-MM-DD
	EndDate   string           `json:"end_date"`
	Range     string           `json:"range"` // e.g. "Fri 3 - Thu 9"
	Groups    []ReportCategory `json:"groups"`
}

// ReportCategory groups the tasks of one category, in category order.
// Categories without tasks never appear in a report.
type ReportCategory struct {
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Tasks []ReportTask `json:"tasks"`
}

// ReportTask is one task row: text, done flag for strikethrough styling,
// assignee name ("--" when unassigned) and the window's notes.
type ReportTask struct {
	Text   string       `json:"text"`
	Done   bool         `json:"done"`
	Person string       `json:"person"`
	Notes  []ReportNote `json:"notes"`
}

// ReportNote is one dated annotation, pre-labelled for display, e.g. "Mon 6".
type ReportNote struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}
