package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// UnassignedLabel is shown for tasks without a person, matching the empty
// option of the board's assignee select.
const UnassignedLabel = "--"

// LastFriday returns the most recent Friday on or before t, the default
// start of a reporting week.
func LastFriday(t time.Time) time.Time {
	diff := (int(t.Weekday()) + 2) % 7
	return t.AddDate(0, 0, -diff)
}

// ReportService projects one 7-day window [weekStart, weekStart+6] into a
// rendering-ready document. Pure read: nothing is mutated.
type ReportService interface {
	Build(ctx context.Context, weekStart time.Time) (*models.WeeklyReport, error)
}

type reportService struct {
	categories repositories.CategoryRepository
	tasks      repositories.TaskRepository
	people     repositories.PersonRepository
	notes      repositories.NoteRepository
}

func NewReportService(
	categories repositories.CategoryRepository,
	tasks repositories.TaskRepository,
	people repositories.PersonRepository,
	notes repositories.NoteRepository,
) ReportService {
	return &reportService{categories: categories, tasks: tasks, people: people, notes: notes}
}

func (s *reportService) Build(ctx context.Context, weekStart time.Time) (*models.WeeklyReport, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)
	start := weekStart.Format(models.DateLayout)
	end := weekEnd.Format(models.DateLayout)

	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	people, err := s.people.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.FindByRange(ctx, models.NoteRange{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	notesByTask := make(map[int64][]models.Note, len(notes))
	for _, n := range notes {
		notesByTask[n.TaskID] = append(notesByTask[n.TaskID], n)
	}
	tasksByCategory := make(map[int64][]models.Task, len(categories))
	for _, t := range tasks {
		tasksByCategory[t.CategoryID] = append(tasksByCategory[t.CategoryID], t)
	}

	report := &models.WeeklyReport{
		MonthName: strings.ToUpper(weekStart.Month().String()),
		Year:      weekStart.Year(),
		StartDate: start,
		EndDate:   end,
		Range:     fmt.Sprintf("%s - %s", dayLabel(weekStart), dayLabel(weekEnd)),
		Groups:    []models.ReportCategory{},
	}

	// Categories with no tasks are omitted entirely.
	for _, c := range categories {
		siblings := tasksByCategory[c.ID]
		if len(siblings) == 0 {
			continue
		}
		group := models.ReportCategory{Name: c.Name, Color: c.Color}
		for _, t := range siblings {
			row := models.ReportTask{
				Text:   t.Text,
				Done:   t.Done,
				Person: UnassignedLabel,
			}
			if t.PersonID != nil {
				// A dangling person reference keeps the placeholder.
				if name, ok := names[*t.PersonID]; ok {
					row.Person = name
				}
			}
			for _, n := range notesByTask[t.ID] {
				// Empty content is allowed on notes and stays in the report;
				// the date label alone still marks the day as worked.
				row.Notes = append(row.Notes, models.ReportNote{
					Label:   noteLabel(n.Date),
					Content: n.Content,
				})
			}
			group.Tasks = append(group.Tasks, row)
		}
		report.Groups = append(report.Groups, group)
	}
	return report, nil
}

// dayLabel renders a date as "Fri 3" for the range line and day headers.
func dayLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Weekday().String()[:3], t.Day())
}

// noteLabel renders a stored YYYY-MM-DD date as "Mon 6". The date has been
// range-filtered already, so a parse failure cannot happen for stored rows;
// fall back to the raw string anyway.
func noteLabel(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return dayLabel(t)
}
