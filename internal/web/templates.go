package web

import (
	"embed"
	"html/template"
	"time"

	"task-planner/internal/domain"
	"task-planner/internal/locale"
)

//go:embed templates/*.html
var templateFS embed.FS

// page is the data every template renders from
type page struct {
	Title   string
	Labels  locale.Labels
	Message string
	Error   string

	Task  *domain.Task
	Tasks []*domain.Task

	Year      int
	MonthName string
	Months    []monthLink
	Calendar  *domain.Calendar
}

type monthLink struct {
	Number int
	Name   string
}

func parseTemplates(labels locale.Labels) (*template.Template, error) {
	funcs := template.FuncMap{
		"yesno": labels.YesNo,
		"weekday": func(t time.Time) int {
			return int(t.Weekday())
		},
	}
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func monthLinks(labels locale.Labels) []monthLink {
	links := make([]monthLink, 0, 12)
	for m := time.January; m <= time.December; m++ {
		links = append(links, monthLink{Number: int(m), Name: labels.MonthName(m)})
	}
	return links
}
