package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

const timeLayout = "2006-01-02 15:04 UTC"

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"fmtTime":    formatTime,
		"fmtTimePtr": formatTimePtr,
	}).ParseFS(templatesFS, "templates/*.html"),
)

// Templates returns the parsed HTML pages, keyed by file name.
func Templates() *template.Template {
	return templates
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "never"
	}

	return formatTime(*t)
}
