package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/spencer-p/suntimes/pkg/pipeline"
	"github.com/spencer-p/suntimes/pkg/present"
	"github.com/spencer-p/suntimes/pkg/visualize"
)

// Shell displays the outcome of a lookup. Exactly one method is called per
// lookup.
type Shell interface {
	ShowResult(days pipeline.Days, report present.Report)
	ShowError(message string)
	// Discard is called instead when a newer lookup replaced this one.
	Discard()
}

type TemplateInput struct {
	Location string
	Error    string
	Report   *present.Report
	Bars     []template.HTML
}

// htmlShell renders the index page.
type htmlShell struct {
	w     http.ResponseWriter
	tmpl  *template.Template
	input TemplateInput
}

func (s *htmlShell) ShowResult(days pipeline.Days, report present.Report) {
	s.input.Report = &report
	s.input.Bars = []template.HTML{
		visualize.NewDayBar(days.Today).HTML(),
		visualize.NewDayBar(days.Tomorrow).HTML(),
	}
	s.render(http.StatusOK)
}

func (s *htmlShell) ShowError(message string) {
	s.input.Error = message
	s.render(http.StatusBadGateway)
}

func (s *htmlShell) Discard() {
	s.input.Error = "This search was replaced by a newer one."
	s.render(http.StatusConflict)
}

func (s *htmlShell) render(code int) {
	s.w.Header().Add("Content-Type", "text/html")
	s.w.WriteHeader(code)
	if err := s.tmpl.Execute(s.w, s.input); err != nil {
		log.Printf("Failed to execute template: %v", err)
	}
}

// jsonShell answers API clients.
type jsonShell struct {
	w http.ResponseWriter
}

func (s jsonShell) ShowResult(days pipeline.Days, report present.Report) {
	writeJSON(s.w, http.StatusOK, report)
}

func (s jsonShell) ShowError(message string) {
	writeJSON(s.w, http.StatusBadGateway, errorBody{message})
}

func (s jsonShell) Discard() {
	writeJSON(s.w, http.StatusConflict, errorBody{supersededMessage})
}
