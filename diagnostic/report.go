package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Section is a named, ordered group of diagnostics, such as the output of a
// single validation pass
type Section struct {
	Name        string       `json:"name"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Reporter renders sections of diagnostics
type Reporter interface {
	Report(w io.Writer, sections []Section) error
}

// Counts tallies the errors and warnings across all the given sections
func Counts(sections []Section) (errors, warnings int) {
	for _, section := range sections {
		for _, diag := range section.Diagnostics {
			switch diag.Severity() {
			case Error:
				errors++
			case Warning:
				warnings++
			}
		}
	}
	return errors, warnings
}

// TextReporter writes one line per diagnostic, grouped under a header for
// each section
type TextReporter struct {
	// Plain disables all styling
	Plain bool
}

func (tr TextReporter) render(style lipgloss.Style, text string) string {
	if tr.Plain {
		return text
	}
	return style.Render(text)
}

func (tr TextReporter) Report(w io.Writer, sections []Section) error {
	for _, section := range sections {
		if _, err := fmt.Fprintln(w, tr.render(sectionStyle, section.Name)); err != nil {
			return err
		}
		if len(section.Diagnostics) == 0 {
			if _, err := fmt.Fprintln(w, "  "+tr.render(mutedStyle, "nothing to report")); err != nil {
				return err
			}
			continue
		}
		for _, diag := range section.Diagnostics {
			label := fmt.Sprintf("%-7s", diag.Severity())
			if _, err := fmt.Fprintf(w, "  %s  %s\n", tr.render(severityStyle(diag.Severity()), label), diag.Message()); err != nil {
				return err
			}
		}
	}

	errors, warnings := Counts(sections)
	_, err := fmt.Fprintln(w, tr.render(mutedStyle, fmt.Sprintf("%d %s, %d %s",
		errors, plural(errors, "error"), warnings, plural(warnings, "warning"))))
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// JSONReporter writes every section as a single indented JSON document
type JSONReporter struct{}

type jsonReport struct {
	Sections []Section `json:"sections"`
	Errors   int       `json:"errors"`
	Warnings int       `json:"warnings"`
}

func (JSONReporter) Report(w io.Writer, sections []Section) error {
	report := jsonReport{Sections: make([]Section, len(sections))}
	copy(report.Sections, sections)
	for ind, section := range report.Sections {
		if section.Diagnostics == nil {
			report.Sections[ind].Diagnostics = []Diagnostic{}
		}
	}
	report.Errors, report.Warnings = Counts(sections)

	formatted, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(formatted, '\n'))
	return err
}
