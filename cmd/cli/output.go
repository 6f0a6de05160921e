package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-sage/internal/core"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// fileReview pairs a reviewed input with its result.
type fileReview struct {
	File              string `json:"file" yaml:"file"`
	core.ReviewResult `yaml:",inline"`
}

var (
	fileStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	titleColor   = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

func writeReviews(w io.Writer, format string, reviews []fileReview) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reviews)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reviews); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case formatText:
		return writeText(w, reviews)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, reviews []fileReview) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	for i, r := range reviews {
		if i > 0 {
			dimColor.Fprintln(w, strings.Repeat("─", 60))
		}
		fmt.Fprintln(w, fileStyle.Render(r.File))
		fmt.Fprintln(w)

		titleColor.Fprintln(w, "SUMMARY")
		summary := r.Summary
		if summary == "" {
			summary = "(no summary in model reply)"
		}
		fmt.Fprintln(w, summaryStyle.Render(summary))
		fmt.Fprintln(w)

		if len(r.Suggestions) == 0 {
			successColor.Fprintln(w, "No suggestions.")
			continue
		}

		warnColor.Fprintf(w, "SUGGESTIONS (%d)\n", len(r.Suggestions))
		rendered, err := renderer.Render(strings.Join(r.Suggestions, "\n"))
		if err != nil {
			// Fall back to the raw lines.
			for _, s := range r.Suggestions {
				fmt.Fprintln(w, s)
			}
			continue
		}
		fmt.Fprint(w, rendered)
	}
	return nil
}
