package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/haikus/internal/app"
	"github.com/corey/haikus/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// formatHaiku formats one scored haiku as an indented block.
//
//	0.66  an old silent pond
//	      a frog jumps into the pond
//	      splash silence again
func formatHaiku(sh app.ScoredHaiku) string {
	lines := sh.Haiku.Lines()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s%.2f%s  %s\n", colorGray, sh.Score, colorReset, lines[0]))
	sb.WriteString(fmt.Sprintf("        %s\n", lines[1]))
	sb.WriteString(fmt.Sprintf("        %s\n", lines[2]))
	return sb.String()
}

// formatFileReport formats a file header followed by its haikus, or the
// scan error when the file could not be read.
func formatFileReport(r app.FileReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s\n", colorCyan, r.Path, colorReset))
	if r.Err != nil {
		sb.WriteString(fmt.Sprintf("  error: %v\n", r.Err))
		return sb.String()
	}
	for _, sh := range r.Haikus {
		sb.WriteString(formatHaiku(sh))
	}
	return sb.String()
}

// formatRating formats one stored rating with its haiku and comment.
func formatRating(r ports.Rating) string {
	n := r.Stars
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	stars := strings.Repeat("★", n) + strings.Repeat("☆", 5-n)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s  %s  %s%s%s\n",
		colorYellow, stars, colorReset,
		r.CreatedAt.Format("2006-01-02"),
		colorGray, r.User, colorReset))
	sb.WriteString(fmt.Sprintf("  %s / %s / %s\n", r.Lines[0], r.Lines[1], r.Lines[2]))
	if r.Comment != "" {
		sb.WriteString(fmt.Sprintf("  %s%s%s\n", colorGray, r.Comment, colorReset))
	}
	return sb.String()
}
