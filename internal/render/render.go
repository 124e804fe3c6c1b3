// Package render formats problem listings for the terminal.
//
// The renderer is the end of the pipeline: it prints the records it is
// given, one per line, in the order it receives them. It never filters
// or reorders; that all happened upstream in the catalog engine.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/morikuni/aec"

	"github.com/roach88/leetup/internal/catalog"
)

// Icons for the status columns. Absent state renders as a space so the
// columns stay aligned.
const (
	iconStar = "★"
	iconLock = "🔒"
	iconDone = "✔"
	iconNone = " "
)

const (
	idWidth    = 4
	titleWidth = 60
)

// Options configures rendering.
type Options struct {
	// Color enables ANSI colors. Off for pipes and --no-color.
	Color bool
}

// List writes one line per problem: star, lock, and done markers, the
// centered id, the padded title, and the difficulty name.
func List(w io.Writer, problems []catalog.Problem, opts Options) error {
	for _, p := range problems {
		if _, err := io.WriteString(w, Line(p, opts)); err != nil {
			return fmt.Errorf("render listing: %w", err)
		}
	}
	return nil
}

// Line formats a single problem row, newline included.
func Line(p catalog.Problem, opts Options) string {
	star, lock, done := iconNone, iconNone, iconNone
	if p.Starred {
		star = paint(aec.YellowF, iconStar, opts.Color)
	}
	if p.Locked {
		lock = paint(aec.RedF, iconLock, opts.Color)
	}
	if p.Done {
		done = paint(aec.GreenF, iconDone, opts.Color)
	}

	return fmt.Sprintf("%s %s %s [%s] %-*s %s\n",
		star, lock, done,
		center(strconv.Itoa(p.ID), idWidth),
		titleWidth, p.Title,
		levelLabel(p.Level, opts.Color),
	)
}

// levelLabel colors the difficulty name green/yellow/red. Out-of-range
// levels come out as an uncolored "UnknownLevel".
func levelLabel(level int, color bool) string {
	name := catalog.LevelName(level)
	switch level {
	case catalog.LevelEasy:
		return paint(aec.GreenF, name, color)
	case catalog.LevelMedium:
		return paint(aec.YellowF, name, color)
	case catalog.LevelHard:
		return paint(aec.RedF, name, color)
	default:
		return name
	}
}

func paint(ansi aec.ANSI, s string, color bool) string {
	if !color {
		return s
	}
	return ansi.Apply(s)
}

// center pads s to width with the surplus space going right, matching
// the listing's historical id column.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
