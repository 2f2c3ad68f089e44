package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/insightd/internal/model"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var (
	ErrInvalidFormat = errors.New("report: invalid export format")
	ErrExportFailed  = errors.New("report: export failed")
)

// Export renders a report into a portable form. The JSON form is the report
// document verbatim, pretty-printed; the text form is a Markdown rendering
// with a fixed section order. Both are byte-stable for a given report.
func Export(r model.Report, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
		}
		return b, nil
	case FormatText:
		return []byte(renderText(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// ExportToFile writes the rendered report to path. Write failures surface as
// ErrExportFailed and leave no in-memory state changed.
func ExportToFile(r model.Report, format Format, path string) error {
	b, err := Export(r, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}

func renderText(r model.Report) string {
	var b strings.Builder

	if r.PeriodType == model.PeriodMonthly {
		fmt.Fprintf(&b, "# Monthly Report — %s\n\n", r.PeriodStart.Format("January 2006"))
	} else {
		fmt.Fprintf(&b, "# Weekly Report — %s to %s\n\n",
			r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Generated %s · Confidence %d/100\n\n",
		r.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), r.ConfidenceLevel)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Completion rate: %.1f%%\n", r.Summary.CompletionRate)
	fmt.Fprintf(&b, "- Total focus time: %d minutes\n", r.Summary.TotalFocusMinutes)
	fmt.Fprintf(&b, "- Tasks completed: %d\n", r.Summary.TasksCompleted)
	fmt.Fprintf(&b, "- Pomodoros completed: %d\n", r.Summary.PomodorosCompleted)
	fmt.Fprintf(&b, "- Average energy level: %.1f/5\n\n", r.Summary.AverageEnergyLevel)

	b.WriteString("## Achievements\n\n")
	if len(r.Achievements) == 0 {
		b.WriteString("None recorded this period.\n\n")
	} else {
		for _, a := range r.Achievements {
			fmt.Fprintf(&b, "- %s (+%d pts): %s\n", a.Title, a.Points, a.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Improvement Areas\n\n")
	if len(r.ImprovementAreas) == 0 {
		b.WriteString("All metrics met their targets.\n\n")
	} else {
		for _, area := range r.ImprovementAreas {
			fmt.Fprintf(&b, "- [%s] %s — %d/%d\n", area.Priority, area.Title, area.CurrentScore, area.TargetScore)
			for _, s := range area.Suggestions {
				fmt.Fprintf(&b, "  - %s\n", s)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Motivational Message\n\n")
	b.WriteString(r.MotivationalMessage)
	b.WriteString("\n\n")

	b.WriteString("## Recommendations\n\n")
	if len(r.Insights.Recommendations) == 0 {
		b.WriteString("None.\n")
	} else {
		for _, line := range r.Insights.Recommendations {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}
