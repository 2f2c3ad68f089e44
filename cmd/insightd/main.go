package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/insightd/internal/achievement"
	"github.com/sandeepkv93/insightd/internal/config"
	"github.com/sandeepkv93/insightd/internal/model"
	"github.com/sandeepkv93/insightd/internal/recommend"
	"github.com/sandeepkv93/insightd/internal/report"
	"github.com/sandeepkv93/insightd/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	reasonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var rootCmd = &cobra.Command{
	Use:   "insightd",
	Short: "insightd - productivity insight engine",
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank pending tasks for the current energy level and hour",
	RunE:  runRecommend,
}

var reportCmd = &cobra.Command{
	Use:   "report [week|month]",
	Short: "Generate and display a period report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var exportCmd = &cobra.Command{
	Use:   "export [week|month]",
	Short: "Export a period report to a file or stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the scheduled report generator until interrupted",
	RunE:  runWatch,
}

var (
	energyFlag  string
	hourFlag    int
	dateFlag    string
	compareFlag bool
	formatFlag  string
	outFlag     string
)

func init() {
	recommendCmd.Flags().StringVarP(&energyFlag, "energy", "e", "medium", "Current energy level (low|medium|high)")
	recommendCmd.Flags().IntVar(&hourFlag, "hour", -1, "Hour of day 0..23 (default: skip the time-of-day pass)")
	reportCmd.Flags().StringVar(&dateFlag, "date", "", "Anchor date YYYY-MM-DD (default: today)")
	reportCmd.Flags().BoolVar(&compareFlag, "compare", false, "Show deltas against the previous period")
	exportCmd.Flags().StringVar(&dateFlag, "date", "", "Anchor date YYYY-MM-DD (default: today)")
	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Export format (json|text)")
	exportCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(recommendCmd, reportCmd, exportCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openService() (*report.Service, *storage.SQLiteRepository, error) {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	gen := report.NewGenerator(repo, achievement.NewFactory(nil, nil, nil))
	svc := report.NewServiceWithCapacity(gen, cfg.WeeklyCacheSize, cfg.MonthlyCacheSize)
	return svc, repo, nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	energy := model.EnergyLevel(strings.ToLower(strings.TrimSpace(energyFlag)))
	if !energy.IsValid() {
		return fmt.Errorf("invalid energy level %q (want low, medium or high)", energyFlag)
	}
	if hourFlag > 23 {
		return fmt.Errorf("invalid hour %d (want 0..23)", hourFlag)
	}

	_, repo, err := openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	tasks, err := repo.ListTasks(context.Background(), storage.TaskListFilter{Status: model.TaskStatusPending})
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	var recs []recommend.Recommendation
	if hourFlag >= 0 {
		recs = recommend.RecommendAt(tasks, energy, hourFlag)
	} else {
		recs = recommend.Recommend(tasks, energy)
	}
	if len(recs) == 0 {
		fmt.Println("No matching tasks right now.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Recommendations (%s energy)", energy)))
	for i, rec := range recs {
		fmt.Printf("%2d. %s %s\n", i+1, scoreStyle.Render(fmt.Sprintf("[%2d]", rec.Score)), rec.Task.Title)
		if rec.Reason != "" {
			fmt.Printf("      %s\n", reasonStyle.Render(rec.Reason))
		}
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, repo, err := openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	anchor, err := parseAnchor(dateFlag)
	if err != nil {
		return err
	}
	ctx := context.Background()

	current, err := generateFor(ctx, svc, args[0], anchor)
	if err != nil {
		return err
	}

	md := reportMarkdown(current)
	if compareFlag {
		previous, prevErr := generateFor(ctx, svc, args[0], previousAnchor(args[0], anchor))
		if prevErr != nil {
			return fmt.Errorf("previous period: %w", prevErr)
		}
		md += compareMarkdown(report.Compare(current, &previous))
	}
	fmt.Println(renderMarkdown(md))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, repo, err := openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	anchor, err := parseAnchor(dateFlag)
	if err != nil {
		return err
	}
	r, err := generateFor(context.Background(), svc, args[0], anchor)
	if err != nil {
		return err
	}

	format := report.Format(strings.ToLower(strings.TrimSpace(formatFlag)))
	if outFlag != "" {
		if err := report.ExportToFile(r, format, outFlag); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outFlag)
		return nil
	}
	data, err := report.Export(r, format)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, repo, err := openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	auto := report.NewAutoGenerator(svc, cfg.AutogenBuffer)
	auto.Start()
	defer auto.Stop()
	log.Printf("[insightd] watching for scheduled reports")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case r, ok := <-auto.C():
			if !ok {
				return nil
			}
			log.Printf("[insightd] generated %s report %s", r.PeriodType, r.Period().Key())
		case <-sig:
			log.Printf("[insightd] shutting down")
			return nil
		}
	}
}

func generateFor(ctx context.Context, svc *report.Service, kind string, anchor time.Time) (model.Report, error) {
	switch kind {
	case "week":
		return svc.WeeklyReportFor(ctx, anchor)
	case "month":
		return svc.MonthlyReportFor(ctx, anchor.Year(), anchor.Month())
	default:
		return model.Report{}, fmt.Errorf("unknown period %q (want week or month)", kind)
	}
}

func previousAnchor(kind string, anchor time.Time) time.Time {
	if kind == "month" {
		return anchor.AddDate(0, -1, 0)
	}
	return anchor.AddDate(0, 0, -7)
}

func parseAnchor(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Now().UTC(), nil
	}
	anchor, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return anchor, nil
}

func reportMarkdown(r model.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Report %s\n\n", periodTitle(r.PeriodType), r.Period().Key())
	fmt.Fprintf(&sb, "## Summary\n\n")
	fmt.Fprintf(&sb, "- Completion rate: %.1f%%\n", r.Summary.CompletionRate)
	fmt.Fprintf(&sb, "- Focus time: %d min\n", r.Summary.TotalFocusMinutes)
	fmt.Fprintf(&sb, "- Tasks completed: %d\n", r.Summary.TasksCompleted)
	fmt.Fprintf(&sb, "- Pomodoros: %d\n", r.Summary.PomodorosCompleted)
	fmt.Fprintf(&sb, "- Average energy: %.1f\n", r.Summary.AverageEnergyLevel)
	fmt.Fprintf(&sb, "- Confidence: %d%%\n\n", r.ConfidenceLevel)

	if len(r.Achievements) > 0 {
		fmt.Fprintf(&sb, "## Achievements\n\n")
		for _, a := range r.Achievements {
			fmt.Fprintf(&sb, "- %s %s (+%d pts)\n", a.Icon, a.Title, a.Points)
		}
		sb.WriteString("\n")
	}
	if len(r.ImprovementAreas) > 0 {
		fmt.Fprintf(&sb, "## Improvement Areas\n\n")
		for _, area := range r.ImprovementAreas {
			fmt.Fprintf(&sb, "- **%s** (%s): %s\n", area.Title, area.Priority, area.Description)
		}
		sb.WriteString("\n")
	}
	if len(r.Goals) > 0 {
		fmt.Fprintf(&sb, "## Next Period Goals\n\n")
		for _, goal := range r.Goals {
			marker := "at risk"
			if goal.IsAchievable {
				marker = "on track"
			}
			fmt.Fprintf(&sb, "- %s: %.1f %s (now %.1f, %s)\n", goal.Title, goal.TargetValue, goal.Unit, goal.CurrentValue, marker)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "> %s\n", r.MotivationalMessage)
	return sb.String()
}

func periodTitle(t model.PeriodType) string {
	switch t {
	case model.PeriodWeekly:
		return "Weekly"
	case model.PeriodMonthly:
		return "Monthly"
	default:
		return string(t)
	}
}

func compareMarkdown(d report.Delta) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n## Versus Previous Period\n\n")
	fmt.Fprintf(&sb, "- Completion rate: %+.1f%%\n", d.CompletionRateChange)
	fmt.Fprintf(&sb, "- Focus minutes: %+d\n", d.FocusTimeChange)
	fmt.Fprintf(&sb, "- Tasks completed: %+d\n", d.TasksCompletedChange)
	fmt.Fprintf(&sb, "- Average energy: %+.1f\n", d.EnergyLevelChange)
	fmt.Fprintf(&sb, "- Achievements: %+d\n", d.AchievementCountChange)
	if d.HasImprovement {
		fmt.Fprintf(&sb, "\nTrending up.\n")
	}
	return sb.String()
}

func renderMarkdown(md string) string {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	if cfg.PlainOutput {
		return md
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
