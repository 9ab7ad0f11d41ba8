// Package tui renders analysis results for the terminal.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/testforge/testforge/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A": success,
		"B": lipgloss.Color("#A3E635"), // lime
		"C": warning,
		"D": lipgloss.Color("#FB923C"), // orange
		"F": danger,
	}

	dimStyle        = lipgloss.NewStyle().Foreground(dim)
	faintStyle      = lipgloss.NewStyle().Foreground(faint)
	passStyle       = lipgloss.NewStyle().Foreground(success)
	failStyle       = lipgloss.NewStyle().Foreground(danger)
	warnStyle       = lipgloss.NewStyle().Foreground(warning)
	criticalStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	highTagStyle    = lipgloss.NewStyle().Foreground(danger)
	mediumTagStyle  = lipgloss.NewStyle().Foreground(warning)
	lowTagStyle     = lipgloss.NewStyle().Foreground(info)
	fileStyle       = lipgloss.NewStyle().Foreground(dim)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(fg)
	metricNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine   = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a full project analysis for the terminal.
func RenderReport(rep *domain.ProjectReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("testforge")
	subtitle := dimStyle.Render("Test Quality Report")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(rep.QualityGrade)).
		Render(fmt.Sprintf("%.1f / 100", rep.ProjectMetrics.OverallQualityScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(rep.QualityGrade)).
		Render(rep.QualityGrade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("Project:"), rep.ProjectPath)
	fmt.Fprintf(&b, "  %s %d\n", dimStyle.Render("Test files analyzed:"), rep.TestFilesAnalyzed)
	if rep.CommitHash != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("Commit:"), shortHash(rep.CommitHash))
	}
	b.WriteString("\n")

	// ── Metrics ──
	renderMetric(&b, "business logic", rep.ProjectMetrics.BusinessLogicCoverage)
	renderMetric(&b, "error scenarios", rep.ProjectMetrics.ErrorScenarioCoverage)
	renderMetric(&b, "mock isolation", rep.ProjectMetrics.MockIsolationScore)
	renderMetric(&b, "realistic data", rep.ProjectMetrics.RealisticDataScore)
	renderMetric(&b, "documentation", rep.ProjectMetrics.DocumentationScore)
	renderMetric(&b, "maintainability", rep.ProjectMetrics.MaintenanceScore)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	renderIssueSummary(&b, rep.IssueSummary)

	// ── Recommendations ──
	if len(rep.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Recommendations"))
		b.WriteString("\n\n")
		for _, rec := range rep.Recommendations {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("→"), dimStyle.Render(rec))
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderIssues lists every per-file issue, worst severity first.
func RenderIssues(issues []domain.Issue) string {
	var b strings.Builder
	sortBySeverity(issues)
	for _, issue := range issues {
		tag := severityTag(issue.Severity)
		location := fmt.Sprintf("%s:%d", shortenPath(issue.FilePath), issue.LineNumber)
		fmt.Fprintf(&b, "    %s %s\n", tag, fileStyle.Render(location))
		fmt.Fprintf(&b, "         %s\n", dimStyle.Render(issue.Description))
		if issue.Suggestion != "" {
			fmt.Fprintf(&b, "         %s\n", faintStyle.Render(issue.Suggestion))
		}
	}
	return b.String()
}

// RenderSurvey formats the testing-needs survey.
func RenderSurvey(survey *domain.SurveyReport) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Project Survey"))
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(fmt.Sprintf("%d source modules", survey.TotalModules)))

	for _, m := range survey.Modules {
		fmt.Fprintf(&b, "    %s %s %s\n",
			complexityTag(m.Complexity),
			metricNameStyle.Render(padRight(m.Name, 28)),
			dimStyle.Render(fmt.Sprintf("%d functions, %d classes", m.Functions, m.Classes)))
	}

	if len(survey.Recommendations) > 0 {
		b.WriteString("\n")
		for _, rec := range survey.Recommendations {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("→"), dimStyle.Render(rec))
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderCreation summarizes a test-generation run.
func RenderCreation(result *domain.CreationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("✓"),
		titleStyle.Render(fmt.Sprintf("Generated %s tests", result.Type)))
	fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("Output:"), result.OutputPath)

	if result.ModulePath != "" {
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("Module:"), result.ModulePath)
		fmt.Fprintf(&b, "    %s %d functions, %d classes\n",
			dimStyle.Render("Covered:"), result.Functions, result.Classes)
	}
	if len(result.Components) > 0 {
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("Targets:"), strings.Join(result.Components, ", "))
	}
	if result.ValidationGrade != "" {
		styled := lipgloss.NewStyle().
			Bold(true).
			Foreground(gradeColor(result.ValidationGrade)).
			Render(fmt.Sprintf("%.1f %s", result.ValidationScore, result.ValidationGrade))
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("Skeleton score:"), styled)
	}

	return b.String()
}

// RenderHistory lists recorded runs oldest first.
func RenderHistory(entries []domain.HistoryEntry) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Analysis History") + "\n\n")
	for _, e := range entries {
		grade := lipgloss.NewStyle().Bold(true).Foreground(gradeColor(e.Grade)).Render(e.Grade)
		fmt.Fprintf(&b, "    %s  %s %s  %s\n",
			dimStyle.Render(e.Timestamp),
			metricNameStyle.Render(fmt.Sprintf("%6.1f", e.OverallScore)),
			grade,
			faintStyle.Render(shortHash(e.CommitHash)))
	}
	return b.String()
}

func renderMetric(b *strings.Builder, name string, score float64) {
	color := scoreColor(score)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%5.1f", score))
	bar := coloredBar(score, 20)
	fmt.Fprintf(b, "  %s %s  %s\n", metricNameStyle.Render(padRight(name, 18)), bar, scoreText)
}

func renderIssueSummary(b *strings.Builder, summary domain.IssueSummary) {
	b.WriteString("  " + titleStyle.Render("Issues") + "  ")
	if summary.TotalIssues == 0 {
		b.WriteString(passStyle.Render("none found") + "\n")
		return
	}

	if summary.BySeverity.Critical > 0 {
		b.WriteString(criticalStyle.Render(fmt.Sprintf("%d critical", summary.BySeverity.Critical)) + "  ")
	}
	if summary.BySeverity.High > 0 {
		b.WriteString(highTagStyle.Render(fmt.Sprintf("%d high", summary.BySeverity.High)) + "  ")
	}
	if summary.BySeverity.Medium > 0 {
		b.WriteString(mediumTagStyle.Render(fmt.Sprintf("%d medium", summary.BySeverity.Medium)) + "  ")
	}
	if summary.BySeverity.Low > 0 {
		b.WriteString(lowTagStyle.Render(fmt.Sprintf("%d low", summary.BySeverity.Low)))
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d issues across %d files",
		summary.TotalIssues, summary.FilesWithIssues)))
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityCritical:
		return criticalStyle.Render("crit ")
	case domain.SeverityHigh:
		return highTagStyle.Render("high ")
	case domain.SeverityMedium:
		return mediumTagStyle.Render("med  ")
	default:
		return lowTagStyle.Render("low  ")
	}
}

func complexityTag(complexity string) string {
	switch complexity {
	case "high":
		return failStyle.Render("●")
	case "medium":
		return warnStyle.Render("●")
	default:
		return passStyle.Render("●")
	}
}

func sortBySeverity(issues []domain.Issue) {
	order := map[string]int{
		domain.SeverityCritical: 0,
		domain.SeverityHigh:     1,
		domain.SeverityMedium:   2,
		domain.SeverityLow:      3,
	}
	for i := 1; i < len(issues); i++ {
		for j := i; j > 0 && order[issues[j].Severity] < order[issues[j-1].Severity]; j-- {
			issues[j], issues[j-1] = issues[j-1], issues[j]
		}
	}
}

func coloredBar(score float64, width int) string {
	filled := int(score) * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", width-filled))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return dim
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) <= 3 {
		return path
	}
	return ".../" + strings.Join(parts[len(parts)-2:], "/")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
