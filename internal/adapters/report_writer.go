package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

// ReportWriterAdapter renders a latest-version report as plain text (one
// line per dependency, grouped by version origin) or YAML.
type ReportWriterAdapter struct {
	Format types.ReportFormat
}

func NewReportWriterAdapter(format string) (ReportWriterAdapter, error) {
	normalized := types.ReportFormat(strings.ToLower(strings.TrimSpace(format)))
	switch normalized {
	case "", types.ReportFormatText:
		return ReportWriterAdapter{Format: types.ReportFormatText}, nil
	case types.ReportFormatYAML:
		return ReportWriterAdapter{Format: types.ReportFormatYAML}, nil
	default:
		return ReportWriterAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported report format: %s", format))
	}
}

func (a ReportWriterAdapter) WriteReport(w io.Writer, report types.Report) error {
	var content string
	switch a.Format {
	case types.ReportFormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to marshal report").
				WithCause(err)
		}
		content = string(data)
	default:
		content = renderTextReport(report)
	}
	if _, err := io.WriteString(w, content); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

func renderTextReport(report types.Report) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "project %s\n", report.Project)
	if len(report.Ancestors) > 0 {
		names := make([]string, 0, len(report.Ancestors))
		for _, ancestor := range report.Ancestors {
			names = append(names, ancestor.String())
		}
		fmt.Fprintf(&builder, "ancestors %s (%s)\n", strings.Join(names, " -> "), report.ChainStop)
	}
	for _, group := range report.Groups {
		if group.Origin == nil {
			builder.WriteString("standalone:\n")
		} else {
			fmt.Fprintf(&builder, "inherited from %s:\n", group.Origin)
		}
		for _, entry := range group.Entries {
			builder.WriteString("  ")
			builder.WriteString(renderEntry(entry))
			builder.WriteString("\n")
		}
	}
	fmt.Fprintf(&builder, "%d outdated\n", report.Outdated())
	return builder.String()
}

func renderEntry(entry types.DependencyReport) string {
	latest := entry.LatestVersion
	if latest == "" {
		latest = "?"
	}
	status := "ok"
	if !entry.UpToDate {
		status = "OUTDATED"
	}
	line := fmt.Sprintf("%s %s -> %s %s", entry.Coordinate.Key(), entry.ResolvedVersion, latest, status)
	if entry.Module != "" {
		line += " [" + entry.Module + "]"
	}
	return line
}

var _ ports.ReportPort = ReportWriterAdapter{}
