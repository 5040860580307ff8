package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

// ReportFileAdapter renders a report into a file instead of stdout.
type ReportFileAdapter struct {
	Path   string
	Writer ports.ReportPort
}

func NewReportFileAdapter(path string, writer ports.ReportPort) ReportFileAdapter {
	return ReportFileAdapter{Path: path, Writer: writer}
}

// WriteReportFile renders the whole report before touching the file so a
// failed render never truncates an earlier report.
func (a ReportFileAdapter) WriteReportFile(report types.Report) error {
	if a.Writer == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report writer is required")
	}
	path, err := a.ensurePath()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := a.Writer.WriteReport(&buf, report); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report file: " + path).
			WithCause(err)
	}
	return nil
}

func (a ReportFileAdapter) ensurePath() (string, error) {
	path := strings.TrimSpace(a.Path)
	if path == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return path, nil
}
