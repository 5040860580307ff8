package ports

import (
	"io"

	"pom-version-checker/internal/types"
)

type ReportPort interface {
	WriteReport(w io.Writer, report types.Report) error
}
