package app

import (
	"context"

	"pom-version-checker/internal/adapters"
	"pom-version-checker/internal/core"
	"pom-version-checker/internal/types"
)

// Resolve prints the resolved version of every dependency without asking
// the repository for latest versions.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if _, err := adapters.NewReportWriterAdapter(req.Format); err != nil {
		return ResolveResult{}, err
	}
	project, chain, err := s.resolveProject(ctx, req.ProjectDir, "", req.Precedence, req.RepositoryRequest)
	if err != nil {
		return ResolveResult{}, err
	}
	report := core.NewReporter(nil, nil, nil).Report(ctx, &project, chain)
	if err := writeReport(req.Format, req.Output, req.OutputPath, report); err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{Report: report, Unresolved: countUnresolved(report)}, nil
}

func countUnresolved(report types.Report) int {
	count := 0
	for _, group := range report.Groups {
		for _, entry := range group.Entries {
			if entry.ResolvedVersion == types.UnresolvedVersion {
				count++
			}
		}
	}
	return count
}
