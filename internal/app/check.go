package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"pom-version-checker/internal/adapters"
	"pom-version-checker/internal/core"
	"pom-version-checker/internal/policies"
)

// Check resolves every dependency of the project and compares it with the
// latest published version.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	if _, err := adapters.NewReportWriterAdapter(req.Format); err != nil {
		return CheckResult{}, err
	}
	compare, err := core.NewVersionComparator(req.VersionScheme)
	if err != nil {
		return CheckResult{}, err
	}
	project, chain, err := s.resolveProject(ctx, req.ProjectDir, req.ExcludeGroup, req.Precedence, req.RepositoryRequest)
	if err != nil {
		return CheckResult{}, err
	}

	reporter := core.NewReporter(
		s.latest(req.RepositoryRequest, compare),
		policies.NewGroupExclusionPolicy(project.ExcludeGroup),
		compare,
	)
	report := reporter.Report(ctx, &project, chain)
	if err := writeReport(req.Format, req.Output, req.OutputPath, report); err != nil {
		return CheckResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("project", project.Coordinate.String()).
		Int("outdated", report.Outdated()).
		Msg("check complete")
	return CheckResult{Report: report, Outdated: report.Outdated()}, nil
}
