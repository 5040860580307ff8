package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/shared"
	"pom-version-checker/internal/types"
)

type Reporter struct {
	Latest    ports.LatestVersionPort
	Exclusion ports.ExclusionPort
	Compare   *VersionComparator
}

func NewReporter(latest ports.LatestVersionPort, exclusion ports.ExclusionPort, compare *VersionComparator) Reporter {
	return Reporter{
		Latest:    latest,
		Exclusion: exclusion,
		Compare:   compare,
	}
}

// Report looks up the latest version of every reportable dependency of a
// resolved project and groups the results by where their version came
// from. Latest versions are recorded on the project's dependencies too.
func (r Reporter) Report(ctx context.Context, project *types.Project, chain types.AncestorChain) types.Report {
	report := types.Report{
		Ancestors: chain.Coordinates(),
		ChainStop: chain.Stop,
	}
	if project == nil {
		return report
	}
	report.Project = project.Coordinate

	compare := r.Compare
	if compare == nil {
		compare, _ = NewVersionComparator("")
	}

	var entries []types.DependencyReport
	seen := map[string]struct{}{}
	collect := func(module string, deps []types.Dependency) {
		for i := range deps {
			dep := &deps[i]
			if !r.reportable(dep.GroupID) {
				continue
			}
			key := module + "|" + dep.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			dep.LatestVersion = r.latest(ctx, dep.GroupID, dep.ArtifactID)
			entries = append(entries, types.DependencyReport{
				Coordinate:      dep.Coordinate,
				Module:          module,
				DeclaredVersion: dep.Declared,
				ResolvedVersion: dep.Version,
				LatestVersion:   dep.LatestVersion,
				UpToDate:        compare.UpToDate(dep.Version, dep.LatestVersion),
				ResolvedFrom:    copyCoordinate(dep.ResolvedFrom),
			})
		}
	}
	collect("", project.Dependencies)
	for i := range project.Modules {
		collect(project.Modules[i].Coordinate.ArtifactID, project.Modules[i].Dependencies)
	}

	report.Groups = groupByOrigin(entries)
	log.Ctx(ctx).Debug().
		Int("entries", len(entries)).
		Int("outdated", report.Outdated()).
		Msg("report built")
	return report
}

func (r Reporter) reportable(groupID string) bool {
	if groupID == "" || shared.HasPlaceholder(groupID) {
		return false
	}
	return r.Exclusion == nil || !r.Exclusion.Excluded(groupID)
}

func (r Reporter) latest(ctx context.Context, groupID string, artifactID string) string {
	if r.Latest == nil {
		return ""
	}
	version, err := r.Latest.LatestVersion(ctx, groupID, artifactID)
	if err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str("dependency", groupID+":"+artifactID).
			Msg("latest version lookup failed")
		return ""
	}
	return version
}

// groupByOrigin puts standalone entries first, then one group per origin
// in order of first appearance.
func groupByOrigin(entries []types.DependencyReport) []types.ReportGroup {
	groups := []types.ReportGroup{{Entries: []types.DependencyReport{}}}
	index := map[string]int{}
	for _, entry := range entries {
		if entry.ResolvedFrom == nil {
			groups[0].Entries = append(groups[0].Entries, entry)
			continue
		}
		key := entry.ResolvedFrom.String()
		pos, ok := index[key]
		if !ok {
			origin := *entry.ResolvedFrom
			groups = append(groups, types.ReportGroup{Origin: &origin})
			pos = len(groups) - 1
			index[key] = pos
		}
		groups[pos].Entries = append(groups[pos].Entries, entry)
	}
	return groups
}
