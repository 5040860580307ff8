package types

// DependencyReport is one line of the latest-version report.
type DependencyReport struct {
	Coordinate      Coordinate  `yaml:"coordinate"`
	Module          string      `yaml:"module,omitempty"`
	DeclaredVersion string      `yaml:"declared_version,omitempty"`
	ResolvedVersion string      `yaml:"resolved_version"`
	LatestVersion   string      `yaml:"latest_version,omitempty"`
	UpToDate        bool        `yaml:"up_to_date"`
	ResolvedFrom    *Coordinate `yaml:"resolved_from,omitempty"`
}

// ReportGroup collects the entries sharing the same version origin. A nil
// Origin marks the standalone group.
type ReportGroup struct {
	Origin  *Coordinate        `yaml:"origin,omitempty"`
	Entries []DependencyReport `yaml:"entries"`
}

type Report struct {
	Project   Coordinate    `yaml:"project"`
	Ancestors []Coordinate  `yaml:"ancestors,omitempty"`
	ChainStop ChainStop     `yaml:"chain_stop"`
	Groups    []ReportGroup `yaml:"groups"`
}

// Outdated counts entries flagged for review.
func (r Report) Outdated() int {
	count := 0
	for _, group := range r.Groups {
		for _, entry := range group.Entries {
			if !entry.UpToDate {
				count++
			}
		}
	}
	return count
}
