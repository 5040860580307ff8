package types

import "strings"

// Coordinate identifies a build artifact. GroupID and Version may be empty
// when the descriptor omits them; ArtifactID is always present.
type Coordinate struct {
	GroupID    string `yaml:"group_id,omitempty"`
	ArtifactID string `yaml:"artifact_id"`
	Version    string `yaml:"version,omitempty"`
}

func (c Coordinate) String() string {
	parts := []string{c.GroupID, c.ArtifactID}
	if c.Version != "" {
		parts = append(parts, c.Version)
	}
	return strings.Join(parts, ":")
}

// Key renders group:artifact without the version.
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// Fetchable reports whether the coordinate carries enough information to
// build a repository path.
func (c Coordinate) Fetchable() bool {
	return strings.TrimSpace(c.GroupID) != "" &&
		strings.TrimSpace(c.ArtifactID) != "" &&
		strings.TrimSpace(c.Version) != "" &&
		!strings.Contains(c.GroupID+c.Version, PlaceholderPrefix)
}
