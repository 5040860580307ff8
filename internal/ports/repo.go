package ports

import (
	"context"

	"pom-version-checker/internal/types"
)

// RemoteDescriptorPort fetches descriptors from a remote artifact
// repository. A missing artifact yields (nil, nil).
type RemoteDescriptorPort interface {
	FetchDescriptor(ctx context.Context, coordinate types.Coordinate) ([]byte, error)
}

// LatestVersionPort looks up the newest published version of an artifact.
// An unknown artifact yields ("", nil).
type LatestVersionPort interface {
	LatestVersion(ctx context.Context, groupID string, artifactID string) (string, error)
}
