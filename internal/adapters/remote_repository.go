package adapters

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

// DefaultRepositoryURL is Maven Central's repository layout root.
const DefaultRepositoryURL = "https://repo1.maven.org/maven2"

// RepositoryOptions configures access to a remote Maven repository.
type RepositoryOptions struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// RemoteRepositoryAdapter fetches descriptors laid out the Maven way:
// <base>/<group path>/<artifact>/<version>/<artifact>-<version>.pom
type RemoteRepositoryAdapter struct {
	baseURL string
	client  *http.Client
	httpCfg httpRetryConfig
}

func NewRemoteRepositoryAdapter(opts RepositoryOptions) RemoteRepositoryAdapter {
	cfg := normalizeHTTPConfig(opts.Timeout, opts.Retries, opts.RetryDelay)
	return RemoteRepositoryAdapter{
		baseURL: normalizeRepositoryURL(opts.BaseURL),
		client:  &http.Client{Timeout: cfg.timeout},
		httpCfg: cfg,
	}
}

func (a RemoteRepositoryAdapter) FetchDescriptor(ctx context.Context, coordinate types.Coordinate) ([]byte, error) {
	if !coordinate.Fetchable() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("coordinate is missing group or version: " + coordinate.String())
	}
	return fetchBody(ctx, a.client, a.DescriptorURL(coordinate), a.httpCfg)
}

// DescriptorURL maps a coordinate to its descriptor location.
func (a RemoteRepositoryAdapter) DescriptorURL(coordinate types.Coordinate) string {
	return strings.Join([]string{
		a.baseURL,
		groupPath(coordinate.GroupID),
		coordinate.ArtifactID,
		coordinate.Version,
		coordinate.ArtifactID + "-" + coordinate.Version + ".pom",
	}, "/")
}

func groupPath(groupID string) string {
	return strings.ReplaceAll(strings.TrimSpace(groupID), ".", "/")
}

func normalizeRepositoryURL(base string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		return DefaultRepositoryURL
	}
	return trimmed
}

var _ ports.RemoteDescriptorPort = RemoteRepositoryAdapter{}
