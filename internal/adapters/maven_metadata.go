package adapters

import (
	"context"
	"encoding/xml"
	"net/http"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/ports"
)

// MavenMetadataAdapter answers latest-version lookups from the repository's
// maven-metadata.xml: the advertised release when present, otherwise the
// highest non-snapshot entry of the version list.
type MavenMetadataAdapter struct {
	baseURL string
	client  *http.Client
	httpCfg httpRetryConfig
	compare func(a string, b string) int
}

type mavenMetadata struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Versioning struct {
		Latest   string   `xml:"latest"`
		Release  string   `xml:"release"`
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

// NewMavenMetadataAdapter builds the lookup. compare orders two versions
// and falls back to lexical order when nil.
func NewMavenMetadataAdapter(opts RepositoryOptions, compare func(a string, b string) int) MavenMetadataAdapter {
	cfg := normalizeHTTPConfig(opts.Timeout, opts.Retries, opts.RetryDelay)
	if compare == nil {
		compare = strings.Compare
	}
	return MavenMetadataAdapter{
		baseURL: normalizeRepositoryURL(opts.BaseURL),
		client:  &http.Client{Timeout: cfg.timeout},
		httpCfg: cfg,
		compare: compare,
	}
}

func (a MavenMetadataAdapter) LatestVersion(ctx context.Context, groupID string, artifactID string) (string, error) {
	if strings.TrimSpace(groupID) == "" || strings.TrimSpace(artifactID) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("group and artifact are required for a version lookup")
	}
	body, err := fetchBody(ctx, a.client, a.MetadataURL(groupID, artifactID), a.httpCfg)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", nil
	}
	var metadata mavenMetadata
	if err := xml.Unmarshal(body, &metadata); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode maven-metadata.xml").
			WithCause(err)
	}
	return a.selectLatest(metadata), nil
}

func (a MavenMetadataAdapter) MetadataURL(groupID string, artifactID string) string {
	return strings.Join([]string{a.baseURL, groupPath(groupID), strings.TrimSpace(artifactID), "maven-metadata.xml"}, "/")
}

func (a MavenMetadataAdapter) selectLatest(metadata mavenMetadata) string {
	if release := strings.TrimSpace(metadata.Versioning.Release); release != "" {
		return release
	}
	var candidates []string
	for _, raw := range metadata.Versioning.Versions {
		version := strings.TrimSpace(raw)
		if version == "" || strings.HasSuffix(strings.ToUpper(version), "-SNAPSHOT") {
			continue
		}
		candidates = append(candidates, version)
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return a.compare(candidates[i], candidates[j]) < 0
	})
	return candidates[len(candidates)-1]
}

var _ ports.LatestVersionPort = MavenMetadataAdapter{}
