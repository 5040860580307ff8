package app

import (
	"io"

	"pom-version-checker/internal/types"
)

// RepositoryRequest holds the settings shared by every operation that
// talks to the remote repository.
type RepositoryRequest struct {
	RepositoryURL string
	TimeoutSec    int
	Retries       int
	RetryDelayMs  int
	MaxDepth      int
}

type CheckRequest struct {
	RepositoryRequest
	ProjectDir    string
	ExcludeGroup  string
	Precedence    string
	VersionScheme string
	Format        string
	Output        io.Writer
	OutputPath    string
}

type CheckResult struct {
	Report   types.Report
	Outdated int
}

type ResolveRequest struct {
	RepositoryRequest
	ProjectDir string
	Precedence string
	Format     string
	Output     io.Writer
	OutputPath string
}

type ResolveResult struct {
	Report     types.Report
	Unresolved int
}

type AncestorsRequest struct {
	RepositoryRequest
	ProjectDir string
}

type AncestorsResult struct {
	Project types.Coordinate
	Parent  *types.Coordinate
	Chain   types.AncestorChain
}
