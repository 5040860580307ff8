package app

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pom-version-checker/internal/adapters"
	"pom-version-checker/internal/core"
	"pom-version-checker/internal/policies"
	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

func (s Service) loadProject(ctx context.Context, projectDir string, excludeGroup string) (types.Project, error) {
	dir := strings.TrimSpace(projectDir)
	if dir == "" {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project directory is required")
	}
	loader := core.NewProjectLoader(s.Workspace, s.Parser)
	return loader.Load(ctx, dir, excludeGroup)
}

// resolveProject runs load, ancestor walk and version resolution.
func (s Service) resolveProject(ctx context.Context, projectDir string, excludeGroup string, precedence string, repo RepositoryRequest) (types.Project, types.AncestorChain, error) {
	policy, err := policies.NewPrecedencePolicy(precedence)
	if err != nil {
		return types.Project{}, types.AncestorChain{}, err
	}
	project, err := s.loadProject(ctx, projectDir, excludeGroup)
	if err != nil {
		return types.Project{}, types.AncestorChain{}, err
	}
	remote := s.remote(repo)
	chain := core.NewAncestorWalker(remote, s.Parser, repo.MaxDepth).Walk(ctx, project.Parent)
	resolver := core.NewVersionResolver(policy, core.NewBOMImporter(remote, s.Parser))
	if err := resolver.Resolve(ctx, &project, chain); err != nil {
		return types.Project{}, types.AncestorChain{}, err
	}
	return project, chain, nil
}

func (s Service) remote(repo RepositoryRequest) ports.RemoteDescriptorPort {
	if s.Remote != nil {
		return s.Remote
	}
	return adapters.NewRemoteRepositoryAdapter(repositoryOptions(repo))
}

func (s Service) latest(repo RepositoryRequest, compare *core.VersionComparator) ports.LatestVersionPort {
	if s.Latest != nil {
		return s.Latest
	}
	return adapters.NewMavenMetadataAdapter(repositoryOptions(repo), compare.Compare)
}

func repositoryOptions(repo RepositoryRequest) adapters.RepositoryOptions {
	return adapters.RepositoryOptions{
		BaseURL:    repo.RepositoryURL,
		Timeout:    time.Duration(repo.TimeoutSec) * time.Second,
		Retries:    repo.Retries,
		RetryDelay: time.Duration(repo.RetryDelayMs) * time.Millisecond,
	}
}

// writeReport renders into outputPath when set, otherwise into output.
func writeReport(format string, output io.Writer, outputPath string, report types.Report) error {
	writer, err := adapters.NewReportWriterAdapter(format)
	if err != nil {
		return err
	}
	if strings.TrimSpace(outputPath) != "" {
		return adapters.NewReportFileAdapter(outputPath, writer).WriteReportFile(report)
	}
	if output == nil {
		output = io.Discard
	}
	return writer.WriteReport(output, report)
}
