package cli

import (
	"context"

	"github.com/spf13/cobra"

	"pom-version-checker/internal/app"
)

func runCheck(ctx context.Context, cmd *cobra.Command, repo repositoryOptions, opts checkOptions, excludeGroup string, projectDir string) error {
	service := newAppService()
	_, err := service.Check(ctx, app.CheckRequest{
		RepositoryRequest: repositoryRequest(cmd, repo),
		ProjectDir:        projectDir,
		ExcludeGroup:      excludeGroup,
		Precedence:        resolveString(cmd, repo.Precedence, "precedence", "precedence"),
		VersionScheme:     resolveString(cmd, repo.VersionScheme, "version_scheme", "version-scheme"),
		Format:            resolveString(cmd, opts.Format, "format", "format"),
		Output:            cmd.OutOrStdout(),
		OutputPath:        resolveString(cmd, opts.OutputPath, "output", "output"),
	})
	return err
}
