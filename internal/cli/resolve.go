package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pom-version-checker/internal/app"
)

func newResolveCommand(repo *repositoryOptions, opts *checkOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <project-dir>",
		Short: "Print resolved dependency versions without latest-version lookups",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, *repo, *opts, args[0])
		},
	}
}

func runResolve(ctx context.Context, cmd *cobra.Command, repo repositoryOptions, opts checkOptions, projectDir string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RepositoryRequest: repositoryRequest(cmd, repo),
		ProjectDir:        projectDir,
		Precedence:        resolveString(cmd, repo.Precedence, "precedence", "precedence"),
		Format:            resolveString(cmd, opts.Format, "format", "format"),
		Output:            cmd.OutOrStdout(),
		OutputPath:        resolveString(cmd, opts.OutputPath, "output", "output"),
	})
	if err != nil {
		return err
	}
	if result.Unresolved > 0 {
		log.Ctx(ctx).Warn().Int("unresolved", result.Unresolved).Msg("some versions could not be resolved")
	}
	return nil
}
