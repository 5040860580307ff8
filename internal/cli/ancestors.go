package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pom-version-checker/internal/app"
)

func newAncestorsCommand(repo *repositoryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors <project-dir>",
		Short: "Print the parent chain of the root project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAncestors(cmd.Context(), cmd, *repo, args[0])
		},
	}
}

func runAncestors(ctx context.Context, cmd *cobra.Command, repo repositoryOptions, projectDir string) error {
	service := newAppService()
	result, err := service.Ancestors(ctx, app.AncestorsRequest{
		RepositoryRequest: repositoryRequest(cmd, repo),
		ProjectDir:        projectDir,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "project %s\n", result.Project)
	for i, ancestor := range result.Chain.Descriptors {
		fmt.Fprintf(out, "%d. %s\n", i+1, ancestor.Coordinate)
	}
	fmt.Fprintf(out, "walk: %s\n", result.Chain.Stop)
	return nil
}
