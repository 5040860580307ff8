package app

import (
	"context"

	"pom-version-checker/internal/core"
)

// Ancestors walks the root project's parent chain.
func (s Service) Ancestors(ctx context.Context, req AncestorsRequest) (AncestorsResult, error) {
	project, err := s.loadProject(ctx, req.ProjectDir, "")
	if err != nil {
		return AncestorsResult{}, err
	}
	chain := core.NewAncestorWalker(s.remote(req.RepositoryRequest), s.Parser, req.MaxDepth).Walk(ctx, project.Parent)
	return AncestorsResult{
		Project: project.Coordinate,
		Parent:  project.Parent,
		Chain:   chain,
	}, nil
}
