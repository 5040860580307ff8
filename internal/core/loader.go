package core

import (
	"context"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pom-version-checker/internal/ports"
	"pom-version-checker/internal/types"
)

type ProjectLoader struct {
	Workspace ports.WorkspacePort
	Parser    ports.DescriptorParserPort
}

func NewProjectLoader(workspace ports.WorkspacePort, parser ports.DescriptorParserPort) ProjectLoader {
	return ProjectLoader{
		Workspace: workspace,
		Parser:    parser,
	}
}

// Load reads the root descriptor of rootDir and every module descriptor
// below it. The root must be readable and well formed; a broken module is
// logged and left out.
func (l ProjectLoader) Load(ctx context.Context, rootDir string, excludeGroup string) (types.Project, error) {
	if l.Workspace == nil || l.Parser == nil {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project loader requires workspace and parser ports")
	}
	assert.NotEmpty(ctx, rootDir, "project directory must be set")
	rootPath := filepath.Join(rootDir, types.DescriptorFileName)
	raw, err := l.Workspace.ReadDescriptor(rootPath)
	if err != nil {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("root descriptor not found: " + rootPath).
			WithCause(err)
	}
	root, err := l.Parser.Parse(raw)
	if err != nil {
		return types.Project{}, err
	}
	assert.NotEmpty(ctx, root.Coordinate.ArtifactID, "root descriptor must have an artifactId")

	project := types.Project{
		Descriptor:   root,
		Path:         rootPath,
		ExcludeGroup: excludeGroup,
	}

	paths, err := l.Workspace.FindDescriptors(rootDir, types.DescriptorFileName)
	if err != nil {
		return types.Project{}, err
	}
	for _, path := range paths {
		if filepath.Clean(path) == filepath.Clean(rootPath) {
			continue
		}
		module, ok := l.loadModule(ctx, path)
		if !ok {
			continue
		}
		project.Modules = append(project.Modules, module)
	}

	log.Ctx(ctx).Debug().
		Str("project", root.Coordinate.String()).
		Int("modules", len(project.Modules)).
		Msg("project loaded")
	return project, nil
}

func (l ProjectLoader) loadModule(ctx context.Context, path string) (types.Module, bool) {
	raw, err := l.Workspace.ReadDescriptor(path)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("module descriptor unreadable, skipping")
		return types.Module{}, false
	}
	descriptor, err := l.Parser.Parse(raw)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("module descriptor malformed, skipping")
		return types.Module{}, false
	}
	return types.Module{Descriptor: descriptor, Path: path}, true
}
