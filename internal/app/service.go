package app

import (
	"pom-version-checker/internal/adapters"
	"pom-version-checker/internal/ports"
)

// Service wires the resolution pipeline. Remote and Latest are built from
// each request's repository settings when left nil.
type Service struct {
	Workspace ports.WorkspacePort
	Parser    ports.DescriptorParserPort
	Remote    ports.RemoteDescriptorPort
	Latest    ports.LatestVersionPort
}

func NewService() Service {
	return Service{
		Workspace: adapters.NewWorkspaceAdapter(),
		Parser:    adapters.NewPomXMLAdapter(),
	}
}
