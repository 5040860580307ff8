package ports

import "pom-version-checker/internal/types"

// WorkspacePort reads project descriptors from local storage.
type WorkspacePort interface {
	// ReadDescriptor returns the raw descriptor text at path.
	ReadDescriptor(path string) ([]byte, error)

	// FindDescriptors lists every file called name below root, in walk
	// order.
	FindDescriptors(root string, name string) ([]string, error)
}

// DescriptorParserPort turns raw descriptor text into a Descriptor.
type DescriptorParserPort interface {
	Parse(raw []byte) (types.Descriptor, error)
}
