package ports

import "go.trai.ch/crossbuild/internal/core/domain"

// DescriptorSource loads additional project descriptors that are merged into
// the target registry next to the built-in table.
//
//go:generate mockgen -source=descriptor_source.go -destination=mocks/mock_descriptor_source.go -package=mocks
type DescriptorSource interface {
	// Load reads project descriptors from the given path.
	Load(path string) ([]domain.Descriptor, error)
}
