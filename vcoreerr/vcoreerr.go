// Package vcoreerr holds the sentinel error values shared across the
// meshing core, per the five-member error taxonomy: a caller can
// distinguish them with errors.Is against these values whether a package
// returns them bare or wraps them with its own contextual message.
package vcoreerr

import "errors"

var (
	// ErrFormatUnrecognized signals a voxel/mesh file extension with no
	// registered loader or exporter.
	ErrFormatUnrecognized = errors.New("format not recognized")

	// ErrFormatCorrupt signals a file that matched a format but failed to
	// parse (truncated, malformed, inconsistent dimensions).
	ErrFormatCorrupt = errors.New("format data is corrupt")

	// ErrMissingTextures signals a mesh-builder AddFace or Build call made
	// before AddTextures assigned the mesh's textures.
	ErrMissingTextures = errors.New("no textures assigned")

	// ErrOutOfBounds signals an access outside the addressed container's
	// valid extent (a texture pixel read).
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidArgument signals a caller-supplied value that violates an
	// operation's precondition (a memory-stream seek with an unknown whence
	// or to a negative position).
	ErrInvalidArgument = errors.New("invalid argument")
)
