// Package format defines the contract a voxel file loader or exporter
// implements, and the extension-to-type dispatch table used to pick one.
// No concrete codec lives here; wiring an actual MagicaVoxel/Goxel/
// Qubicle reader is explicitly out of scope. Grounded on
// VCore/Formats/IVoxelFormat.hpp.
package format

import (
	"os"
	"path/filepath"
	"strings"

	"vcore/texture"
	"vcore/vcoreerr"
	"vcore/voxelmodel"
	"vcore/vstream"
)

// Type identifies a voxel file format, matching LoaderType.
type Type int

const (
	Unknown Type = iota
	MagicaVoxel
	Goxel
	KenShape
	QubicleBin
	QubicleBinTree
	QubicleExchange
	Qubicle
)

var extensions = map[string]Type{
	".vox":      MagicaVoxel,
	".gox":      Goxel,
	".kenshape": KenShape,
	".qb":       QubicleBin,
	".qbt":      QubicleBinTree,
	".qef":      QubicleExchange,
	".qbcl":     Qubicle,
}

// TypeFromFilename returns the format a filename's extension implies,
// matching IVoxelFormat::GetType, or Unknown if the extension isn't
// registered.
func TypeFromFilename(filename string) Type {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := extensions[ext]; ok {
		return t
	}
	return Unknown
}

// Loader loads a voxel file's models, animations, materials and textures
// from a stream, matching IVoxelFormat's load-side contract.
type Loader interface {
	// Load reads a complete voxel file from strm and caches its parsed
	// content. It returns vcoreerr.ErrFormatUnrecognized if strm's
	// content doesn't match this loader's expected signature, or
	// vcoreerr.ErrFormatCorrupt if the signature matches but the body
	// can't be parsed.
	Load(strm vstream.Stream) error

	// Models returns every voxel model parsed out of the file.
	Models() []*voxelmodel.Model

	// Animations returns every animation parsed out of the file.
	Animations() []*voxelmodel.Animation

	// Materials returns the file's material palette.
	Materials() []voxelmodel.Material

	// Textures returns the file's texture atlas, keyed by texture type.
	Textures() map[texture.Type]*texture.Texture

	// SceneTree returns the file's scene node hierarchy, or nil if the
	// format has no concept of one.
	SceneTree() *voxelmodel.SceneNode
}

// Exporter writes models back out to a stream in this format's encoding,
// matching IVoxelFormat's save-side contract.
type Exporter interface {
	// Export writes models to strm. It returns vcoreerr.ErrInvalidArgument
	// if models is empty.
	Export(strm vstream.Stream, models []*voxelmodel.Model) error
}

// loaderFactories and exporterFactories are the registry a concrete codec
// package would populate at init time through RegisterLoader and
// RegisterExporter; with no codec wired in, every format type reports
// unrecognized.
var (
	loaderFactories   = map[Type]func() Loader{}
	exporterFactories = map[Type]func() Exporter{}
)

// RegisterLoader installs a loader factory for t, letting a concrete
// codec package wire itself into the dispatch table via an init func.
func RegisterLoader(t Type, factory func() Loader) {
	loaderFactories[t] = factory
}

// RegisterExporter installs an exporter factory for t.
func RegisterExporter(t Type, factory func() Exporter) {
	exporterFactories[t] = factory
}

// NewLoader returns a fresh Loader for t, or ErrFormatUnrecognized if no
// codec has registered one.
func NewLoader(t Type) (Loader, error) {
	factory, ok := loaderFactories[t]
	if !ok {
		return nil, vcoreerr.ErrFormatUnrecognized
	}
	return factory(), nil
}

// NewExporter returns a fresh Exporter for t, or ErrFormatUnrecognized if
// no codec has registered one.
func NewExporter(t Type) (Exporter, error) {
	factory, ok := exporterFactories[t]
	if !ok {
		return nil, vcoreerr.ErrFormatUnrecognized
	}
	return factory(), nil
}

// CreateAndLoad opens path, determines its format from the extension,
// and loads it, matching IVoxelFormat::CreateAndLoad.
func CreateAndLoad(path string) (Loader, error) {
	t := TypeFromFilename(path)
	loader, err := NewLoader(t)
	if err != nil {
		return nil, err
	}

	strm, err := vstream.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer strm.Close()

	if err := loader.Load(strm); err != nil {
		return nil, err
	}
	return loader, nil
}
