package voxelmodel

// Material holds the surface parameters applied per material index by
// the mesh exporter, grounded on VCore/Meshing/Material.hpp's CMaterial
// field set.
type Material struct {
	Name         string
	Metallic     float32
	Specular     float32
	Roughness    float32
	IOR          float32
	Power        float32 // emission strength
	Transparency float32
}

// NewMaterial returns a material with the original's default roughness
// of 1 and every other parameter zeroed.
func NewMaterial(name string) Material {
	return Material{Name: name, Roughness: 1}
}

// Equal reports whether two materials carry identical parameters,
// matching CMaterial::operator==.
func (m Material) Equal(o Material) bool {
	return m.Name == o.Name &&
		m.Metallic == o.Metallic &&
		m.Specular == o.Specular &&
		m.Roughness == o.Roughness &&
		m.IOR == o.IOR &&
		m.Power == o.Power &&
		m.Transparency == o.Transparency
}
