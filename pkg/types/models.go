package types

// ModelSet holds the pre-rendered 3D model payloads for one mineral. At most
// one set exists per mineral; it is written only by the offline backfill
// path and read by the model accessors. A mineral without a set is a normal
// condition, not an error.
type ModelSet struct {
	SVG         *string // SVG markup
	STL         []byte  // binary STL payload, nil when absent
	GLTF        *string // glTF JSON text
	GeneratedAt *string // RFC 3339 timestamp of generation
}

// Empty reports whether the set carries no payloads at all.
func (m ModelSet) Empty() bool {
	return m.SVG == nil && m.STL == nil && m.GLTF == nil && m.GeneratedAt == nil
}
