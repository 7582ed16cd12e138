package types

import (
	"errors"
	"strconv"
)

// Crystal systems. Amorphous is included for materials without long-range
// order (opal, glass simulants).
const (
	SystemCubic        = "cubic"
	SystemHexagonal    = "hexagonal"
	SystemTrigonal     = "trigonal"
	SystemTetragonal   = "tetragonal"
	SystemOrthorhombic = "orthorhombic"
	SystemMonoclinic   = "monoclinic"
	SystemTriclinic    = "triclinic"
	SystemAmorphous    = "amorphous"
)

// crystalSystems lists the systems in conventional order.
var crystalSystems = []string{
	SystemCubic,
	SystemHexagonal,
	SystemTrigonal,
	SystemTetragonal,
	SystemOrthorhombic,
	SystemMonoclinic,
	SystemTriclinic,
	SystemAmorphous,
}

// Systems returns the crystal system names in conventional order.
func Systems() []string {
	out := make([]string, len(crystalSystems))
	copy(out, crystalSystems)
	return out
}

// ValidSystem reports whether s is a recognized crystal system.
func ValidSystem(s string) bool {
	for _, sys := range crystalSystems {
		if s == sys {
			return true
		}
	}
	return false
}

// Origin classifications for an entry.
const (
	OriginNatural   = "natural"
	OriginSynthetic = "synthetic"
	OriginSimulant  = "simulant"
	OriginComposite = "composite"
)

// validOrigins is the set of recognized origin values.
var validOrigins = map[string]bool{
	OriginNatural:   true,
	OriginSynthetic: true,
	OriginSimulant:  true,
	OriginComposite: true,
}

// ValidOrigin reports whether s is a recognized origin classification.
func ValidOrigin(s string) bool {
	return validOrigins[s]
}

// ErrInvalidPointGroup reports a point group outside the 32 crystallographic
// classes. Curated data must not carry one, so ingest fails on it.
var ErrInvalidPointGroup = errors.New("invalid point group")

// pointGroupList holds the 32 crystallographic point groups in short
// Hermann-Mauguin notation, grouped by crystal system.
var pointGroupList = []string{
	"1", "-1", // triclinic
	"2", "m", "2/m", // monoclinic
	"222", "mm2", "mmm", // orthorhombic
	"4", "-4", "4/m", "422", "4mm", "-42m", "4/mmm", // tetragonal
	"3", "-3", "32", "3m", "-3m", // trigonal
	"6", "-6", "6/m", "622", "6mm", "-6m2", "6/mmm", // hexagonal
	"23", "m3", "432", "-43m", "m3m", // cubic
}

// validPointGroups is the set form of pointGroupList.
var validPointGroups = make(map[string]bool, len(pointGroupList))

func init() {
	for _, g := range pointGroupList {
		validPointGroups[g] = true
	}
}

// PointGroups returns the 32 point group symbols grouped by crystal system.
func PointGroups() []string {
	out := make([]string, len(pointGroupList))
	copy(out, pointGroupList)
	return out
}

// ValidPointGroup reports whether g is one of the 32 crystallographic point
// groups.
func ValidPointGroup(g string) bool {
	return validPointGroups[g]
}

// Mineral is one entry of the reference dataset: a mineral species or one
// crystal expression of a species.
type Mineral struct {
	ID           string  // unique lowercase slug, immutable primary key
	Name         string  // display name
	CDL          string  // crystal description notation, parsed downstream
	System       string  // one of the System constants
	PointGroup   string  // short Hermann-Mauguin symbol
	Chemistry    string  // chemical formula
	Hardness     float64 // Mohs hardness parsed from HardnessText
	HardnessText string  // stored hardness text, may be a range like "5-7"
	Description  string  // habit description
	Origin       string  // one of the Origin constants

	// Optional gemmological attributes. Nil preserves a NULL column; the
	// preset projection omits nil fields.
	SG                  *string  // specific gravity, single value or "lo-hi" range
	RI                  *string  // refractive index, single value or "lo-hi" range
	Birefringence       *float64
	OpticalCharacter    *string
	Dispersion          *float64
	Lustre              *string
	Cleavage            *string
	Fracture            *string
	Pleochroism         *string
	PleochroismStrength *string // none, weak, moderate, strong, very_strong
	PleochroismColor1   *string
	PleochroismColor2   *string
	PleochroismColor3   *string // trichroic gems
	PleochroismNotes    *string
	TwinLaw             *string
	Phenomenon          *string
	Note                *string

	// List attributes, stored JSON-encoded. Always non-nil: absent or
	// malformed stored data decodes to an empty slice.
	Localities []string
	Forms      []string
	Colors     []string
	Treatments []string
	Inclusions []string

	// Numeric ranges for the identification calculators, derived from the
	// SG/RI text when not stored explicitly.
	RIMin        *float64
	RIMax        *float64
	SGMin        *float64
	SGMax        *float64
	HeatTreatMin *float64 // heat treatment onset, degrees Celsius
	HeatTreatMax *float64

	GrowthMethod         *string // synthetic growth process (flame_fusion, flux, hpht, cvd, ...)
	NaturalCounterpartID *string // id of the natural species a synthetic or simulant imitates
}

// Preset returns the denormalized preset projection: a string-keyed map
// holding every non-nil scalar and every non-empty list field, keyed by the
// column names. Nil scalars and empty lists are omitted entirely, never set
// to null. Stored numeric text (hardness, sg, ri) projects as float64 when
// it parses as a single number and as the raw string otherwise.
func (m *Mineral) Preset() map[string]any {
	p := map[string]any{
		"id":          m.ID,
		"name":        m.Name,
		"cdl":         m.CDL,
		"system":      m.System,
		"point_group": m.PointGroup,
		"chemistry":   m.Chemistry,
		"description": m.Description,
		"origin":      m.Origin,
	}
	if m.HardnessText != "" {
		p["hardness"] = presetNumber(m.HardnessText)
	}

	putList(p, "localities", m.Localities)
	putList(p, "forms", m.Forms)
	putList(p, "colors", m.Colors)
	putList(p, "treatments", m.Treatments)
	putList(p, "inclusions", m.Inclusions)

	if m.SG != nil {
		p["sg"] = presetNumber(*m.SG)
	}
	if m.RI != nil {
		p["ri"] = presetNumber(*m.RI)
	}
	putFloat(p, "birefringence", m.Birefringence)
	putString(p, "optical_character", m.OpticalCharacter)
	putFloat(p, "dispersion", m.Dispersion)
	putString(p, "lustre", m.Lustre)
	putString(p, "cleavage", m.Cleavage)
	putString(p, "fracture", m.Fracture)
	putString(p, "pleochroism", m.Pleochroism)
	putString(p, "pleochroism_strength", m.PleochroismStrength)
	putString(p, "pleochroism_color1", m.PleochroismColor1)
	putString(p, "pleochroism_color2", m.PleochroismColor2)
	putString(p, "pleochroism_color3", m.PleochroismColor3)
	putString(p, "pleochroism_notes", m.PleochroismNotes)
	putString(p, "twin_law", m.TwinLaw)
	putString(p, "phenomenon", m.Phenomenon)
	putString(p, "note", m.Note)
	putFloat(p, "ri_min", m.RIMin)
	putFloat(p, "ri_max", m.RIMax)
	putFloat(p, "sg_min", m.SGMin)
	putFloat(p, "sg_max", m.SGMax)
	putFloat(p, "heat_treatment_temp_min", m.HeatTreatMin)
	putFloat(p, "heat_treatment_temp_max", m.HeatTreatMax)
	putString(p, "growth_method", m.GrowthMethod)
	putString(p, "natural_counterpart_id", m.NaturalCounterpartID)

	return p
}

// presetNumber projects stored numeric text: a value that parses as a single
// float projects as float64; ranges and other text stay strings.
func presetNumber(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func putString(p map[string]any, key string, v *string) {
	if v != nil {
		p[key] = *v
	}
}

func putFloat(p map[string]any, key string, v *float64) {
	if v != nil {
		p[key] = *v
	}
}

func putList(p map[string]any, key string, v []string) {
	if len(v) > 0 {
		p[key] = v
	}
}
