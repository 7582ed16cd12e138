package types

// MineralFamily groups the gemmological identification data shared by every
// crystal expression of a species (fluorite-cube, fluorite-octahedron).
// Expressions flatten into Mineral rows at ingest; the family row keeps the
// shared ranges and the origin classification used by the identification
// queries.
type MineralFamily struct {
	ID            string // unique lowercase slug
	Name          string
	CrystalSystem string // one of the System constants
	Origin        string // one of the Origin constants

	PointGroup   *string
	Chemistry    *string
	Category     *string // curated grouping tag
	MineralGroup *string // mineralogical group (garnet, beryl, ...)

	HardnessMin *float64
	HardnessMax *float64
	SGMin       *float64
	SGMax       *float64
	RIMin       *float64
	RIMax       *float64

	Birefringence       *float64
	Dispersion          *float64
	OpticalCharacter    *string
	Pleochroism         *string
	PleochroismStrength *string
	PleochroismColor1   *string
	PleochroismColor2   *string
	PleochroismColor3   *string
	PleochroismNotes    *string
	Lustre              *string
	Cleavage            *string
	Fracture            *string

	Description        *string
	Notes              *string
	DiagnosticFeatures *string
	CommonInclusions   *string

	Localities     []string
	Colors         []string
	Treatments     []string
	Inclusions     []string
	Forms          []string
	TargetMinerals []string // species this simulant imitates

	HeatTreatMin *float64 // heat treatment onset, degrees Celsius
	HeatTreatMax *float64
	TwinLaw      *string
	Phenomenon   *string
	Fluorescence *string

	GrowthMethod                *string // synthetic growth process
	NaturalCounterpartID        *string // id of the natural family imitated
	Manufacturer                *string
	YearFirstProduced           *int
	DiagnosticSyntheticFeatures *string
}

// Counterparts names the synthetic and simulant families that imitate a
// natural species.
type Counterparts struct {
	Synthetics []string // family ids with origin synthetic
	Simulants  []string // family ids with origin simulant
}
