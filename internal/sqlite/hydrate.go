// This file converts raw mineral and family rows into their entity structs.
// JSON list columns degrade to empty slices on NULL or malformed data so
// legacy or partial rows never fault a read path.
package sqlite

import (
	"database/sql"
	"encoding/json"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// mineralColumns is the SELECT list matching scanMineral's destinations.
const mineralColumns = `id, name, cdl, system, point_group, chemistry, hardness, description, origin,
    sg, ri, birefringence, optical_character, dispersion, lustre, cleavage, fracture,
    pleochroism, pleochroism_strength, pleochroism_color1, pleochroism_color2,
    pleochroism_color3, pleochroism_notes, twin_law, phenomenon, note,
    localities_json, forms_json, colors_json, treatments_json, inclusions_json,
    ri_min, ri_max, sg_min, sg_max, heat_treatment_temp_min, heat_treatment_temp_max,
    growth_method, natural_counterpart_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMineral hydrates one minerals row. The column order must match
// mineralColumns.
func scanMineral(row rowScanner) (*types.Mineral, error) {
	var (
		m        types.Mineral
		hardness sql.NullString
		desc     sql.NullString

		sg, ri   sql.NullString
		biref    sql.NullFloat64
		optical  sql.NullString
		disp     sql.NullFloat64
		lustre   sql.NullString
		cleavage sql.NullString
		fracture sql.NullString

		pleo, pleoStrength, pleoC1, pleoC2, pleoC3, pleoNotes sql.NullString

		twinLaw    sql.NullString
		phenomenon sql.NullString
		note       sql.NullString

		localities, forms, colors, treatments, inclusions sql.NullString

		riMin, riMax, sgMin, sgMax, heatMin, heatMax sql.NullFloat64

		growth      sql.NullString
		counterpart sql.NullString
	)

	err := row.Scan(
		&m.ID, &m.Name, &m.CDL, &m.System, &m.PointGroup, &m.Chemistry, &hardness, &desc, &m.Origin,
		&sg, &ri, &biref, &optical, &disp, &lustre, &cleavage, &fracture,
		&pleo, &pleoStrength, &pleoC1, &pleoC2, &pleoC3, &pleoNotes,
		&twinLaw, &phenomenon, &note,
		&localities, &forms, &colors, &treatments, &inclusions,
		&riMin, &riMax, &sgMin, &sgMax, &heatMin, &heatMax,
		&growth, &counterpart,
	)
	if err != nil {
		return nil, err
	}

	m.HardnessText = hardness.String
	m.Hardness = types.ParseHardness(hardness.String)
	m.Description = desc.String

	m.SG = strPtr(sg)
	m.RI = strPtr(ri)
	m.Birefringence = floatPtr(biref)
	m.OpticalCharacter = strPtr(optical)
	m.Dispersion = floatPtr(disp)
	m.Lustre = strPtr(lustre)
	m.Cleavage = strPtr(cleavage)
	m.Fracture = strPtr(fracture)
	m.Pleochroism = strPtr(pleo)
	m.PleochroismStrength = strPtr(pleoStrength)
	m.PleochroismColor1 = strPtr(pleoC1)
	m.PleochroismColor2 = strPtr(pleoC2)
	m.PleochroismColor3 = strPtr(pleoC3)
	m.PleochroismNotes = strPtr(pleoNotes)
	m.TwinLaw = strPtr(twinLaw)
	m.Phenomenon = strPtr(phenomenon)
	m.Note = strPtr(note)

	m.Localities = decodeList(localities)
	m.Forms = decodeList(forms)
	m.Colors = decodeList(colors)
	m.Treatments = decodeList(treatments)
	m.Inclusions = decodeList(inclusions)

	m.RIMin = floatPtr(riMin)
	m.RIMax = floatPtr(riMax)
	m.SGMin = floatPtr(sgMin)
	m.SGMax = floatPtr(sgMax)
	m.HeatTreatMin = floatPtr(heatMin)
	m.HeatTreatMax = floatPtr(heatMax)

	m.GrowthMethod = strPtr(growth)
	m.NaturalCounterpartID = strPtr(counterpart)

	return &m, nil
}

// familyColumns is the SELECT list matching scanFamily's destinations.
const familyColumns = `id, name, crystal_system, origin, point_group, chemistry, category, mineral_group,
    hardness_min, hardness_max, sg_min, sg_max, ri_min, ri_max,
    birefringence, dispersion, optical_character,
    pleochroism, pleochroism_strength, pleochroism_color1, pleochroism_color2,
    pleochroism_color3, pleochroism_notes, lustre, cleavage, fracture,
    description, notes, diagnostic_features, common_inclusions,
    localities_json, colors_json, treatments_json, inclusions_json, forms_json,
    target_minerals_json, heat_treatment_temp_min, heat_treatment_temp_max,
    twin_law, phenomenon, fluorescence, growth_method, natural_counterpart_id,
    manufacturer, year_first_produced, diagnostic_synthetic_features`

// scanFamily hydrates one families row. The column order must match
// familyColumns.
func scanFamily(row rowScanner) (*types.MineralFamily, error) {
	var (
		f types.MineralFamily

		pointGroup, chemistry, category, mineralGroup sql.NullString

		hardMin, hardMax, sgMin, sgMax, riMin, riMax sql.NullFloat64

		biref, disp sql.NullFloat64
		optical     sql.NullString

		pleo, pleoStrength, pleoC1, pleoC2, pleoC3, pleoNotes sql.NullString

		lustre, cleavage, fracture sql.NullString

		desc, notes, diagnostic, commonIncl sql.NullString

		localities, colors, treatments, inclusions, forms, targets sql.NullString

		heatMin, heatMax sql.NullFloat64

		twinLaw, phenomenon, fluorescence sql.NullString

		growth, counterpart, manufacturer sql.NullString
		yearFirst                         sql.NullInt64
		diagnosticSynth                   sql.NullString
	)

	err := row.Scan(
		&f.ID, &f.Name, &f.CrystalSystem, &f.Origin, &pointGroup, &chemistry, &category, &mineralGroup,
		&hardMin, &hardMax, &sgMin, &sgMax, &riMin, &riMax,
		&biref, &disp, &optical,
		&pleo, &pleoStrength, &pleoC1, &pleoC2, &pleoC3, &pleoNotes,
		&lustre, &cleavage, &fracture,
		&desc, &notes, &diagnostic, &commonIncl,
		&localities, &colors, &treatments, &inclusions, &forms,
		&targets, &heatMin, &heatMax,
		&twinLaw, &phenomenon, &fluorescence, &growth, &counterpart,
		&manufacturer, &yearFirst, &diagnosticSynth,
	)
	if err != nil {
		return nil, err
	}

	f.PointGroup = strPtr(pointGroup)
	f.Chemistry = strPtr(chemistry)
	f.Category = strPtr(category)
	f.MineralGroup = strPtr(mineralGroup)

	f.HardnessMin = floatPtr(hardMin)
	f.HardnessMax = floatPtr(hardMax)
	f.SGMin = floatPtr(sgMin)
	f.SGMax = floatPtr(sgMax)
	f.RIMin = floatPtr(riMin)
	f.RIMax = floatPtr(riMax)

	f.Birefringence = floatPtr(biref)
	f.Dispersion = floatPtr(disp)
	f.OpticalCharacter = strPtr(optical)
	f.Pleochroism = strPtr(pleo)
	f.PleochroismStrength = strPtr(pleoStrength)
	f.PleochroismColor1 = strPtr(pleoC1)
	f.PleochroismColor2 = strPtr(pleoC2)
	f.PleochroismColor3 = strPtr(pleoC3)
	f.PleochroismNotes = strPtr(pleoNotes)
	f.Lustre = strPtr(lustre)
	f.Cleavage = strPtr(cleavage)
	f.Fracture = strPtr(fracture)

	f.Description = strPtr(desc)
	f.Notes = strPtr(notes)
	f.DiagnosticFeatures = strPtr(diagnostic)
	f.CommonInclusions = strPtr(commonIncl)

	f.Localities = decodeList(localities)
	f.Colors = decodeList(colors)
	f.Treatments = decodeList(treatments)
	f.Inclusions = decodeList(inclusions)
	f.Forms = decodeList(forms)
	f.TargetMinerals = decodeList(targets)

	f.HeatTreatMin = floatPtr(heatMin)
	f.HeatTreatMax = floatPtr(heatMax)
	f.TwinLaw = strPtr(twinLaw)
	f.Phenomenon = strPtr(phenomenon)
	f.Fluorescence = strPtr(fluorescence)

	f.GrowthMethod = strPtr(growth)
	f.NaturalCounterpartID = strPtr(counterpart)
	f.Manufacturer = strPtr(manufacturer)
	f.YearFirstProduced = intPtr(yearFirst)
	f.DiagnosticSyntheticFeatures = strPtr(diagnosticSynth)

	return &f, nil
}

// decodeList decodes a JSON-encoded list column. NULL, empty, or malformed
// stored text yields an empty slice, never an error: a bad list column is
// "no data", not a fault.
func decodeList(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(col.String), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}

// encodeList encodes a list field for storage. Empty lists store as "[]".
func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
