// This file holds the row insert helpers shared by the seed and ingest
// paths. Queries never write minerals or families; these run only inside
// the offline build transactions.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// SchemaVersion identifies the current table layout, stamped into
// database_info at build time.
const SchemaVersion = "2"

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// insertMineral writes one minerals row, replacing any previous row with
// the same id.
func insertMineral(e execer, m *types.Mineral) error {
	origin := m.Origin
	if origin == "" {
		origin = types.OriginNatural
	}

	_, err := e.Exec(`INSERT OR REPLACE INTO minerals (
        id, name, cdl, system, point_group, chemistry, hardness, description, origin,
        sg, ri, birefringence, optical_character, dispersion, lustre, cleavage, fracture,
        pleochroism, pleochroism_strength, pleochroism_color1, pleochroism_color2,
        pleochroism_color3, pleochroism_notes, twin_law, phenomenon, note,
        localities_json, forms_json, colors_json, treatments_json, inclusions_json,
        ri_min, ri_max, sg_min, sg_max, heat_treatment_temp_min, heat_treatment_temp_max,
        growth_method, natural_counterpart_id
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
        ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.CDL, m.System, m.PointGroup, m.Chemistry, m.HardnessText, m.Description, origin,
		nullStr(m.SG), nullStr(m.RI), nullFloat(m.Birefringence), nullStr(m.OpticalCharacter),
		nullFloat(m.Dispersion), nullStr(m.Lustre), nullStr(m.Cleavage), nullStr(m.Fracture),
		nullStr(m.Pleochroism), nullStr(m.PleochroismStrength), nullStr(m.PleochroismColor1),
		nullStr(m.PleochroismColor2), nullStr(m.PleochroismColor3), nullStr(m.PleochroismNotes),
		nullStr(m.TwinLaw), nullStr(m.Phenomenon), nullStr(m.Note),
		encodeList(m.Localities), encodeList(m.Forms), encodeList(m.Colors),
		encodeList(m.Treatments), encodeList(m.Inclusions),
		nullFloat(m.RIMin), nullFloat(m.RIMax), nullFloat(m.SGMin), nullFloat(m.SGMax),
		nullFloat(m.HeatTreatMin), nullFloat(m.HeatTreatMax),
		nullStr(m.GrowthMethod), nullStr(m.NaturalCounterpartID),
	)
	if err != nil {
		return fmt.Errorf("inserting mineral %s: %w", m.ID, err)
	}
	return nil
}

// insertFamily writes one families row, replacing any previous row with
// the same id.
func insertFamily(e execer, f *types.MineralFamily) error {
	origin := f.Origin
	if origin == "" {
		origin = types.OriginNatural
	}

	_, err := e.Exec(`INSERT OR REPLACE INTO families (
        id, name, crystal_system, origin, point_group, chemistry, category, mineral_group,
        hardness_min, hardness_max, sg_min, sg_max, ri_min, ri_max,
        birefringence, dispersion, optical_character,
        pleochroism, pleochroism_strength, pleochroism_color1, pleochroism_color2,
        pleochroism_color3, pleochroism_notes, lustre, cleavage, fracture,
        description, notes, diagnostic_features, common_inclusions,
        localities_json, colors_json, treatments_json, inclusions_json, forms_json,
        target_minerals_json, heat_treatment_temp_min, heat_treatment_temp_max,
        twin_law, phenomenon, fluorescence, growth_method, natural_counterpart_id,
        manufacturer, year_first_produced, diagnostic_synthetic_features
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
        ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.CrystalSystem, origin, nullStr(f.PointGroup), nullStr(f.Chemistry),
		nullStr(f.Category), nullStr(f.MineralGroup),
		nullFloat(f.HardnessMin), nullFloat(f.HardnessMax), nullFloat(f.SGMin), nullFloat(f.SGMax),
		nullFloat(f.RIMin), nullFloat(f.RIMax),
		nullFloat(f.Birefringence), nullFloat(f.Dispersion), nullStr(f.OpticalCharacter),
		nullStr(f.Pleochroism), nullStr(f.PleochroismStrength), nullStr(f.PleochroismColor1),
		nullStr(f.PleochroismColor2), nullStr(f.PleochroismColor3), nullStr(f.PleochroismNotes),
		nullStr(f.Lustre), nullStr(f.Cleavage), nullStr(f.Fracture),
		nullStr(f.Description), nullStr(f.Notes), nullStr(f.DiagnosticFeatures), nullStr(f.CommonInclusions),
		encodeList(f.Localities), encodeList(f.Colors), encodeList(f.Treatments),
		encodeList(f.Inclusions), encodeList(f.Forms), encodeList(f.TargetMinerals),
		nullFloat(f.HeatTreatMin), nullFloat(f.HeatTreatMax),
		nullStr(f.TwinLaw), nullStr(f.Phenomenon), nullStr(f.Fluorescence),
		nullStr(f.GrowthMethod), nullStr(f.NaturalCounterpartID),
		nullStr(f.Manufacturer), nullInt(f.YearFirstProduced), nullStr(f.DiagnosticSyntheticFeatures),
	)
	if err != nil {
		return fmt.Errorf("inserting family %s: %w", f.ID, err)
	}
	return nil
}

// insertCategory writes one curated category row with its preset id list.
func insertCategory(e execer, name string, presets []string) error {
	_, err := e.Exec("INSERT OR REPLACE INTO categories (name, presets_json) VALUES (?, ?)",
		name, encodeList(presets))
	if err != nil {
		return fmt.Errorf("inserting category %s: %w", name, err)
	}
	return nil
}

// stampBuildInfo records the schema version, a fresh build run id, and the
// build timestamp.
func stampBuildInfo(e execer) error {
	entries := map[string]string{
		"schema_version": SchemaVersion,
		"build_id":       buildID(),
		"built_at":       time.Now().UTC().Format(time.RFC3339),
	}
	for key, value := range entries {
		_, err := e.Exec("INSERT OR REPLACE INTO database_info (key, value) VALUES (?, ?)",
			key, value)
		if err != nil {
			return fmt.Errorf("stamping %s: %w", key, err)
		}
	}
	return nil
}

// buildID generates a UUID v7 run id, falling back to v4 when the clock
// misbehaves.
func buildID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
