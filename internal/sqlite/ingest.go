// This file implements the YAML ingest path: the offline build step that
// loads curated mineral definitions into the database. Two document formats
// are accepted: the family format (shared properties plus an expressions
// list, one mineral row per expression) and the flat legacy format (one
// mineral per file).
package sqlite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// originDirs are the sibling directories scanned after the root, each
// forcing the origin of the documents it holds.
var originDirs = map[string]string{
	"synthetics": types.OriginSynthetic,
	"simulants":  types.OriginSimulant,
	"composites": types.OriginComposite,
}

// familyDoc is the family-format YAML document.
type familyDoc struct {
	Name          string  `yaml:"name"`
	CrystalSystem string  `yaml:"crystal_system"`
	Origin        string  `yaml:"origin"`
	PointGroup    *string `yaml:"point_group"`
	Chemistry     *string `yaml:"chemistry"`
	Category      *string `yaml:"category"`
	MineralGroup  *string `yaml:"mineral_group"`

	Hardness    *string  `yaml:"hardness"`
	HardnessMin *float64 `yaml:"hardness_min"`
	HardnessMax *float64 `yaml:"hardness_max"`
	SG          *string  `yaml:"sg"`
	SGMin       *float64 `yaml:"sg_min"`
	SGMax       *float64 `yaml:"sg_max"`
	RI          *string  `yaml:"ri"`
	RIMin       *float64 `yaml:"ri_min"`
	RIMax       *float64 `yaml:"ri_max"`

	Birefringence       *float64 `yaml:"birefringence"`
	Dispersion          *float64 `yaml:"dispersion"`
	OpticalCharacter    *string  `yaml:"optical_character"`
	Pleochroism         *string  `yaml:"pleochroism"`
	PleochroismStrength *string  `yaml:"pleochroism_strength"`
	PleochroismColor1   *string  `yaml:"pleochroism_color1"`
	PleochroismColor2   *string  `yaml:"pleochroism_color2"`
	PleochroismColor3   *string  `yaml:"pleochroism_color3"`
	PleochroismNotes    *string  `yaml:"pleochroism_notes"`
	Lustre              *string  `yaml:"lustre"`
	Cleavage            *string  `yaml:"cleavage"`
	Fracture            *string  `yaml:"fracture"`

	Description        *string `yaml:"description"`
	Notes              *string `yaml:"notes"`
	DiagnosticFeatures *string `yaml:"diagnostic_features"`
	CommonInclusions   *string `yaml:"common_inclusions"`

	Localities     []string `yaml:"localities"`
	Colors         []string `yaml:"colors"`
	Treatments     []string `yaml:"treatments"`
	Inclusions     []string `yaml:"inclusions"`
	Forms          []string `yaml:"forms"`
	TargetMinerals []string `yaml:"target_minerals"`

	HeatTreatMin *float64 `yaml:"heat_treatment_temp_min"`
	HeatTreatMax *float64 `yaml:"heat_treatment_temp_max"`
	TwinLaw      *string  `yaml:"twin_law"`
	Phenomenon   *string  `yaml:"phenomenon"`
	Fluorescence *string  `yaml:"fluorescence"`

	GrowthMethod                *string `yaml:"growth_method"`
	NaturalCounterpartID        *string `yaml:"natural_counterpart_id"`
	Manufacturer                *string `yaml:"manufacturer"`
	YearFirstProduced           *int    `yaml:"year_first_produced"`
	DiagnosticSyntheticFeatures *string `yaml:"diagnostic_synthetic_features"`

	Expressions []expressionDoc `yaml:"expressions"`
}

// expressionDoc is one crystal expression inside a family document.
type expressionDoc struct {
	Slug            string   `yaml:"slug"`
	Name            string   `yaml:"name"`
	CDL             string   `yaml:"cdl"`
	PointGroup      *string  `yaml:"point_group"`
	Forms           []string `yaml:"forms"`
	FormDescription *string  `yaml:"form_description"`
	Note            *string  `yaml:"note"`
}

// mineralDoc is the flat legacy YAML document: one mineral per file, keyed
// by the filename stem.
type mineralDoc struct {
	Name        string `yaml:"name"`
	CDL         string `yaml:"cdl"`
	System      string `yaml:"system"`
	PointGroup  string `yaml:"point_group"`
	Chemistry   string `yaml:"chemistry"`
	Hardness    string `yaml:"hardness"`
	Description string `yaml:"description"`
	Origin      string `yaml:"origin"`

	SG                  *string  `yaml:"sg"`
	RI                  *string  `yaml:"ri"`
	Birefringence       *float64 `yaml:"birefringence"`
	OpticalCharacter    *string  `yaml:"optical_character"`
	Dispersion          *float64 `yaml:"dispersion"`
	Lustre              *string  `yaml:"lustre"`
	Cleavage            *string  `yaml:"cleavage"`
	Fracture            *string  `yaml:"fracture"`
	Pleochroism         *string  `yaml:"pleochroism"`
	PleochroismStrength *string  `yaml:"pleochroism_strength"`
	PleochroismColor1   *string  `yaml:"pleochroism_color1"`
	PleochroismColor2   *string  `yaml:"pleochroism_color2"`
	PleochroismColor3   *string  `yaml:"pleochroism_color3"`
	PleochroismNotes    *string  `yaml:"pleochroism_notes"`
	TwinLaw             *string  `yaml:"twin_law"`
	Phenomenon          *string  `yaml:"phenomenon"`
	Note                *string  `yaml:"note"`

	Localities []string `yaml:"localities"`
	Forms      []string `yaml:"forms"`
	Colors     []string `yaml:"colors"`
	Treatments []string `yaml:"treatments"`
	Inclusions []string `yaml:"inclusions"`

	RIMin        *float64 `yaml:"ri_min"`
	RIMax        *float64 `yaml:"ri_max"`
	SGMin        *float64 `yaml:"sg_min"`
	SGMax        *float64 `yaml:"sg_max"`
	HeatTreatMin *float64 `yaml:"heat_treatment_temp_min"`
	HeatTreatMax *float64 `yaml:"heat_treatment_temp_max"`

	GrowthMethod         *string `yaml:"growth_method"`
	NaturalCounterpartID *string `yaml:"natural_counterpart_id"`
}

// IngestYAML loads every *.yaml file under dir, plus the synthetics/,
// simulants/, and composites/ subdirectories, into the database. Point
// groups are validated: curated data carrying one outside the 32 classes
// fails the ingest.
func (s *Store) IngestYAML(dir string) (types.IngestStats, error) {
	if err := s.writing(); err != nil {
		return types.IngestStats{}, err
	}
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return types.IngestStats{}, fmt.Errorf("beginning ingest transaction: %w", err)
	}
	defer tx.Rollback()

	var stats types.IngestStats
	if err := s.ingestDir(tx, dir, "", &stats); err != nil {
		return types.IngestStats{}, err
	}
	for sub, origin := range originDirs {
		subDir := filepath.Join(dir, sub)
		if _, err := os.Stat(subDir); err != nil {
			continue
		}
		if err := s.ingestDir(tx, subDir, origin, &stats); err != nil {
			return types.IngestStats{}, err
		}
	}

	if err := stampBuildInfo(tx); err != nil {
		return types.IngestStats{}, err
	}
	if err := tx.Commit(); err != nil {
		return types.IngestStats{}, fmt.Errorf("committing ingest: %w", err)
	}

	s.log.Debug("ingest complete",
		zap.String("dir", dir),
		zap.Int("families", stats.Families),
		zap.Int("expressions", stats.Expressions),
		zap.Int("legacy", stats.Legacy),
	)
	return stats, nil
}

// ingestDir loads the YAML documents of one directory. A non-empty origin
// overrides the documents' own origin field.
func (s *Store) ingestDir(tx execer, dir, origin string, stats *types.IngestStats) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		slug := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ".yaml"))

		var probe struct {
			Expressions []yaml.Node `yaml:"expressions"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		if len(probe.Expressions) > 0 {
			if err := s.ingestFamily(tx, slug, data, origin, stats); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		} else {
			if err := s.ingestFlat(tx, slug, data, origin, stats); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

// ingestFamily loads one family document: the family row plus one mineral
// row per expression, expression overrides merged over family defaults.
func (s *Store) ingestFamily(tx execer, familyID string, data []byte, origin string, stats *types.IngestStats) error {
	var doc familyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing family document: %w", err)
	}
	if origin != "" {
		doc.Origin = origin
	}

	family, err := doc.family(familyID)
	if err != nil {
		return err
	}
	if err := insertFamily(tx, family); err != nil {
		return err
	}
	stats.Families++
	s.log.Debug("ingested family", zap.String("id", familyID), zap.Int("expressions", len(doc.Expressions)))

	for i := range doc.Expressions {
		mineral, err := doc.mineral(familyID, &doc.Expressions[i])
		if err != nil {
			return err
		}
		if err := insertMineral(tx, mineral); err != nil {
			return err
		}
		stats.Expressions++
	}
	return nil
}

// ingestFlat loads one flat legacy document as a single mineral row.
func (s *Store) ingestFlat(tx execer, id string, data []byte, origin string, stats *types.IngestStats) error {
	var doc mineralDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing mineral document: %w", err)
	}
	if origin != "" {
		doc.Origin = origin
	}

	mineral, err := doc.mineral(id)
	if err != nil {
		return err
	}
	if err := insertMineral(tx, mineral); err != nil {
		return err
	}
	stats.Legacy++
	s.log.Debug("ingested mineral", zap.String("id", id))
	return nil
}

// family converts the document into a MineralFamily, deriving the numeric
// ranges from the text fields when not given explicitly.
func (d *familyDoc) family(id string) (*types.MineralFamily, error) {
	if d.PointGroup != nil && !types.ValidPointGroup(*d.PointGroup) {
		return nil, fmt.Errorf("family %s: %w: %q", id, types.ErrInvalidPointGroup, *d.PointGroup)
	}

	f := &types.MineralFamily{
		ID:            id,
		Name:          d.Name,
		CrystalSystem: strings.ToLower(d.CrystalSystem),
		Origin:        d.Origin,
		PointGroup:    d.PointGroup,
		Chemistry:     d.Chemistry,
		Category:      d.Category,
		MineralGroup:  d.MineralGroup,

		HardnessMin: d.HardnessMin, HardnessMax: d.HardnessMax,
		SGMin: d.SGMin, SGMax: d.SGMax,
		RIMin: d.RIMin, RIMax: d.RIMax,

		Birefringence:       d.Birefringence,
		Dispersion:          d.Dispersion,
		OpticalCharacter:    d.OpticalCharacter,
		Pleochroism:         d.Pleochroism,
		PleochroismStrength: d.PleochroismStrength,
		PleochroismColor1:   d.PleochroismColor1,
		PleochroismColor2:   d.PleochroismColor2,
		PleochroismColor3:   d.PleochroismColor3,
		PleochroismNotes:    d.PleochroismNotes,
		Lustre:              d.Lustre,
		Cleavage:            d.Cleavage,
		Fracture:            d.Fracture,

		Description:        d.Description,
		Notes:              d.Notes,
		DiagnosticFeatures: d.DiagnosticFeatures,
		CommonInclusions:   d.CommonInclusions,

		Localities:     d.Localities,
		Colors:         d.Colors,
		Treatments:     d.Treatments,
		Inclusions:     d.Inclusions,
		Forms:          d.Forms,
		TargetMinerals: d.TargetMinerals,

		HeatTreatMin: d.HeatTreatMin,
		HeatTreatMax: d.HeatTreatMax,
		TwinLaw:      d.TwinLaw,
		Phenomenon:   d.Phenomenon,
		Fluorescence: d.Fluorescence,

		GrowthMethod:                d.GrowthMethod,
		NaturalCounterpartID:        d.NaturalCounterpartID,
		Manufacturer:                d.Manufacturer,
		YearFirstProduced:           d.YearFirstProduced,
		DiagnosticSyntheticFeatures: d.DiagnosticSyntheticFeatures,
	}

	if f.HardnessMin == nil && d.Hardness != nil {
		if lo, hi, ok := types.ParseRange(*d.Hardness); ok {
			f.HardnessMin, f.HardnessMax = &lo, &hi
		}
	}
	if f.SGMin == nil && d.SG != nil {
		if lo, hi, ok := types.ParseRange(*d.SG); ok {
			f.SGMin, f.SGMax = &lo, &hi
		}
	}
	if f.RIMin == nil && d.RI != nil {
		if lo, hi, ok := types.ParseRange(*d.RI); ok {
			f.RIMin, f.RIMax = &lo, &hi
		}
	}
	return f, nil
}

// mineral flattens one expression over the family defaults into a mineral
// row. The row id composes as "family-slug"; the "default" slug keeps the
// bare family id, and its name stays the family name.
func (d *familyDoc) mineral(familyID string, expr *expressionDoc) (*types.Mineral, error) {
	slug := expr.Slug
	if slug == "" {
		slug = "default"
	}
	id := familyID
	name := d.Name
	if slug != "default" {
		id = familyID + "-" + slug
		exprName := expr.Name
		if exprName == "" {
			exprName = titleSlug(slug)
		}
		name = fmt.Sprintf("%s (%s)", d.Name, exprName)
	}

	if expr.CDL == "" {
		return nil, fmt.Errorf("expression %s: missing cdl", id)
	}
	pointGroup := valueOr(expr.PointGroup, valueOr(d.PointGroup, ""))
	if !types.ValidPointGroup(pointGroup) {
		return nil, fmt.Errorf("expression %s: %w: %q", id, types.ErrInvalidPointGroup, pointGroup)
	}

	forms := expr.Forms
	if len(forms) == 0 {
		forms = d.Forms
	}

	m := &types.Mineral{
		ID:         id,
		Name:       name,
		CDL:        expr.CDL,
		System:     strings.ToLower(d.CrystalSystem),
		PointGroup: pointGroup,
		Chemistry:  valueOr(d.Chemistry, ""),
		Origin:     d.Origin,

		Description: valueOr(expr.FormDescription, valueOr(d.Description, "")),
		Note:        firstPtr(expr.Note, d.Notes),

		OpticalCharacter:    d.OpticalCharacter,
		Birefringence:       d.Birefringence,
		Dispersion:          d.Dispersion,
		Lustre:              d.Lustre,
		Cleavage:            d.Cleavage,
		Fracture:            d.Fracture,
		Pleochroism:         d.Pleochroism,
		PleochroismStrength: d.PleochroismStrength,
		PleochroismColor1:   d.PleochroismColor1,
		PleochroismColor2:   d.PleochroismColor2,
		PleochroismColor3:   d.PleochroismColor3,
		PleochroismNotes:    d.PleochroismNotes,
		TwinLaw:             d.TwinLaw,
		Phenomenon:          d.Phenomenon,

		Localities: d.Localities,
		Forms:      forms,
		Colors:     d.Colors,
		Treatments: d.Treatments,
		Inclusions: d.Inclusions,

		RIMin: d.RIMin, RIMax: d.RIMax,
		SGMin: d.SGMin, SGMax: d.SGMax,
		HeatTreatMin: d.HeatTreatMin,
		HeatTreatMax: d.HeatTreatMax,

		GrowthMethod:         d.GrowthMethod,
		NaturalCounterpartID: d.NaturalCounterpartID,
	}

	m.SG = d.SG
	m.RI = d.RI
	if d.Hardness != nil {
		m.HardnessText = *d.Hardness
		m.Hardness = types.ParseHardness(*d.Hardness)
	} else if d.HardnessMin != nil {
		m.HardnessText = trimFloat(*d.HardnessMin)
		m.Hardness = *d.HardnessMin
	}
	if m.RIMin == nil && d.RI != nil {
		if lo, hi, ok := types.ParseRange(*d.RI); ok {
			m.RIMin, m.RIMax = &lo, &hi
		}
	}
	if m.SGMin == nil && d.SG != nil {
		if lo, hi, ok := types.ParseRange(*d.SG); ok {
			m.SGMin, m.SGMax = &lo, &hi
		}
	}
	return m, nil
}

// mineral converts a flat document into a mineral row.
func (d *mineralDoc) mineral(id string) (*types.Mineral, error) {
	if d.CDL == "" {
		return nil, errors.New("missing cdl")
	}
	if !types.ValidPointGroup(d.PointGroup) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidPointGroup, d.PointGroup)
	}

	m := &types.Mineral{
		ID:           id,
		Name:         d.Name,
		CDL:          d.CDL,
		System:       strings.ToLower(d.System),
		PointGroup:   d.PointGroup,
		Chemistry:    d.Chemistry,
		HardnessText: d.Hardness,
		Hardness:     types.ParseHardness(d.Hardness),
		Description:  d.Description,
		Origin:       d.Origin,

		SG:                  d.SG,
		RI:                  d.RI,
		Birefringence:       d.Birefringence,
		OpticalCharacter:    d.OpticalCharacter,
		Dispersion:          d.Dispersion,
		Lustre:              d.Lustre,
		Cleavage:            d.Cleavage,
		Fracture:            d.Fracture,
		Pleochroism:         d.Pleochroism,
		PleochroismStrength: d.PleochroismStrength,
		PleochroismColor1:   d.PleochroismColor1,
		PleochroismColor2:   d.PleochroismColor2,
		PleochroismColor3:   d.PleochroismColor3,
		PleochroismNotes:    d.PleochroismNotes,
		TwinLaw:             d.TwinLaw,
		Phenomenon:          d.Phenomenon,
		Note:                d.Note,

		Localities: d.Localities,
		Forms:      d.Forms,
		Colors:     d.Colors,
		Treatments: d.Treatments,
		Inclusions: d.Inclusions,

		RIMin: d.RIMin, RIMax: d.RIMax,
		SGMin: d.SGMin, SGMax: d.SGMax,
		HeatTreatMin: d.HeatTreatMin,
		HeatTreatMax: d.HeatTreatMax,

		GrowthMethod:         d.GrowthMethod,
		NaturalCounterpartID: d.NaturalCounterpartID,
	}

	if m.RIMin == nil && d.RI != nil {
		if lo, hi, ok := types.ParseRange(*d.RI); ok {
			m.RIMin, m.RIMax = &lo, &hi
		}
	}
	if m.SGMin == nil && d.SG != nil {
		if lo, hi, ok := types.ParseRange(*d.SG); ok {
			m.SGMin, m.SGMax = &lo, &hi
		}
	}
	return m, nil
}

// valueOr dereferences a pointer with a fallback.
func valueOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}

// firstPtr returns the first non-nil pointer.
func firstPtr(ptrs ...*string) *string {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}

// titleSlug turns "octahedron" into "Octahedron" for composed names.
func titleSlug(slug string) string {
	if slug == "" {
		return slug
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}

// trimFloat renders a float without trailing zeros for hardness text.
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
