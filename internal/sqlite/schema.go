// This file holds the DDL for the mineral reference database. Every
// statement uses IF NOT EXISTS so reopening an existing file is clean.
package sqlite

// Schema DDL for all tables.
const (
	createMinerals = `CREATE TABLE IF NOT EXISTS minerals (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    cdl TEXT NOT NULL,
    system TEXT NOT NULL,
    point_group TEXT NOT NULL,
    chemistry TEXT NOT NULL,
    hardness TEXT,
    description TEXT,
    origin TEXT NOT NULL DEFAULT 'natural',
    sg TEXT,
    ri TEXT,
    birefringence REAL,
    optical_character TEXT,
    dispersion REAL,
    lustre TEXT,
    cleavage TEXT,
    fracture TEXT,
    pleochroism TEXT,
    pleochroism_strength TEXT,
    pleochroism_color1 TEXT,
    pleochroism_color2 TEXT,
    pleochroism_color3 TEXT,
    pleochroism_notes TEXT,
    twin_law TEXT,
    phenomenon TEXT,
    note TEXT,
    localities_json TEXT,
    forms_json TEXT,
    colors_json TEXT,
    treatments_json TEXT,
    inclusions_json TEXT,
    ri_min REAL,
    ri_max REAL,
    sg_min REAL,
    sg_max REAL,
    heat_treatment_temp_min REAL,
    heat_treatment_temp_max REAL,
    growth_method TEXT,
    natural_counterpart_id TEXT
);`

	createMineralModels = `CREATE TABLE IF NOT EXISTS mineral_models (
    mineral_id TEXT PRIMARY KEY,
    svg TEXT,
    stl BLOB,
    gltf TEXT,
    generated_at TEXT,
    FOREIGN KEY (mineral_id) REFERENCES minerals(id)
);`

	createFamilies = `CREATE TABLE IF NOT EXISTS families (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    crystal_system TEXT NOT NULL,
    origin TEXT NOT NULL DEFAULT 'natural',
    point_group TEXT,
    chemistry TEXT,
    category TEXT,
    mineral_group TEXT,
    hardness_min REAL,
    hardness_max REAL,
    sg_min REAL,
    sg_max REAL,
    ri_min REAL,
    ri_max REAL,
    birefringence REAL,
    dispersion REAL,
    optical_character TEXT,
    pleochroism TEXT,
    pleochroism_strength TEXT,
    pleochroism_color1 TEXT,
    pleochroism_color2 TEXT,
    pleochroism_color3 TEXT,
    pleochroism_notes TEXT,
    lustre TEXT,
    cleavage TEXT,
    fracture TEXT,
    description TEXT,
    notes TEXT,
    diagnostic_features TEXT,
    common_inclusions TEXT,
    localities_json TEXT,
    colors_json TEXT,
    treatments_json TEXT,
    inclusions_json TEXT,
    forms_json TEXT,
    target_minerals_json TEXT,
    heat_treatment_temp_min REAL,
    heat_treatment_temp_max REAL,
    twin_law TEXT,
    phenomenon TEXT,
    fluorescence TEXT,
    growth_method TEXT,
    natural_counterpart_id TEXT,
    manufacturer TEXT,
    year_first_produced INTEGER,
    diagnostic_synthetic_features TEXT
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    name TEXT PRIMARY KEY,
    presets_json TEXT NOT NULL
);`

	createShapeFactors = `CREATE TABLE IF NOT EXISTS shape_factors (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    factor REAL NOT NULL,
    description TEXT
);`

	createVolumeFactors = `CREATE TABLE IF NOT EXISTS volume_factors (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    factor REAL NOT NULL
);`

	createThresholds = `CREATE TABLE IF NOT EXISTS thresholds (
    category TEXT NOT NULL,
    level TEXT NOT NULL,
    min_value REAL NOT NULL,
    max_value REAL,
    description TEXT,
    PRIMARY KEY (category, level)
);`

	createDatabaseInfo = `CREATE TABLE IF NOT EXISTS database_info (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Full-text search index over the searchable mineral columns, kept in sync
// with the content table by triggers.
const (
	createMineralsFTS = `CREATE VIRTUAL TABLE IF NOT EXISTS minerals_fts USING fts5(
    id, name, chemistry, description, localities_json,
    content='minerals',
    content_rowid='rowid'
);`

	createFTSInsertTrigger = `CREATE TRIGGER IF NOT EXISTS minerals_ai AFTER INSERT ON minerals BEGIN
    INSERT INTO minerals_fts(rowid, id, name, chemistry, description, localities_json)
    VALUES (new.rowid, new.id, new.name, new.chemistry, new.description, new.localities_json);
END;`

	createFTSDeleteTrigger = `CREATE TRIGGER IF NOT EXISTS minerals_ad AFTER DELETE ON minerals BEGIN
    INSERT INTO minerals_fts(minerals_fts, rowid, id, name, chemistry, description, localities_json)
    VALUES ('delete', old.rowid, old.id, old.name, old.chemistry, old.description, old.localities_json);
END;`

	createFTSUpdateTrigger = `CREATE TRIGGER IF NOT EXISTS minerals_au AFTER UPDATE ON minerals BEGIN
    INSERT INTO minerals_fts(minerals_fts, rowid, id, name, chemistry, description, localities_json)
    VALUES ('delete', old.rowid, old.id, old.name, old.chemistry, old.description, old.localities_json);
    INSERT INTO minerals_fts(rowid, id, name, chemistry, description, localities_json)
    VALUES (new.rowid, new.id, new.name, new.chemistry, new.description, new.localities_json);
END;`
)

// Index DDL for common queries.
const (
	idxMineralsSystem  = `CREATE INDEX IF NOT EXISTS idx_minerals_system ON minerals(system);`
	idxMineralsTwinLaw = `CREATE INDEX IF NOT EXISTS idx_minerals_twin_law ON minerals(twin_law);`
	idxMineralsOrigin  = `CREATE INDEX IF NOT EXISTS idx_minerals_origin ON minerals(origin);`
	idxFamiliesOrigin  = `CREATE INDEX IF NOT EXISTS idx_families_origin ON families(origin);`
	idxFamiliesGrowth  = `CREATE INDEX IF NOT EXISTS idx_families_growth ON families(growth_method);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createMinerals,
	createMineralModels,
	createFamilies,
	createCategories,
	createShapeFactors,
	createVolumeFactors,
	createThresholds,
	createDatabaseInfo,
	createMineralsFTS,
	createFTSInsertTrigger,
	createFTSDeleteTrigger,
	createFTSUpdateTrigger,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxMineralsSystem,
	idxMineralsTwinLaw,
	idxMineralsOrigin,
	idxFamiliesOrigin,
	idxFamiliesGrowth,
}
