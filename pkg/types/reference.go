package types

// ShapeFactor is a cut shape factor for carat weight estimation
// (weight = length x width x depth x SG x factor).
type ShapeFactor struct {
	ID          string  // lowercase slug (round, oval, ...)
	Name        string  // display name
	Factor      float64 // empirical shape constant
	Description string
}

// VolumeFactor is a volume shape factor for rough stone estimation.
type VolumeFactor struct {
	ID     string
	Name   string
	Factor float64
}

// Threshold is one classification band of a gemmological scale. A value
// belongs to the band when min <= value < max; a nil MaxValue leaves the band
// open-ended.
type Threshold struct {
	Category    string   // birefringence, dispersion, critical_angle
	Level       string   // band name (low, medium, high, ...)
	MinValue    float64  // inclusive lower bound
	MaxValue    *float64 // exclusive upper bound, nil for open-ended
	Description string
}

// IngestStats summarizes one YAML ingest run.
type IngestStats struct {
	Families    int // family documents loaded
	Expressions int // mineral rows written from family expressions
	Legacy      int // flat documents loaded
}
