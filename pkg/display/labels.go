package display

import "strings"

// propertyLabels maps property keys to their short display labels.
var propertyLabels = map[string]string{
	"name":                          "Name",
	"cdl":                           "CDL",
	"chemistry":                     "Formula",
	"system":                        "System",
	"hardness":                      "Hardness",
	"sg":                            "SG",
	"ri":                            "RI",
	"birefringence":                 "Biref.",
	"optical_character":             "Optical",
	"dispersion":                    "Dispersion",
	"pleochroism":                   "Pleochroism",
	"cleavage":                      "Cleavage",
	"fracture":                      "Fracture",
	"lustre":                        "Lustre",
	"colors":                        "Colors",
	"treatments":                    "Treatments",
	"localities":                    "Localities",
	"inclusions":                    "Inclusions",
	"point_group":                   "Point Group",
	"forms":                         "Forms",
	"description":                   "Habit",
	"ri_min":                        "RI Min",
	"ri_max":                        "RI Max",
	"sg_min":                        "SG Min",
	"sg_max":                        "SG Max",
	"heat_treatment_temp_min":       "Heat Treat Min (°C)",
	"heat_treatment_temp_max":       "Heat Treat Max (°C)",
	"origin":                        "Origin",
	"mineral_group":                 "Mineral Group",
	"growth_method":                 "Growth Method",
	"natural_counterpart_id":        "Natural Counterpart",
	"target_minerals":               "Target Minerals",
	"manufacturer":                  "Manufacturer",
	"year_first_produced":           "Year First Produced",
	"diagnostic_synthetic_features": "Diagnostic Features (Synthetic)",
}

// Label returns the display label for a property key. Keys without a curated
// label fall back to the title-cased key with underscores as spaces, so the
// lookup never fails.
func Label(key string) string {
	if label, ok := propertyLabels[key]; ok {
		return label
	}
	return titleCase(key)
}

// titleCase turns "optical_character" into "Optical Character". Property
// keys are ASCII column names.
func titleCase(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
