package display

import (
	"sort"
	"strings"
)

// infoGroups maps profile names to ordered property key lists. The fga
// profile follows the Gem-A curriculum display order.
var infoGroups = map[string][]string{
	"basic":       {"name", "chemistry", "system", "hardness"},
	"physical":    {"sg", "cleavage", "fracture", "lustre"},
	"optical":     {"ri", "birefringence", "optical_character", "dispersion", "pleochroism"},
	"gemological": {"colors", "treatments", "localities", "inclusions"},
	"crystal":     {"point_group", "forms", "description"},
	"full": {
		"name", "chemistry", "system", "hardness",
		"sg", "ri", "optical_character", "cleavage",
	},
	"fga": {
		"name", "ri", "sg", "hardness",
		"optical_character", "birefringence", "cleavage", "pleochroism",
	},
	"classification": {"category", "mineral_group", "origin"},
	"synthetic": {
		"name", "origin", "growth_method", "natural_counterpart_id",
		"manufacturer", "year_first_produced", "diagnostic_synthetic_features",
	},
}

// Groups returns the named property profiles, sorted.
func Groups() []string {
	names := make([]string, 0, len(infoGroups))
	for name := range infoGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// profileKeys resolves a profile to its ordered key list. A string that is
// not a named profile is treated as a comma-separated key list.
func profileKeys(profile string) []string {
	if keys, ok := infoGroups[profile]; ok {
		out := make([]string, len(keys))
		copy(out, keys)
		return out
	}
	parts := strings.Split(profile, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
