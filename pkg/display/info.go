package display

// PresetSource is the single query InfoProperties needs; types.Store
// satisfies it.
type PresetSource interface {
	GetPreset(id string) (map[string]any, error)
}

// Property is one info-panel entry: a property key, its display label, and
// the raw value from the preset projection.
type Property struct {
	Key   string
	Label string
	Value any
}

// Format renders the property value per the FormatValue rules.
func (p Property) Format() string {
	return FormatValue(p.Key, p.Value)
}

// InfoProperties selects the profile's properties from one entry, in
// profile order, omitting properties absent on that record. Lookup errors
// from the source pass through, so an unknown id surfaces the store's
// not-found sentinel.
func InfoProperties(src PresetSource, id, profile string) ([]Property, error) {
	preset, err := src.GetPreset(id)
	if err != nil {
		return nil, err
	}

	keys := profileKeys(profile)
	props := make([]Property, 0, len(keys))
	for _, key := range keys {
		if value, ok := preset[key]; ok {
			props = append(props, Property{Key: key, Label: Label(key), Value: value})
		}
	}
	return props, nil
}
