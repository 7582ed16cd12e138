// Package presets provides read-only dict-like views over the mineral
// reference database. The views are backed by live Store queries, not a
// snapshot: keys appear and disappear with the underlying data.
package presets

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

// ErrKeyNotFound reports a lookup of a key the view does not hold.
var ErrKeyNotFound = errors.New("key not found")

// Presets is a dict-like view keyed by preset id.
type Presets struct {
	store types.Store
}

// Categories is a dict-like view keyed by category name, each value the
// sorted id list of that category.
type Categories struct {
	store types.Store
}

// New constructs the preset and category views over one store.
func New(store types.Store) (*Presets, *Categories) {
	return &Presets{store: store}, &Categories{store: store}
}

// Item is one key/value pair of the preset view.
type Item struct {
	Key   string
	Value map[string]any
}

// Get returns the preset projection for an id. Unknown ids return
// ErrKeyNotFound wrapping the id.
func (p *Presets) Get(id string) (map[string]any, error) {
	preset, err := p.store.GetPreset(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, id)
		}
		return nil, err
	}
	return preset, nil
}

// GetDefault returns the preset for an id, or def when the id is unknown.
func (p *Presets) GetDefault(id string, def map[string]any) map[string]any {
	preset, err := p.Get(id)
	if err != nil {
		return def
	}
	return preset
}

// Contains reports whether the view holds an id.
func (p *Presets) Contains(id string) bool {
	_, err := p.store.GetPreset(id)
	return err == nil
}

// Len returns the number of presets via the count-only query.
func (p *Presets) Len() int {
	count, err := p.store.CountPresets()
	if err != nil {
		return 0
	}
	return count
}

// Keys returns every preset id, sorted.
func (p *Presets) Keys() []string {
	ids, err := p.store.ListPresets("")
	if err != nil {
		return []string{}
	}
	return ids
}

// Values returns every preset projection in key order.
func (p *Presets) Values() []map[string]any {
	keys := p.Keys()
	values := make([]map[string]any, 0, len(keys))
	for _, id := range keys {
		if preset, err := p.store.GetPreset(id); err == nil {
			values = append(values, preset)
		}
	}
	return values
}

// Items returns every key/value pair in key order.
func (p *Presets) Items() []Item {
	keys := p.Keys()
	items := make([]Item, 0, len(keys))
	for _, id := range keys {
		if preset, err := p.store.GetPreset(id); err == nil {
			items = append(items, Item{Key: id, Value: preset})
		}
	}
	return items
}

// All returns an iterator over every key/value pair in key order, for use
// with range-over-func.
func (p *Presets) All() iter.Seq2[string, map[string]any] {
	return func(yield func(string, map[string]any) bool) {
		for _, id := range p.Keys() {
			preset, err := p.store.GetPreset(id)
			if err != nil {
				continue
			}
			if !yield(id, preset) {
				return
			}
		}
	}
}

// Get returns the sorted preset ids of a category. A category resolving to
// nothing returns ErrKeyNotFound wrapping the name.
func (c *Categories) Get(category string) ([]string, error) {
	ids, err := c.store.ListPresets(category)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, category)
	}
	return ids, nil
}

// GetDefault returns the ids of a category, or def when the category
// resolves to nothing.
func (c *Categories) GetDefault(category string, def []string) []string {
	ids, err := c.Get(category)
	if err != nil {
		return def
	}
	return ids
}

// Contains reports whether the view holds a category, matched
// case-insensitively.
func (c *Categories) Contains(category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, name := range c.Keys() {
		if strings.ToLower(name) == category {
			return true
		}
	}
	return false
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	return len(c.Keys())
}

// Keys returns every category name, sorted.
func (c *Categories) Keys() []string {
	names, err := c.store.ListPresetCategories()
	if err != nil {
		return []string{}
	}
	return names
}
