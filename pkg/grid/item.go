package grid

import (
	"slices"

	"github.com/felixfbecker/resizegrid/pkg/errors"
)

// ItemConfig describes one grid item.
type ItemConfig struct {
	// Key is the stable identity of the item, unique within a Layout.
	Key string `json:"key" toml:"key"`

	// ColumnSpan is the number of column tracks the item occupies (>= 1).
	ColumnSpan int `json:"column_span" toml:"column_span"`

	// RowSpan is the number of row tracks the item occupies (>= 1).
	RowSpan int `json:"row_span" toml:"row_span"`
}

// Validate checks the key and both spans.
func (c ItemConfig) Validate() error {
	if err := errors.ValidateKey(c.Key); err != nil {
		return err
	}
	if err := errors.ValidateSpan("column", c.ColumnSpan); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "item %q", c.Key)
	}
	if err := errors.ValidateSpan("row", c.RowSpan); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "item %q", c.Key)
	}
	return nil
}

// WithSpans returns a copy of c with the given spans.
func (c ItemConfig) WithSpans(columnSpan, rowSpan int) ItemConfig {
	c.ColumnSpan = columnSpan
	c.RowSpan = rowSpan
	return c
}

// Layout is an ordered sequence of item configs. Its order determines the
// visual position of each item.
type Layout []ItemConfig

// Validate checks every item and rejects duplicate keys.
func (l Layout) Validate() error {
	seen := make(map[string]int, len(l))
	for i, item := range l {
		if err := item.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLayout, err, "layout entry %d", i)
		}
		if prev, dup := seen[item.Key]; dup {
			return errors.New(errors.ErrCodeInvalidLayout, "duplicate key %q at entries %d and %d", item.Key, prev, i)
		}
		seen[item.Key] = i
	}
	return nil
}

// Index returns the position of the item with the given key, or -1.
func (l Layout) Index(key string) int {
	return slices.IndexFunc(l, func(item ItemConfig) bool { return item.Key == key })
}

// Get returns the item with the given key.
func (l Layout) Get(key string) (ItemConfig, bool) {
	if i := l.Index(key); i >= 0 {
		return l[i], true
	}
	return ItemConfig{}, false
}

// Keys returns the item keys in layout order.
func (l Layout) Keys() []string {
	keys := make([]string, len(l))
	for i, item := range l {
		keys[i] = item.Key
	}
	return keys
}

// Clone returns a shallow copy that shares no backing array with l.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// Equal reports whether both layouts hold the same items in the same order.
func (l Layout) Equal(other Layout) bool {
	return slices.Equal(l, other)
}

// WithItem returns a new layout made of the prefix before index, item, and
// the suffix after index. An out-of-range index returns a clone.
func (l Layout) WithItem(index int, item ItemConfig) Layout {
	if index < 0 || index >= len(l) {
		return l.Clone()
	}
	out := make(Layout, 0, len(l))
	out = append(out, l[:index]...)
	out = append(out, item)
	out = append(out, l[index+1:]...)
	return out
}

// MoveBefore returns a new layout in which the item with the given key sits
// immediately before the entry that currently occupies targetIndex.
//
// The result is the entries before targetIndex without key, the keyed item,
// then the entries from targetIndex on without key. targetIndex is clamped to
// [0, len(l)]; moving onto len(l) places the item last. An unknown key
// returns a clone.
func (l Layout) MoveBefore(key string, targetIndex int) Layout {
	moved, ok := l.Get(key)
	if !ok {
		return l.Clone()
	}
	targetIndex = max(0, min(targetIndex, len(l)))

	notMoved := func(item ItemConfig) bool { return item.Key != key }
	out := make(Layout, 0, len(l))
	for _, item := range l[:targetIndex] {
		if notMoved(item) {
			out = append(out, item)
		}
	}
	out = append(out, moved)
	for _, item := range l[targetIndex:] {
		if notMoved(item) {
			out = append(out, item)
		}
	}
	return out
}

// Remove returns a new layout without the item with the given key.
func (l Layout) Remove(key string) Layout {
	return slices.DeleteFunc(l.Clone(), func(item ItemConfig) bool { return item.Key == key })
}

// Append returns a new layout with item added last.
func (l Layout) Append(item ItemConfig) Layout {
	return append(l.Clone(), item)
}
