// SPDX-License-Identifier: MIT
// Package: terra/biome
//
// source.go — the nested interchange shape, decoded and encoded through
// yaml.v3 nodes so category and biome order follow the document.
//
// Contract:
//   • JSON is a YAML subset; ParseSource accepts either.
//   • Required per record: color, cost, habitability, icons, min_temp,
//     max_temp, min_moisture, max_moisture. "options" is optional; any other
//     key is kept in Definition.Extra.
//   • Every failure is a *ParseError naming category, biome and field.

package biome

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Source field keys.
const (
	keyColor        = "color"
	keyCost         = "cost"
	keyHabitability = "habitability"
	keyIcons        = "icons"
	keyMinTemp      = "min_temp"
	keyMaxTemp      = "max_temp"
	keyMinMoisture  = "min_moisture"
	keyMaxMoisture  = "max_moisture"
	keyOptions      = "options"
)

var requiredKeys = []string{
	keyColor, keyCost, keyHabitability, keyIcons,
	keyMinTemp, keyMaxTemp, keyMinMoisture, keyMaxMoisture,
}

// Source is an ordered list of categories.
type Source struct {
	Categories []Category
}

// Category groups definitions under one top-level key.
type Category struct {
	Name   string
	Biomes []Definition
}

// Definition is one biome record as it appears in a source.
type Definition struct {
	Name         string
	Color        string
	Cost         int
	Habitability int
	Icons        map[string]int
	MinTemp      float64
	MaxTemp      float64
	MinMoisture  float64
	MaxMoisture  float64
	Options      Options        // nil when the record has no "options"
	Extra        map[string]any // unrecognized keys
}

// Len returns the number of definitions across all categories.
func (s *Source) Len() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Biomes)
	}
	return n
}

// ParseSource decodes JSON or YAML text into a Source.
// Empty input yields an empty Source.
func ParseSource(data []byte) (*Source, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	src := &Source{}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return src, nil
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		root = doc.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Line: root.Line, Err: fmt.Errorf("document root: %w", ErrWrongKind)}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		cat := Category{Name: key.Value}
		if val.Kind != yaml.MappingNode {
			return nil, &ParseError{Category: cat.Name, Line: val.Line, Err: fmt.Errorf("category: %w", ErrWrongKind)}
		}
		for j := 0; j+1 < len(val.Content); j += 2 {
			def, err := decodeDefinition(cat.Name, val.Content[j], val.Content[j+1])
			if err != nil {
				return nil, err
			}
			cat.Biomes = append(cat.Biomes, def)
		}
		src.Categories = append(src.Categories, cat)
	}

	return src, nil
}

// decodeDefinition reads one biome record.
func decodeDefinition(category string, key, val *yaml.Node) (Definition, error) {
	def := Definition{Name: key.Value}
	fail := func(field string, n *yaml.Node, err error) (Definition, error) {
		return Definition{}, &ParseError{Category: category, Biome: def.Name, Field: field, Line: n.Line, Err: err}
	}
	if val.Kind != yaml.MappingNode {
		return fail("", val, fmt.Errorf("record: %w", ErrWrongKind))
	}

	seen := make(map[string]bool, len(requiredKeys))
	for i := 0; i+1 < len(val.Content); i += 2 {
		k, v := val.Content[i].Value, val.Content[i+1]
		var err error
		switch k {
		case keyColor:
			err = v.Decode(&def.Color)
		case keyCost:
			err = v.Decode(&def.Cost)
		case keyHabitability:
			err = v.Decode(&def.Habitability)
		case keyIcons:
			err = v.Decode(&def.Icons)
		case keyMinTemp:
			err = v.Decode(&def.MinTemp)
		case keyMaxTemp:
			err = v.Decode(&def.MaxTemp)
		case keyMinMoisture:
			err = v.Decode(&def.MinMoisture)
		case keyMaxMoisture:
			err = v.Decode(&def.MaxMoisture)
		case keyOptions:
			if v.Tag == "!!null" {
				continue
			}
			if v.Kind != yaml.MappingNode {
				return fail(k, v, ErrWrongKind)
			}
			err = v.Decode(&def.Options)
		default:
			var x any
			if err = v.Decode(&x); err == nil {
				if def.Extra == nil {
					def.Extra = make(map[string]any)
				}
				def.Extra[k] = x
			}
		}
		if err != nil {
			return fail(k, v, err)
		}
		seen[k] = true
	}

	for _, k := range requiredKeys {
		if !seen[k] {
			return fail(k, val, ErrMissingField)
		}
	}

	return def, nil
}

// Encode writes s back in the interchange shape, preserving order.
// Absent options are omitted; Extra keys follow in sorted order.
func (s *Source) Encode() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, cat := range s.Categories {
		cn := &yaml.Node{Kind: yaml.MappingNode}
		for _, d := range cat.Biomes {
			dn, err := d.node()
			if err != nil {
				return nil, fmt.Errorf("Encode(%s/%s): %w", cat.Name, d.Name, err)
			}
			cn.Content = append(cn.Content, strNode(d.Name), dn)
		}
		root.Content = append(root.Content, strNode(cat.Name), cn)
	}

	return yaml.Marshal(root)
}

func (d Definition) node() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, v any) error {
		var vn yaml.Node
		if err := vn.Encode(v); err != nil {
			return err
		}
		n.Content = append(n.Content, strNode(key), &vn)
		return nil
	}

	pairs := []struct {
		k string
		v any
	}{
		{keyColor, d.Color},
		{keyCost, d.Cost},
		{keyHabitability, d.Habitability},
		{keyIcons, icons(d.Icons)},
		{keyMinTemp, d.MinTemp},
		{keyMaxTemp, d.MaxTemp},
		{keyMinMoisture, d.MinMoisture},
		{keyMaxMoisture, d.MaxMoisture},
	}
	for _, p := range pairs {
		if err := add(p.k, p.v); err != nil {
			return nil, err
		}
	}
	if d.Options.HasOptions() {
		if err := add(keyOptions, map[string]any(d.Options)); err != nil {
			return nil, err
		}
	}
	extra := make([]string, 0, len(d.Extra))
	for k := range d.Extra {
		extra = append(extra, k)
	}
	slices.Sort(extra)
	for _, k := range extra {
		if err := add(k, d.Extra[k]); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// icons keeps an empty mapping from encoding as null.
func icons(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// toBiome converts d into a Biome of the category's type.
func (d Definition) toBiome(category string, id int) Biome {
	opts := d.Options
	if opts == nil {
		opts = noOptions()
	}
	return Biome{
		ID:           id,
		Name:         d.Name,
		Type:         TypeOf(category),
		Category:     category,
		Color:        d.Color,
		Cost:         d.Cost,
		Habitability: d.Habitability,
		Temp:         NewRange(d.MinTemp, d.MaxTemp),
		Moisture:     NewRange(d.MinMoisture, d.MaxMoisture),
		Icons:        d.Icons,
		Options:      opts,
		Extra:        d.Extra,
	}.clone()
}

// definitionOf is the inverse of toBiome.
func definitionOf(b Biome) Definition {
	b = b.clone()
	opts := b.Options
	if !opts.HasOptions() {
		opts = nil
	}
	return Definition{
		Name:         b.Name,
		Color:        b.Color,
		Cost:         b.Cost,
		Habitability: b.Habitability,
		Icons:        b.Icons,
		MinTemp:      b.Temp.Min(),
		MaxTemp:      b.Temp.Max(),
		MinMoisture:  b.Moisture.Min(),
		MaxMoisture:  b.Moisture.Max(),
		Options:      opts,
		Extra:        b.Extra,
	}
}
