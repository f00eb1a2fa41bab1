// SPDX-License-Identifier: MIT
// Package: terra/biome
//
// catalog.go — the Basic and Special biome catalogs plus their shared Matrix.
//
// Contract:
//   • Names are unique across both catalogs; ids are unique.
//   • Add and Load either fully succeed or leave the catalog untouched.
//   • Only Basic biomes and Special biomes with options.climactic enter
//     the Matrix.
//   • Basic and Special list in insertion order.
//
// Concurrency:
//   • All methods are safe for concurrent use (sync.RWMutex).

package biome

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
)

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	rows, cols int
	log        *slog.Logger
}

// WithMatrixShape sets the classification matrix shape.
// Panics if rows < 1 or cols < 1.
func WithMatrixShape(rows, cols int) CatalogOption {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("biome: WithMatrixShape(%d,%d): shape must be at least 1x1", rows, cols))
	}
	return func(c *catalogConfig) { c.rows, c.cols = rows, cols }
}

// WithLogger sets the catalog logger; nil selects slog.Default().
func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *catalogConfig) { c.log = l }
}

// Catalog holds biome definitions and classifies climate points.
type Catalog struct {
	mu       sync.RWMutex
	cfg      catalogConfig
	byName   map[string]Biome
	byID     map[int]string
	basic    []string
	special  []string
	order    []string // every name, insertion order
	matrix   *Matrix
	temp     Range
	moisture Range
}

// NewCatalog returns an empty catalog with a DefaultRows×DefaultColumns matrix.
func NewCatalog(opts ...CatalogOption) *Catalog {
	cfg := catalogConfig{rows: DefaultRows, cols: DefaultColumns}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}
	m, _ := NewMatrix(cfg.rows, cfg.cols) // shape checked by WithMatrixShape

	return &Catalog{
		cfg:      cfg,
		byName:   make(map[string]Biome),
		byID:     make(map[int]string),
		matrix:   m,
		temp:     EmptyRange(),
		moisture: EmptyRange(),
	}
}

// Add inserts b.
//
// Stage 1 (Validate): b.Validate, ErrDuplicateName, ErrDuplicateID.
// Stage 2 (Classify): climactic biomes are painted into the Matrix; a
// matrix error aborts before any catalog state changes.
// Stage 3 (Commit): file under b.Type and widen the catalog ranges.
func (c *Catalog) Add(b Biome) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.addLocked(b); err != nil {
		return err
	}
	c.cfg.log.Debug("biome added", "name", b.Name, "id", b.ID, "type", string(b.Type))
	return nil
}

func (c *Catalog) addLocked(b Biome) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	if _, dup := c.byName[b.Name]; dup {
		return fmt.Errorf("Add(%q): %w", b.Name, ErrDuplicateName)
	}
	if other, dup := c.byID[b.ID]; dup {
		return fmt.Errorf("Add(%q): id %d held by %q: %w", b.Name, b.ID, other, ErrDuplicateID)
	}
	if b.Climactic() {
		if err := c.matrix.AddBiome(b.Name, b.Temp, b.Moisture); err != nil {
			return fmt.Errorf("Add: %w", err)
		}
	}

	b = b.clone()
	if b.Options == nil {
		b.Options = noOptions()
	}
	c.byName[b.Name] = b
	c.byID[b.ID] = b.Name
	c.order = append(c.order, b.Name)
	if b.Type == Special {
		c.special = append(c.special, b.Name)
	} else {
		c.basic = append(c.basic, b.Name)
	}
	c.temp = c.temp.Union(b.Temp)
	c.moisture = c.moisture.Union(b.Moisture)

	return nil
}

// Load adds every definition of src in document order. Ids are assigned as
// catalog size + 1 at the time of each insertion.
// The whole source is staged on a copy; on any error nothing is committed.
func (c *Catalog) Load(src *Source) error {
	if src == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	stage := c.cloneLocked()
	for _, cat := range src.Categories {
		for _, def := range cat.Biomes {
			b := def.toBiome(cat.Name, len(stage.byName)+1)
			if err := stage.addLocked(b); err != nil {
				return fmt.Errorf("Load(%s/%s): %w", cat.Name, def.Name, err)
			}
		}
	}

	added := len(stage.byName) - len(c.byName)
	c.byName, c.byID = stage.byName, stage.byID
	c.basic, c.special, c.order = stage.basic, stage.special, stage.order
	c.matrix, c.temp, c.moisture = stage.matrix, stage.temp, stage.moisture
	c.cfg.log.Info("biomes loaded",
		"added", added, "basic", len(c.basic), "special", len(c.special),
		"temp", c.temp.String(), "moisture", c.moisture.String())

	return nil
}

// LoadBytes parses data with ParseSource and loads it.
func (c *Catalog) LoadBytes(data []byte) error {
	src, err := ParseSource(data)
	if err != nil {
		return fmt.Errorf("LoadBytes: %w", err)
	}
	return c.Load(src)
}

// cloneLocked copies the catalog state; caller holds the lock.
func (c *Catalog) cloneLocked() *Catalog {
	out := &Catalog{
		cfg:      c.cfg,
		byName:   make(map[string]Biome, len(c.byName)),
		byID:     make(map[int]string, len(c.byID)),
		basic:    append([]string(nil), c.basic...),
		special:  append([]string(nil), c.special...),
		order:    append([]string(nil), c.order...),
		matrix:   c.matrix.Clone(),
		temp:     c.temp,
		moisture: c.moisture,
	}
	for k, v := range c.byName {
		out.byName[k] = v
	}
	for k, v := range c.byID {
		out.byID[k] = v
	}
	return out
}

// Lookup returns the biome called name. Returns ErrBiomeNotFound.
func (c *Catalog) Lookup(name string) (Biome, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.byName[name]
	if !ok {
		return Biome{}, fmt.Errorf("Lookup(%q): %w", name, ErrBiomeNotFound)
	}
	return b.clone(), nil
}

// ByID returns the biome with the given id. Returns ErrBiomeNotFound.
func (c *Catalog) ByID(id int) (Biome, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.byID[id]
	if !ok {
		return Biome{}, fmt.Errorf("ByID(%d): %w", id, ErrBiomeNotFound)
	}
	return c.byName[name].clone(), nil
}

// GetBiome resolves (temp, moisture) through the Matrix without clamping.
func (c *Catalog) GetBiome(temp, moisture float64) (Biome, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolveLocked(temp, moisture)
}

// Classify pins (temp, moisture) into the matrix ranges, then resolves it.
// Out-of-range climate maps to the nearest edge cell.
func (c *Catalog) Classify(temp, moisture float64) (Biome, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, m := c.matrix.TempRange(), c.matrix.MoistureRange()
	if !t.IsEmpty() && !m.IsEmpty() {
		temp, moisture = t.Clamp(temp), m.Clamp(moisture)
	}
	return c.resolveLocked(temp, moisture)
}

func (c *Catalog) resolveLocked(temp, moisture float64) (Biome, error) {
	name, err := c.matrix.GetBiome(temp, moisture)
	if err != nil {
		return Biome{}, err
	}
	return c.byName[name].clone(), nil
}

// Len returns the number of biomes in both catalogs.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}

// Names returns every biome name in insertion order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}

// Basic returns the Basic biomes in insertion order.
func (c *Catalog) Basic() []Biome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collectLocked(c.basic)
}

// Special returns the Special biomes in insertion order.
func (c *Catalog) Special() []Biome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collectLocked(c.special)
}

func (c *Catalog) collectLocked(names []string) []Biome {
	out := make([]Biome, 0, len(names))
	for _, n := range names {
		out = append(out, c.byName[n].clone())
	}
	return out
}

// Matrix returns a copy of the classification matrix.
func (c *Catalog) Matrix() *Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matrix.Clone()
}

// TempRange returns the union of all biome temperature ranges.
func (c *Catalog) TempRange() Range {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.temp
}

// MoistureRange returns the union of all biome moisture ranges.
func (c *Catalog) MoistureRange() Range {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.moisture
}

// IndexString renders the matrix with biome ids instead of names.
func (c *Catalog) IndexString() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matrix.render(func(name string) string {
		return strconv.Itoa(c.byName[name].ID)
	})
}

// Export rebuilds a Source from the catalog. Biomes are grouped by category
// in order of first appearance; biomes added without a category go under
// "Basic" or SpecialCategory by type.
func (c *Catalog) Export() *Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	src := &Source{}
	pos := make(map[string]int)
	for _, name := range c.order {
		b := c.byName[name]
		cat := b.Category
		if cat == "" {
			cat = "Basic"
			if b.Type == Special {
				cat = SpecialCategory
			}
		}
		i, ok := pos[cat]
		if !ok {
			i = len(src.Categories)
			pos[cat] = i
			src.Categories = append(src.Categories, Category{Name: cat})
		}
		src.Categories[i].Biomes = append(src.Categories[i].Biomes, definitionOf(b))
	}

	return src
}
