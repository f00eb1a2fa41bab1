// SPDX-License-Identifier: MIT
// Package: terra/biome
//
// defaults.go — the embedded default biome source.

package biome

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.json
var defaultSource []byte

// DefaultWaterBiome names the default Special biome for water cells.
const DefaultWaterBiome = "Marine"

// DefaultSource returns a copy of the embedded default source text.
func DefaultSource() []byte { return append([]byte(nil), defaultSource...) }

// Defaults returns a catalog loaded from the embedded default source.
func Defaults(opts ...CatalogOption) (*Catalog, error) {
	c := NewCatalog(opts...)
	if err := c.LoadBytes(defaultSource); err != nil {
		return nil, fmt.Errorf("Defaults: %w", err)
	}
	return c, nil
}
