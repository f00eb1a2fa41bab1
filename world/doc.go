// Package world orchestrates one generation run.
//
// A World owns a grid, the three climate maps (height, temperature,
// moisture), a noise registry, a biome catalog and, once classified, a
// pack. Generate runs the fixed order
//
//	grid → height → temperature → moisture → classify → pack
//
// and each stage is also callable on its own. A World is not safe for
// concurrent mutation; derived snapshots (maps, pack) are.
package world
