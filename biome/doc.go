// Package biome classifies climate into named biomes.
//
// What:
//
//   - Biome is an immutable definition with inclusive temperature and
//     moisture ranges, cost, habitability, icon weights and an option bag.
//   - Matrix is a rows×cols lookup table: rows index normalized moisture,
//     columns normalized temperature. Each insertion widens the global
//     ranges and paints its index rectangle, overwriting earlier occupants.
//   - Catalog owns the Basic and Special definitions plus one shared Matrix
//     and resolves names, ids and climate points to Biomes.
//   - ParseSource / Source.Encode read and write the interchange shape:
//
//     {"<category>": {"<biome name>": {"color": ..., "cost": ...,
//     "habitability": ..., "icons": {...}, "min_temp": ..., "max_temp": ...,
//     "min_moisture": ..., "max_moisture": ..., "options": {...}}}}
//
//     The category "Special" selects Special; every other category is Basic.
//
// Ordering policy:
//
//   - Matrix insertion order is significant: overlapping ranges resolve
//     last-inserted-wins, and because normalization uses the live global
//     ranges, a later insertion can shift how earlier rectangles relate to
//     new queries. All insertions should finish before lookups start.
//   - Source keys are read in document order, never map order.
//
// Errors:
//
//   - ErrDivisionUndefined: normalization over a zero-width or empty range.
//   - ErrNoBiome: lookup hit an empty matrix cell or fell outside the ranges.
//   - ErrDuplicateName / ErrDuplicateID: catalog already holds the key.
//   - ErrBiomeNotFound: name or id lookup miss.
//   - ErrInvalidBiome: empty name or malformed ranges.
//   - ErrParse (*ParseError): malformed source; names category, biome and field.
package biome
