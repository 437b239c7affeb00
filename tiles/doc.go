// Package tiles holds the tile catalog used by the placement search:
// a static table of movement directions per tile identifier, combined
// with the per-run cost and remaining inventory of every tile type.
//
// What:
//
//   - DefaultDirections lists the predefined tile identifiers and the
//     (ΔRow, ΔCol) offsets a path may take when leaving a cell that holds
//     that tile. Offset lists are ordered and may repeat an offset.
//   - Catalog binds input Specs (ID, Cost, Count) to a direction table and
//     tracks the remaining count of each type.
//
// Inventory discipline:
//
//   - CanPlace(id) reports whether at least one unit remains.
//   - Consume(id) takes one unit; it fails with ErrExhausted at zero.
//   - Restore(id) gives one unit back.
//
// The remaining count of a type never drops below zero.
//
// Errors:
//
//   - ErrUnknownTile: an identifier absent from the direction table.
//   - ErrDuplicateTile: the same identifier listed twice.
//   - ErrNegativeCost / ErrNegativeCount: invalid spec values.
//   - ErrExhausted: Consume on a type with nothing left.
//
// Unknown identifiers are rejected by NewCatalog. After construction,
// Cost and Directions on an unknown identifier panic: every identifier
// reaching them has already been validated.
package tiles
