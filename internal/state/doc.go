// Package state holds the in-memory menu shared by the flow and the UI.
//
// # Overview
//
// Store is the single owner of the ordered dish sequence. It is seeded once
// with menu.DefaultDishes and only ever changes through three operations:
//
//   - Append(d): add a dish at the end
//   - RemoveAt(i): drop the dish at position i of the current sequence
//   - Remove(id): drop the dish with a given ID
//
// Each mutation builds a new slice, swaps it in, bumps Version and returns
// a copy of the result. Nothing is persisted; the menu is gone when the
// process exits.
//
// # Concurrency Model
//
// The UI is a single Bubble Tea event loop, so mutations never race in
// practice. The Store still uses a readers-writer lock:
//
//   - Append/RemoveAt/Remove: write lock
//   - Snapshot: read lock
//
// # Defensive Copying
//
// Snapshot and every mutation return deep copies (including each dish's
// ingredient slice). Callers can edit what they get back without touching
// the store.
//
// # Positions and Identity
//
// Positions shift on every removal, so an index is only meaningful against
// the snapshot it was read from. RemoveAt ignores indexes outside the
// current sequence. Code that holds on to a dish across user interaction
// (the removal confirmation, for one) should keep its ID and call Remove.
//
// # Logging
//
// Mutations are logged through the zap logger passed to NewStore. A nil
// logger, or the zero value Store, logs nothing.
//
// # Usage Example
//
//	store := state.NewStore(menu.DefaultDishes(), logger)
//	dishes := store.Append(dish)
//	dishes = store.RemoveAt(len(dishes) - 1)
//	snap := store.Snapshot()
package state
