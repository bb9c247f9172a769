// Package ui provides the Bubble Tea terminal interface for Christoffel's menu.
//
// # Screens
//
// The active screen comes from flow.Flow:
//
//   - Welcome: greeting and an Explore Menu button (enter)
//   - List: one card per dish in a scrolling viewport, with name,
//     description, the "{category}. R{price} ({intensity})" meta line,
//     ingredients, and the image URI when there is one
//   - Add form: name, description, a category selector, price, image URL
//     and comma separated ingredients
//
// The header shows the restaurant name and tagline from config along with
// the item count. The command bar under it lists the keys for the screen.
//
// # Modals
//
// Modals implement the Modal interface and take every key while open:
//
//   - confirmModal: "Remove Item" yes/cancel; its answer comes back to the
//     model as a removalDecisionMsg and resolves the flow's pending removal
//   - noticeModal: blocking validation message, dismissed by any key
//   - activityModal: tail of the activity log (L)
//
// # Key Routing
//
// ctrl+c always quits. Otherwise keys go to the help overlay, then an
// open modal, then the add form, then global bindings, then the screen.
// The form sees keys before the globals so letters like q and T can be
// typed into fields.
//
// # Preferences
//
// Theme (T) and compact cards (c) are written back to the prefs file as
// soon as they change.
package ui
