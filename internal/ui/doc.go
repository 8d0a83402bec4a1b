// Package ui hosts dropdown-enhanced select fields in a Bubble Tea program.
//
// Core abstractions:
//   - View: A screen with its own model, update, view (Elm-style)
//   - FormView: The form screen; owns the element tree and bridges Bubble Tea
//     messages to element events
//   - HitMap: Resolves mouse cells to elements, rebuilt on every render
//   - OverlayStack: Positioned layers composited over the base screen
//   - FocusManager: Tab traversal over focusable elements
//   - KeyMap: Bindings and key help via bubbles/help
package ui
