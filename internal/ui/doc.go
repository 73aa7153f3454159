// Package ui implements the edudesk terminal UI with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - Overlay: modal views (record form, delete confirmation) with a dismiss key
//   - AppModel: the education page controller; owns the record list mirror,
//     the in-flight mutation flag, and the status banner
//
// State changes only in response to messages: remote calls run as commands
// and report back as typed messages, so the record list is mutated only
// after the server has confirmed the operation.
package ui
