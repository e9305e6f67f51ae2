// Package machine implements the page state machine of the vault UI.
//
// A [Machine] consumes one event at a time and is the only writer of the
// page state; there are no locks. Every vault mutation happens inside
// [Machine.Apply] as the effect of a transition. Renderers read immutable
// [Snapshot] values.
package machine
