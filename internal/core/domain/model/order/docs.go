// Package order contains the Order aggregate root, its line items, and the
// status state machine that governs the ordering workflow.
//
// The aggregate can only be created through NewOrder (new orders) or
// RestoreOrder (reconstruction from persistence), and only mutated through the
// named transition methods Pay, Prepare, Ship, Deliver, Cancel and AddItem.
// Every transition is guarded by the Status value object, which either returns
// the next status or an InvalidTransitionError naming the attempted operation
// and the status that forbade it.
package order
