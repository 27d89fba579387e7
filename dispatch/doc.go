// Package dispatch implements the action execution protocol that
// connects a parsed card to the host's action callbacks.
//
// The protocol moves an action through Idle, Preparing, Prepared, and
// Dispatched. Preparation gathers every input reachable from the card
// root (not just the action's local siblings) and binds their current
// values into the action payload: Submit actions merge input values
// into a deep copy of their data, Http actions resolve {{id}}
// placeholders in url, body, and headers. The prepared action is handed
// to the host callback exactly once per trigger.
//
// ShowCard actions skip preparation entirely and fire the OnShowCard
// callback; any actions inside the revealed card prepare against the
// full input set when they fire in turn.
package dispatch
