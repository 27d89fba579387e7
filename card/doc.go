// Package card implements the Adaptive Cards object model: the typed
// element and action hierarchy, registry-driven JSON parsing, and
// accumulating validation.
//
// # Overview
//
// A card is a tree of elements (text, images, containers, inputs) and
// actions (open URL, submit, HTTP, show card) parsed from a declarative
// JSON document. Every node carries a "type" discriminator resolved
// through a registry of factories, which is also the extensibility seam:
// hosts register custom types and can override the standard ones.
//
// The pipeline is parse, then validate, then render:
//
//	result, err := card.Parse(data)
//	if err != nil {
//	    // malformed JSON syntax - the only hard failure
//	}
//	errs := card.Validate(result.Card, hostconfig.Default())
//
// Parsing is fault-isolated: a node with an unknown or broken type is
// dropped with a warning and its siblings parse normally. Validation is
// advisory: it returns the complete diagnostic list and never blocks
// rendering; the host decides what to do with it.
//
// # Tree invariants
//
// Elements and actions attach to exactly one parent, at parse time, and
// never move. The tree's topology is immutable after parsing; only input
// values change, pushed in by the host as the rendered controls change.
// Attaching an already-parented node fails with a fatal error because it
// signals a bug in collaborator code, not bad input.
//
// # Concurrency
//
// The object model is single-threaded and synchronous: parsing,
// validation, and preparation are pure in-memory computations with no
// I/O and no locks. Only the registries are mutex-guarded, because hosts
// may register types from multiple call sites.
package card
