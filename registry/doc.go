// Package registry provides the generic type registry used for polymorphic
// construction of card elements and actions.
//
// # Overview
//
// A Registry[T] maps a string type tag (the "type" discriminator on every
// card JSON node) to a factory producing a blank instance of T. The parser
// resolves each node's tag through a registry, constructs the typed instance,
// and fills it from JSON. The registry is the single extensibility seam:
// hosts register custom element and action types here, and can override the
// factories for standard types (last registration wins).
//
// # Registration Pattern
//
// CardKit uses EXPLICIT registration rather than init() self-registration.
// This provides:
//   - Testability: isolated registries per test
//   - Explicitness: a clear picture of which types a host supports
//   - Control: the host decides what gets registered
//
// The card package exports DefaultRegistries() which pre-registers every
// standard element and action type; hosts extend from there:
//
//	elements, actions := card.DefaultRegistries()
//	elements.Register(&registry.Registration[card.Element]{
//	    Tag:     "Rating",
//	    Factory: func() card.Element { return &RatingElement{} },
//	})
//
// # Concurrency
//
// All registry operations are guarded by a single RWMutex, so registries may
// be shared process-wide and mutated from multiple host call sites. Lookup
// during parsing takes only read locks.
package registry
