// Package cardkit is the root of the CardKit module, a Go implementation
// of the Adaptive Cards object model: a declarative JSON card schema
// rendered into platform-native visual trees by host applications.
//
// The module is organized as focused packages:
//
//   - card: the element/action hierarchy, polymorphic parsing, and
//     validation - the core of the library
//   - registry: the generic type registry behind card's extensibility
//   - template: {{id}} placeholder substitution for action payloads
//   - dispatch: the action execution protocol and host callbacks
//   - render: the renderer collaborator seam and version gating
//   - hostconfig: host options consulted during validation and render
//   - schema: structural JSON Schema pre-validation
//   - metric: optional Prometheus instrumentation
//   - errors: classified errors shared across the module
//
// CardKit contains no I/O and no rendering: hosts supply pixels,
// networking, and event wiring through the narrow interfaces in render
// and dispatch.
package cardkit
