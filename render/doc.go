// Package render defines the narrow seam between the card object model
// and a host platform's actual rendering. The core never produces
// pixels; it walks the tree and calls the host's Renderer per element,
// tolerating nil results.
//
// Version gating lives here: a card whose declared minimum version
// exceeds the host's support renders only its fallback text, never a
// partial tree.
package render
