// Package template implements the {{identifier}} placeholder substitution
// used to bind live input values into action string fields (URLs, HTTP
// bodies, header values) at dispatch time.
//
// A Template never mutates: Resolve always works from the retained source
// text, so preparing an action twice against different input snapshots
// yields two independent resolutions rather than compounding replacements.
//
// Placeholders whose identifier matches no supplied value pass through as
// literal text. Whether that leniency is intentional in the card schema is
// unsettled; the behavior is preserved here as specified.
package template
