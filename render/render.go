package render

import (
	"log/slog"

	"github.com/c360/cardkit/card"
	"github.com/c360/cardkit/hostconfig"
)

// Renderer is the collaborator interface a host platform implements to
// turn elements into native visuals. The returned value is opaque to
// this package; a nil result means "render nothing for this node" and
// never fails the parent.
type Renderer interface {
	Render(el card.Element) any
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(el card.Element) any

// Render calls the function.
func (f RendererFunc) Render(el card.Element) any { return f(el) }

// Fallback is the pseudo-visual produced for a card whose minimum
// version exceeds what the host supports. Hosts render its text in
// place of the card.
type Fallback struct {
	Text string
}

// genericFallback is shown when an unsupported card supplies no
// fallback text of its own.
const genericFallback = "This card requires a newer version to display."

// Card drives a renderer over a parsed card with the default logger.
// Version gating happens here: an unsupported card yields only its
// fallback text, never a partial tree. Supported cards render fully
// even when validation reported errors; validation is advisory by
// design.
func Card(c *card.AdaptiveCard, r Renderer, cfg *hostconfig.Config) []any {
	return CardWith(c, r, cfg, slog.Default())
}

// CardWith is Card with an injectable logger, matching the parser and
// dispatcher conventions.
func CardWith(c *card.AdaptiveCard, r Renderer, cfg *hostconfig.Config, logger *slog.Logger) []any {
	if cfg == nil {
		cfg = hostconfig.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	hostVersion := card.DefaultVersion
	if v, ok := card.ParseVersion(cfg.SupportedVersion); ok {
		hostVersion = v
	}

	if !c.SupportedBy(hostVersion) {
		text := c.FallbackText
		if text == "" {
			text = genericFallback
		}
		logger.Debug("card version unsupported, rendering fallback",
			"required", c.MinVersion, "supported", hostVersion)
		return []any{Fallback{Text: text}}
	}

	return Elements(c.Items(), r)
}

// Elements renders a slice of elements, dropping nil results.
func Elements(elements []card.Element, r Renderer) []any {
	visuals := make([]any, 0, len(elements))
	for _, el := range elements {
		if v := r.Render(el); v != nil {
			visuals = append(visuals, v)
		}
	}
	return visuals
}
