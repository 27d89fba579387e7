package card

// AdaptiveCard is the root of a parsed card document: a container with
// a declared type tag, a minimum schema version, fallback text for
// hosts that cannot meet it, and a top-level action collection.
type AdaptiveCard struct {
	Container

	MinVersion   Version
	FallbackText string

	declaredType string
}

// TypeName returns "AdaptiveCard".
func (c *AdaptiveCard) TypeName() string { return TypeAdaptiveCard }

// DeclaredType returns the type tag the JSON document carried, which
// validation requires to equal "AdaptiveCard".
func (c *AdaptiveCard) DeclaredType() string {
	return c.declaredType
}

// SupportedBy reports whether a host at the given version can render
// the full card. Unsupported cards render only their fallback text.
func (c *AdaptiveCard) SupportedBy(hostVersion Version) bool {
	return hostVersion.AtLeast(c.MinVersion)
}

// AddItem appends a body element and attaches it to the card root.
func (c *AdaptiveCard) AddItem(el Element) error {
	return c.addItem(c, el)
}

// Parse fills the card from the document root. A malformed minVersion
// string leaves the 1.0 default in place rather than failing.
func (c *AdaptiveCard) Parse(p *Parser, raw []byte) error {
	var wire struct {
		Type         string    `json:"type"`
		MinVersion   string    `json:"minVersion"`
		FallbackText string    `json:"fallbackText"`
		Body         []jsonRaw `json:"body"`
		Actions      []jsonRaw `json:"actions"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}
	if err := c.parseBase(raw); err != nil {
		return err
	}

	c.declaredType = wire.Type
	c.FallbackText = wire.FallbackText

	c.MinVersion = DefaultVersion
	if wire.MinVersion != "" {
		if v, ok := ParseVersion(wire.MinVersion); ok {
			c.MinVersion = v
		} else {
			p.warnf(CodeParseFailed, "malformed minVersion %q, assuming %s",
				wire.MinVersion, DefaultVersion)
		}
	}

	return c.parseChildren(p, c, wire.Body, wire.Actions)
}

// Validate checks the root's own contract, then the body and action
// collection. Diagnostics accumulate; nothing short-circuits the pass.
func (c *AdaptiveCard) Validate(ctx ValidateContext) []ValidationError {
	var errs []ValidationError

	if c.declaredType != TypeAdaptiveCard {
		errs = append(errs, ctx.errorf(CodeMissingCardType,
			"card type must be %q, got %q", TypeAdaptiveCard, c.declaredType))
	}

	if !c.SupportedBy(ctx.HostVersion) {
		errs = append(errs, ctx.errorf(CodeUnsupportedCardVersion,
			"card requires version %s, host supports %s", c.MinVersion, ctx.HostVersion))
	}

	errs = append(errs, c.validateForbidden(ctx, "body")...)
	errs = append(errs, validateChildren(ctx, "body", c.items)...)
	errs = append(errs, c.actions.validate(ctx)...)
	return errs
}

// GetAllInputs gathers every input reachable from the card root in
// document order: the body depth-first, then inputs inside cards
// revealed by ShowCard actions. Action preparation binds against the
// full set, not just an action's local siblings.
func (c *AdaptiveCard) GetAllInputs() []Input {
	var inputs []Input
	collectInputs(c, &inputs)
	return inputs
}

// collectInputs walks elements depth-first, descending into container
// children, action strips, and ShowCard nested cards.
func collectInputs(el Element, inputs *[]Input) {
	if in, ok := el.(Input); ok {
		*inputs = append(*inputs, in)
	}

	if container, ok := el.(ContainerElement); ok {
		for _, child := range container.Children() {
			collectInputs(child, inputs)
		}
	}

	if owner, ok := el.(interface{ Actions() *ActionCollection }); ok {
		collectActionInputs(owner.Actions(), inputs)
	}
}

// collectActionInputs descends into the cards revealed by ShowCard
// actions, whose inputs also participate in payload binding.
func collectActionInputs(ac *ActionCollection, inputs *[]Input) {
	for _, a := range ac.Items() {
		if show, ok := a.(*ShowCardAction); ok && show.Card() != nil {
			collectInputs(show.Card(), inputs)
		}
	}
}

// MarshalJSON serializes the card document.
func (c *AdaptiveCard) MarshalJSON() ([]byte, error) {
	body, err := marshalElements(c.items)
	if err != nil {
		return nil, err
	}
	actions, err := c.actions.marshal()
	if err != nil {
		return nil, err
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		MinVersion   string    `json:"minVersion"`
		FallbackText string    `json:"fallbackText,omitempty"`
		Body         []jsonRaw `json:"body"`
		Actions      []jsonRaw `json:"actions,omitempty"`
	}{
		Type:         TypeAdaptiveCard,
		baseWire:     c.baseFields(),
		MinVersion:   c.MinVersion.String(),
		FallbackText: c.FallbackText,
		Body:         body,
		Actions:      actions,
	})
}
