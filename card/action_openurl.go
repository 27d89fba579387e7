package card

// OpenURLAction asks the host to open a URL. It is an external action
// with no payload preparation: the URL is literal, not a template.
type OpenURLAction struct {
	BaseAction

	URL string
}

// TypeName returns "Action.OpenUrl".
func (a *OpenURLAction) TypeName() string { return TypeOpenURLAction }

// Parse fills the action from its JSON node.
func (a *OpenURLAction) Parse(p *Parser, raw []byte) error {
	if err := a.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		URL string `json:"url"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	a.URL = wire.URL
	return nil
}

// Validate requires a non-empty URL.
func (a *OpenURLAction) Validate(ctx ValidateContext) []ValidationError {
	var errs []ValidationError
	if a.URL == "" {
		errs = append(errs, ctx.errorf(CodePropertyCantBeNull, "OpenUrl action requires a url"))
	}
	return errs
}

// MarshalJSON serializes the action back to its wire form.
func (a *OpenURLAction) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseActionWire
		URL string `json:"url"`
	}{
		Type:           TypeOpenURLAction,
		baseActionWire: baseActionWire{Title: a.ActionTitle, Speak: a.Speak},
		URL:            a.URL,
	})
}
