package card

// ActionSet renders a strip of action buttons inline in the card body.
type ActionSet struct {
	BaseElement

	actions ActionCollection
}

// TypeName returns "ActionSet".
func (s *ActionSet) TypeName() string { return TypeActionSet }

// Actions returns the owned action collection.
func (s *ActionSet) Actions() *ActionCollection {
	return &s.actions
}

// Parse fills the action set from its JSON node.
func (s *ActionSet) Parse(p *Parser, raw []byte) error {
	if err := s.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Actions []jsonRaw `json:"actions"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	return s.actions.parse(p, s, wire.Actions)
}

// Validate applies the collection policies and each action's checks.
func (s *ActionSet) Validate(ctx ValidateContext) []ValidationError {
	return s.actions.validate(ctx)
}

// MarshalJSON serializes the action set back to its wire form.
func (s *ActionSet) MarshalJSON() ([]byte, error) {
	actions, err := s.actions.marshal()
	if err != nil {
		return nil, err
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		Actions []jsonRaw `json:"actions"`
	}{
		Type:     TypeActionSet,
		baseWire: s.baseFields(),
		Actions:  actions,
	})
}
