package card

// Fact is one title/value row in a FactSet.
type Fact struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Speak string `json:"speak,omitempty"`
}

// FactSet renders a two-column list of title/value pairs.
type FactSet struct {
	BaseElement

	Facts []Fact
}

// TypeName returns "FactSet".
func (f *FactSet) TypeName() string { return TypeFactSet }

// Parse fills the fact set from its JSON node.
func (f *FactSet) Parse(p *Parser, raw []byte) error {
	if err := f.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Facts []Fact `json:"facts"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	f.Facts = wire.Facts
	return nil
}

// Validate has no intrinsic checks; an empty fact list renders as
// nothing.
func (f *FactSet) Validate(ctx ValidateContext) []ValidationError {
	return nil
}

// MarshalJSON serializes the fact set back to its wire form.
func (f *FactSet) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		Facts []Fact `json:"facts"`
	}{
		Type:     TypeFactSet,
		baseWire: f.baseFields(),
		Facts:    f.Facts,
	})
}
