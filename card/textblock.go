package card

// TextBlock renders a run of styled text.
type TextBlock struct {
	BaseElement

	Text     string
	Size     TextSize
	Weight   TextWeight
	Color    TextColor
	IsSubtle bool
	Wrap     bool
	MaxLines int
}

// TypeName returns "TextBlock".
func (t *TextBlock) TypeName() string { return TypeTextBlock }

// Parse fills the text block from its JSON node.
func (t *TextBlock) Parse(p *Parser, raw []byte) error {
	if err := t.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Text     string `json:"text"`
		Size     string `json:"size"`
		Weight   string `json:"weight"`
		Color    string `json:"color"`
		IsSubtle bool   `json:"isSubtle"`
		Wrap     bool   `json:"wrap"`
		MaxLines int    `json:"maxLines"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	t.Text = wire.Text
	t.Size = ParseTextSize(wire.Size)
	t.Weight = ParseTextWeight(wire.Weight)
	t.Color = ParseTextColor(wire.Color)
	t.IsSubtle = wire.IsSubtle
	t.Wrap = wire.Wrap
	t.MaxLines = wire.MaxLines
	return nil
}

// Validate has no intrinsic checks; empty text renders as nothing.
func (t *TextBlock) Validate(ctx ValidateContext) []ValidationError {
	return nil
}

// MarshalJSON serializes the text block back to its wire form.
func (t *TextBlock) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		Text     string `json:"text"`
		Size     string `json:"size"`
		Weight   string `json:"weight"`
		Color    string `json:"color"`
		IsSubtle bool   `json:"isSubtle,omitempty"`
		Wrap     bool   `json:"wrap,omitempty"`
		MaxLines int    `json:"maxLines,omitempty"`
	}{
		Type:     TypeTextBlock,
		baseWire: t.baseFields(),
		Text:     t.Text,
		Size:     t.Size.String(),
		Weight:   t.Weight.String(),
		Color:    t.Color.String(),
		IsSubtle: t.IsSubtle,
		Wrap:     t.Wrap,
		MaxLines: t.MaxLines,
	})
}
