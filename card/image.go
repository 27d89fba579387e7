package card

// Image renders a picture fetched by the host from a URL. An optional
// select action fires when the image is tapped; the image invokes it
// but does not own it.
type Image struct {
	BaseElement

	URL     string
	AltText string
	Style   ImageStyle
	Size    ImageSize

	selectAction Action
}

// TypeName returns "Image".
func (i *Image) TypeName() string { return TypeImage }

// SelectAction returns the tap action, or nil.
func (i *Image) SelectAction() Action {
	return i.selectAction
}

// SetSelectAction installs the tap action. The action is invoked on
// tap, not owned: no parent is assigned.
func (i *Image) SetSelectAction(a Action) {
	i.selectAction = a
}

// Parse fills the image from its JSON node.
func (i *Image) Parse(p *Parser, raw []byte) error {
	if err := i.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		URL          string  `json:"url"`
		AltText      string  `json:"altText"`
		Style        string  `json:"style"`
		Size         string  `json:"size"`
		SelectAction jsonRaw `json:"selectAction"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	i.URL = wire.URL
	i.AltText = wire.AltText
	i.Style = ParseImageStyle(wire.Style)
	i.Size = ParseImageSize(wire.Size)

	if len(wire.SelectAction) > 0 {
		if a, ok := p.ParseAction(wire.SelectAction); ok {
			i.selectAction = a
		}
	}

	return nil
}

// Validate requires a URL for renderability and validates the select
// action in place.
func (i *Image) Validate(ctx ValidateContext) []ValidationError {
	var errs []ValidationError

	if i.URL == "" {
		errs = append(errs, ctx.errorf(CodePropertyCantBeNull, "Image requires a url"))
	}
	if i.selectAction != nil {
		errs = append(errs, i.selectAction.Validate(ctx.At("selectAction"))...)
	}

	return errs
}

// MarshalJSON serializes the image back to its wire form.
func (i *Image) MarshalJSON() ([]byte, error) {
	var selectRaw jsonRaw
	if i.selectAction != nil {
		data, err := i.selectAction.MarshalJSON()
		if err != nil {
			return nil, err
		}
		selectRaw = data
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		URL          string  `json:"url"`
		AltText      string  `json:"altText,omitempty"`
		Style        string  `json:"style"`
		Size         string  `json:"size"`
		SelectAction jsonRaw `json:"selectAction,omitempty"`
	}{
		Type:         TypeImage,
		baseWire:     i.baseFields(),
		URL:          i.URL,
		AltText:      i.AltText,
		Style:        i.Style.String(),
		Size:         i.Size.String(),
		SelectAction: selectRaw,
	})
}
