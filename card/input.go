package card

import (
	"fmt"
	"strings"
)

// baseInput carries the attributes shared by every input variant: the
// id that keys the value into action payloads, a label, and the current
// value. The current value starts at the card-declared default and is
// overwritten by the host as the rendered control changes.
type baseInput struct {
	BaseElement

	id      string
	title   string
	current string
}

// ID returns the input identifier. Validation flags an empty id.
func (b *baseInput) ID() string { return b.id }

// Title returns the input label.
func (b *baseInput) Title() string { return b.title }

// Value returns the current value: the live state of the rendered
// control, not the card-declared default.
func (b *baseInput) Value() string { return b.current }

// SetValue pushes a user edit from the rendered control into the model.
func (b *baseInput) SetValue(value string) { b.current = value }

type baseInputWire struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
}

func (b *baseInput) parseInput(raw []byte) error {
	if err := b.parseBase(raw); err != nil {
		return err
	}

	var wire baseInputWire
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	b.id = wire.ID
	b.title = wire.Title
	b.current = wire.Value
	return nil
}

func (b *baseInput) inputFields() baseInputWire {
	return baseInputWire{ID: b.id, Title: b.title, Value: b.current}
}

// validateInput is the check shared by every variant: the id must be
// non-empty for the value to bind anywhere.
func (b *baseInput) validateInput(ctx ValidateContext) []ValidationError {
	if b.id == "" {
		return []ValidationError{ctx.errorf(CodePropertyCantBeNull, "input requires an id")}
	}
	return nil
}

// TextInput collects a line (or block) of free text.
type TextInput struct {
	baseInput

	Placeholder string
	MaxLength   int
	IsMultiline bool
	Style       TextInputStyle
}

// TypeName returns "Input.Text".
func (t *TextInput) TypeName() string { return TypeTextInput }

// Parse fills the input from its JSON node.
func (t *TextInput) Parse(p *Parser, raw []byte) error {
	if err := t.parseInput(raw); err != nil {
		return err
	}

	var wire struct {
		Placeholder string `json:"placeholder"`
		MaxLength   int    `json:"maxLength"`
		IsMultiline bool   `json:"isMultiline"`
		Style       string `json:"style"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	t.Placeholder = wire.Placeholder
	t.MaxLength = wire.MaxLength
	t.IsMultiline = wire.IsMultiline
	t.Style = ParseTextInputStyle(wire.Style)
	return nil
}

// Validate requires a non-empty id.
func (t *TextInput) Validate(ctx ValidateContext) []ValidationError {
	return t.validateInput(ctx)
}

// MarshalJSON serializes the input back to its wire form.
func (t *TextInput) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		baseInputWire
		Placeholder string `json:"placeholder,omitempty"`
		MaxLength   int    `json:"maxLength,omitempty"`
		IsMultiline bool   `json:"isMultiline,omitempty"`
		Style       string `json:"style"`
	}{
		Type:          TypeTextInput,
		baseWire:      t.baseFields(),
		baseInputWire: t.inputFields(),
		Placeholder:   t.Placeholder,
		MaxLength:     t.MaxLength,
		IsMultiline:   t.IsMultiline,
		Style:         t.Style.String(),
	})
}

// NumberInput collects a number within an optional range. The value
// accessor stays string-typed like every input; hosts parse it.
type NumberInput struct {
	baseInput

	Min int
	Max int
}

// TypeName returns "Input.Number".
func (n *NumberInput) TypeName() string { return TypeNumberInput }

// Parse fills the input from its JSON node.
func (n *NumberInput) Parse(p *Parser, raw []byte) error {
	if err := n.parseInput(raw); err != nil {
		return err
	}

	var wire struct {
		Min int `json:"min"`
		Max int `json:"max"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	n.Min = wire.Min
	n.Max = wire.Max
	return nil
}

// Validate requires a non-empty id.
func (n *NumberInput) Validate(ctx ValidateContext) []ValidationError {
	return n.validateInput(ctx)
}

// MarshalJSON serializes the input back to its wire form.
func (n *NumberInput) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		baseInputWire
		Min int `json:"min,omitempty"`
		Max int `json:"max,omitempty"`
	}{
		Type:          TypeNumberInput,
		baseWire:      n.baseFields(),
		baseInputWire: n.inputFields(),
		Min:           n.Min,
		Max:           n.Max,
	})
}

// DateInput collects a calendar date.
type DateInput struct {
	baseInput

	Min string
	Max string
}

// TypeName returns "Input.Date".
func (d *DateInput) TypeName() string { return TypeDateInput }

// Parse fills the input from its JSON node.
func (d *DateInput) Parse(p *Parser, raw []byte) error {
	if err := d.parseInput(raw); err != nil {
		return err
	}

	var wire struct {
		Min string `json:"min"`
		Max string `json:"max"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	d.Min = wire.Min
	d.Max = wire.Max
	return nil
}

// Validate requires a non-empty id.
func (d *DateInput) Validate(ctx ValidateContext) []ValidationError {
	return d.validateInput(ctx)
}

// MarshalJSON serializes the input back to its wire form.
func (d *DateInput) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		baseInputWire
		Min string `json:"min,omitempty"`
		Max string `json:"max,omitempty"`
	}{
		Type:          TypeDateInput,
		baseWire:      d.baseFields(),
		baseInputWire: d.inputFields(),
		Min:           d.Min,
		Max:           d.Max,
	})
}

// TimeInput collects a time of day.
type TimeInput struct {
	baseInput
}

// TypeName returns "Input.Time".
func (t *TimeInput) TypeName() string { return TypeTimeInput }

// Parse fills the input from its JSON node.
func (t *TimeInput) Parse(p *Parser, raw []byte) error {
	return t.parseInput(raw)
}

// Validate requires a non-empty id.
func (t *TimeInput) Validate(ctx ValidateContext) []ValidationError {
	return t.validateInput(ctx)
}

// MarshalJSON serializes the input back to its wire form.
func (t *TimeInput) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		baseInputWire
	}{
		Type:          TypeTimeInput,
		baseWire:      t.baseFields(),
		baseInputWire: t.inputFields(),
	})
}

// ToggleInput collects an on/off choice mapped to configurable values.
type ToggleInput struct {
	baseInput

	ValueOn  string
	ValueOff string
}

// TypeName returns "Input.Toggle".
func (t *ToggleInput) TypeName() string { return TypeToggleInput }

// Parse fills the input from its JSON node. The on/off values default
// to "true"/"false" when undeclared.
func (t *ToggleInput) Parse(p *Parser, raw []byte) error {
	if err := t.parseInput(raw); err != nil {
		return err
	}

	var wire struct {
		ValueOn  string `json:"valueOn"`
		ValueOff string `json:"valueOff"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	t.ValueOn = wire.ValueOn
	t.ValueOff = wire.ValueOff
	if t.ValueOn == "" {
		t.ValueOn = "true"
	}
	if t.ValueOff == "" {
		t.ValueOff = "false"
	}
	return nil
}

// Validate requires a non-empty id.
func (t *ToggleInput) Validate(ctx ValidateContext) []ValidationError {
	return t.validateInput(ctx)
}

// MarshalJSON serializes the input back to its wire form.
func (t *ToggleInput) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		baseInputWire
		ValueOn  string `json:"valueOn"`
		ValueOff string `json:"valueOff"`
	}{
		Type:          TypeToggleInput,
		baseWire:      t.baseFields(),
		baseInputWire: t.inputFields(),
		ValueOn:       t.ValueOn,
		ValueOff:      t.ValueOff,
	})
}

// Choice is one selectable option in a ChoiceSetInput.
type Choice struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	IsSelected bool   `json:"isSelected,omitempty"`
	Speak      string `json:"speak,omitempty"`
}

// ChoiceSetInput collects one or more selections from a fixed list.
type ChoiceSetInput struct {
	baseInput

	Choices       []Choice
	IsMultiSelect bool
	Style         ChoiceSetStyle
}

// TypeName returns "Input.ChoiceSet".
func (c *ChoiceSetInput) TypeName() string { return TypeChoiceSetInput }

// Parse fills the input from its JSON node. When no explicit default
// value is declared, the pre-selected choices provide one.
func (c *ChoiceSetInput) Parse(p *Parser, raw []byte) error {
	if err := c.parseInput(raw); err != nil {
		return err
	}

	var wire struct {
		Choices       []Choice `json:"choices"`
		IsMultiSelect bool     `json:"isMultiSelect"`
		Style         string   `json:"style"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	c.Choices = wire.Choices
	c.IsMultiSelect = wire.IsMultiSelect
	c.Style = ParseChoiceSetStyle(wire.Style)

	if c.current == "" {
		var selected []string
		for _, choice := range c.Choices {
			if choice.IsSelected {
				selected = append(selected, choice.Value)
			}
		}
		c.current = strings.Join(selected, ";")
	}

	return nil
}

// Validate requires a non-empty id and at least one complete choice.
// The per-choice check stops at the first offending choice; it does not
// enumerate every bad one.
func (c *ChoiceSetInput) Validate(ctx ValidateContext) []ValidationError {
	errs := c.validateInput(ctx)

	if len(c.Choices) == 0 {
		errs = append(errs, ctx.errorf(CodeCollectionCantBeEmpty, "ChoiceSet requires at least one choice"))
		return errs
	}

	for i, choice := range c.Choices {
		if choice.Title == "" || choice.Value == "" {
			errs = append(errs, ctx.At(fmt.Sprintf("choices[%d]", i)).errorf(
				CodePropertyCantBeNull, "choice requires both title and value"))
			break
		}
	}

	return errs
}

// MarshalJSON serializes the input back to its wire form.
func (c *ChoiceSetInput) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		baseInputWire
		Choices       []Choice `json:"choices"`
		IsMultiSelect bool     `json:"isMultiSelect,omitempty"`
		Style         string   `json:"style"`
	}{
		Type:          TypeChoiceSetInput,
		baseWire:      c.baseFields(),
		baseInputWire: c.inputFields(),
		Choices:       c.Choices,
		IsMultiSelect: c.IsMultiSelect,
		Style:         c.Style.String(),
	})
}
