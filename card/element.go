package card

import (
	"github.com/google/uuid"

	"github.com/c360/cardkit/errors"
)

// Element is a visual node in the card tree. Concrete types embed
// BaseElement for the shared attributes and parent tracking, and add
// their own recognized JSON fields.
//
// Custom element types registered by hosts implement this interface
// directly; embedding BaseElement satisfies everything except TypeName,
// Parse, Validate, and MarshalJSON.
type Element interface {
	// TypeName returns the JSON type tag, e.g. "TextBlock".
	TypeName() string

	// Handle returns the element's unique instance identifier.
	Handle() string

	// Parent returns the owning element, or nil for a detached root.
	Parent() Element

	// SetParent attaches the element to a parent. An element attaches
	// exactly once; a second attachment fails with ErrAlreadyAttached.
	SetParent(parent Element) error

	// Parse fills the element from its JSON node. Only recognized
	// fields are read; unrecognized fields are ignored.
	Parse(p *Parser, raw []byte) error

	// Validate checks the element and its subtree, returning every
	// diagnostic found. Validation never mutates the tree.
	Validate(ctx ValidateContext) []ValidationError

	// MarshalJSON serializes the element back to its wire form.
	MarshalJSON() ([]byte, error)
}

// ContainerElement is implemented by elements owning an ordered sequence
// of child elements. The input gatherer and renderers walk the tree
// through this interface.
type ContainerElement interface {
	Element
	Children() []Element
}

// Input is the capability shared by all input elements. Value reflects
// the live state of the rendered control: the host pushes user edits in
// through SetValue, and action preparation reads them back out.
type Input interface {
	Element
	ID() string
	Title() string
	Value() string
	SetValue(value string)
}

// BaseElement carries the attributes common to every card element and
// enforces the single-attach parent invariant. Concrete element types
// embed it by value.
type BaseElement struct {
	Alignment  HorizontalAlignment
	Separation SeparationStyle
	Speak      string

	handle string
	parent Element
}

// Handle returns the element's unique instance identifier, assigning
// one on first use.
func (b *BaseElement) Handle() string {
	if b.handle == "" {
		b.handle = uuid.New().String()
	}
	return b.handle
}

// Parent returns the owning element, or nil when detached.
func (b *BaseElement) Parent() Element {
	return b.parent
}

// SetParent attaches the element to its owner. Attaching an element
// that already has a parent is a contract violation in collaborator
// code, not malformed input, and fails immediately.
func (b *BaseElement) SetParent(parent Element) error {
	if parent == nil {
		return errors.WrapInvalid(errors.ErrNilElement, "BaseElement", "SetParent", "parent validation")
	}
	if b.parent != nil {
		return errors.WrapFatal(errors.ErrAlreadyAttached, "BaseElement", "SetParent", "single-attach check")
	}

	b.parent = parent
	return nil
}

// baseWire is the JSON shape of the shared element attributes.
type baseWire struct {
	HorizontalAlignment string `json:"horizontalAlignment"`
	Separation          string `json:"separation"`
	Speak               string `json:"speak"`
}

// parseBase fills the shared attributes from the element's JSON node.
func (b *BaseElement) parseBase(raw []byte) error {
	var wire baseWire
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return errors.WrapInvalid(err, "BaseElement", "parseBase", "JSON unmarshaling")
	}

	b.Alignment = ParseHorizontalAlignment(wire.HorizontalAlignment)
	b.Separation = ParseSeparationStyle(wire.Separation)
	b.Speak = wire.Speak
	return nil
}

// baseFields returns the shared attributes in wire form for marshalling.
func (b *BaseElement) baseFields() baseWire {
	return baseWire{
		HorizontalAlignment: b.Alignment.String(),
		Separation:          b.Separation.String(),
		Speak:               b.Speak,
	}
}
