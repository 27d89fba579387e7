package card

import "fmt"

// Container holds an ordered sequence of child elements, owned
// exclusively: a child's lifetime is the container's lifetime, and a
// child never moves to another parent. Containers may also carry their
// own action strip.
type Container struct {
	BaseElement

	items     []Element
	actions   ActionCollection
	forbidden []string
}

// TypeName returns "Container".
func (c *Container) TypeName() string { return TypeContainer }

// Items returns the children in document order.
func (c *Container) Items() []Element {
	return c.items
}

// Actions returns the container's action collection.
func (c *Container) Actions() *ActionCollection {
	return &c.actions
}

// AddItem appends a child and attaches it. Children attach exactly
// once; re-attaching an element owned elsewhere fails.
func (c *Container) AddItem(el Element) error {
	return c.addItem(c, el)
}

// addItem attaches el to owner and appends it. Types embedding Container
// (AdaptiveCard, Column) pass themselves as owner so children see the
// outer type as their parent, not the embedded Container.
func (c *Container) addItem(owner Element, el Element) error {
	if err := el.SetParent(owner); err != nil {
		return err
	}
	c.items = append(c.items, el)
	return nil
}

// Children returns the child elements for tree walks.
func (c *Container) Children() []Element {
	return c.items
}

// Parse fills the container, parsing children before attaching them.
func (c *Container) Parse(p *Parser, raw []byte) error {
	if err := c.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Items   []jsonRaw `json:"items"`
		Actions []jsonRaw `json:"actions"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	return c.parseChildren(p, c, wire.Items, wire.Actions)
}

// parseChildren parses item and action nodes, attaching each to owner.
func (c *Container) parseChildren(p *Parser, owner Element, items, actions []jsonRaw) error {
	for _, el := range p.ParseElements(items) {
		if err := c.addItem(owner, el); err != nil {
			return err
		}
	}
	return c.actions.parse(p, owner, actions)
}

// ForbidElements adds element type tags this container refuses in its
// children regardless of the host allow-list, mirroring
// ActionCollection.Forbid for actions.
func (c *Container) ForbidElements(tags ...string) {
	c.forbidden = append(c.forbidden, tags...)
}

// validateForbidden flags children whose type is on the container's own
// forbidden list.
func (c *Container) validateForbidden(ctx ValidateContext, field string) []ValidationError {
	var errs []ValidationError
	for i, child := range c.items {
		for _, tag := range c.forbidden {
			if child.TypeName() == tag {
				errs = append(errs, ctx.At(fmt.Sprintf("%s[%d]", field, i)).errorf(
					CodeElementTypeNotAllowed, "element type %q is forbidden here", tag))
			}
		}
	}
	return errs
}

// Validate checks children against the host policies and the
// container's own forbidden list, then the action collection.
func (c *Container) Validate(ctx ValidateContext) []ValidationError {
	errs := c.validateForbidden(ctx, "items")
	errs = append(errs, validateChildren(ctx, "items", c.items)...)
	errs = append(errs, c.actions.validate(ctx)...)
	return errs
}

// MarshalJSON serializes the container and its subtree.
func (c *Container) MarshalJSON() ([]byte, error) {
	items, err := marshalElements(c.items)
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
		Items   []jsonRaw `json:"items"`
		Actions []jsonRaw `json:"actions,omitempty"`
	}{
		Type:     TypeContainer,
		baseWire: c.baseFields(),
		Items:    items,
		Actions:  actions,
	})
}

// marshalElements serializes a slice of elements for embedding in a
// parent's wire form.
func marshalElements(elements []Element) ([]jsonRaw, error) {
	raws := make([]jsonRaw, 0, len(elements))
	for _, el := range elements {
		data, err := el.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raws = append(raws, data)
	}
	return raws, nil
}
