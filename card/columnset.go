package card

import "strconv"

// Column weight sentinels. Positive weights are proportional flex
// shares; the sentinels request size-to-content and fill-remaining.
const (
	WeightAuto    = 0
	WeightStretch = -1
)

// Column is a container with a layout weight, parsed from a "size"
// field of "auto", "stretch", or a numeric string.
type Column struct {
	Container

	Weight int
}

// TypeName returns "Column".
func (c *Column) TypeName() string { return TypeColumn }

// AddItem appends a child and attaches it to the column.
func (c *Column) AddItem(el Element) error {
	return c.addItem(c, el)
}

// Parse fills the column and its items.
func (c *Column) Parse(p *Parser, raw []byte) error {
	if err := c.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Size    string    `json:"size"`
		Items   []jsonRaw `json:"items"`
		Actions []jsonRaw `json:"actions"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	c.Weight = parseColumnWeight(wire.Size)
	return c.parseChildren(p, c, wire.Items, wire.Actions)
}

// parseColumnWeight maps the size field to a weight: "auto" sizes to
// content, "stretch" fills remaining space, a numeric string is a
// proportional share. Anything else falls back to auto.
func parseColumnWeight(size string) int {
	switch size {
	case "", "auto":
		return WeightAuto
	case "stretch":
		return WeightStretch
	}

	if n, err := strconv.Atoi(size); err == nil && n > 0 {
		return n
	}
	return WeightAuto
}

// sizeString is the inverse of parseColumnWeight.
func (c *Column) sizeString() string {
	switch c.Weight {
	case WeightAuto:
		return "auto"
	case WeightStretch:
		return "stretch"
	default:
		return strconv.Itoa(c.Weight)
	}
}

// MarshalJSON serializes the column and its subtree.
func (c *Column) MarshalJSON() ([]byte, error) {
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
		Size    string    `json:"size"`
		Items   []jsonRaw `json:"items"`
		Actions []jsonRaw `json:"actions,omitempty"`
	}{
		Type:     TypeColumn,
		baseWire: c.baseFields(),
		Size:     c.sizeString(),
		Items:    items,
		Actions:  actions,
	})
}

// ColumnSet lays out an ordered sequence of columns side by side.
type ColumnSet struct {
	BaseElement

	columns []*Column
}

// TypeName returns "ColumnSet".
func (s *ColumnSet) TypeName() string { return TypeColumnSet }

// Columns returns the owned columns in document order.
func (s *ColumnSet) Columns() []*Column {
	return s.columns
}

// AddColumn appends a column and attaches it to the set.
func (s *ColumnSet) AddColumn(col *Column) error {
	if err := col.SetParent(s); err != nil {
		return err
	}
	s.columns = append(s.columns, col)
	return nil
}

// Children returns the columns as elements for tree walks.
func (s *ColumnSet) Children() []Element {
	children := make([]Element, len(s.columns))
	for i, col := range s.columns {
		children[i] = col
	}
	return children
}

// Parse fills the set, parsing each column before attaching it. Column
// nodes traditionally omit their type tag.
func (s *ColumnSet) Parse(p *Parser, raw []byte) error {
	if err := s.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Columns []jsonRaw `json:"columns"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	for _, colRaw := range wire.Columns {
		el, ok := p.ParseElement(withDefaultType(colRaw, TypeColumn))
		if !ok {
			continue
		}
		col, ok := el.(*Column)
		if !ok {
			p.warnf(CodeParseFailed, "ColumnSet entry is not a Column")
			continue
		}
		if err := s.AddColumn(col); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks each column against the host policies.
func (s *ColumnSet) Validate(ctx ValidateContext) []ValidationError {
	return validateChildren(ctx, "columns", s.Children())
}

// MarshalJSON serializes the set and its columns.
func (s *ColumnSet) MarshalJSON() ([]byte, error) {
	columns := make([]jsonRaw, 0, len(s.columns))
	for _, col := range s.columns {
		data, err := col.MarshalJSON()
		if err != nil {
			return nil, err
		}
		columns = append(columns, data)
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseWire
		Columns []jsonRaw `json:"columns"`
	}{
		Type:     TypeColumnSet,
		baseWire: s.baseFields(),
		Columns:  columns,
	})
}
