package card

// SubmitAction hands a data payload back to the host, merging the
// card's live input values into a deep copy of the original data at
// preparation time. The original payload is never mutated, so a fresh
// Prepare against changed inputs produces a fresh snapshot.
type SubmitAction struct {
	BaseAction

	original map[string]any
	prepared map[string]any
}

// TypeName returns "Action.Submit".
func (a *SubmitAction) TypeName() string { return TypeSubmitAction }

// Parse fills the action from its JSON node.
func (a *SubmitAction) Parse(p *Parser, raw []byte) error {
	if err := a.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Data map[string]any `json:"data"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	a.original = wire.Data
	return nil
}

// Data returns the prepared payload once Prepare has run, and the
// original payload before that.
func (a *SubmitAction) Data() map[string]any {
	if a.prepared != nil {
		return a.prepared
	}
	return a.original
}

// SetData replaces the original payload and resets any prepared state.
func (a *SubmitAction) SetData(data map[string]any) {
	a.original = data
	a.prepared = nil
}

// Prepare merges input id→value pairs into a deep copy of the original
// data. Input values win over colliding original keys.
func (a *SubmitAction) Prepare(inputs []Input) error {
	merged := deepCopyMap(a.original)
	if merged == nil {
		merged = make(map[string]any, len(inputs))
	}

	for _, in := range inputs {
		if in.ID() == "" {
			continue
		}
		merged[in.ID()] = in.Value()
	}

	a.prepared = merged
	return nil
}

// Validate has no intrinsic checks; an empty payload is legal.
func (a *SubmitAction) Validate(ctx ValidateContext) []ValidationError {
	return nil
}

// MarshalJSON serializes the action with its original payload; prepared
// snapshots are dispatch-time state, not document content.
func (a *SubmitAction) MarshalJSON() ([]byte, error) {
	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseActionWire
		Data map[string]any `json:"data,omitempty"`
	}{
		Type:           TypeSubmitAction,
		baseActionWire: baseActionWire{Title: a.ActionTitle, Speak: a.Speak},
		Data:           a.original,
	})
}

// deepCopyMap deep-copies a JSON-shaped map (maps, slices, scalars).
func deepCopyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = deepCopyValue(v)
	}
	return dst
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		// Scalars from JSON decoding are immutable values.
		return val
	}
}
