package card

import "github.com/c360/cardkit/errors"

// ShowCardAction reveals a nested card without leaving the host. It is
// the one internal action: dispatch bypasses payload preparation, and
// the revealed card may not itself contain ShowCard actions.
type ShowCardAction struct {
	BaseAction

	card *AdaptiveCard
}

// TypeName returns "Action.ShowCard".
func (a *ShowCardAction) TypeName() string { return TypeShowCardAction }

// Card returns the owned nested card, or nil if none was supplied.
func (a *ShowCardAction) Card() *AdaptiveCard {
	return a.card
}

// Parse fills the action and recursively parses the nested card.
func (a *ShowCardAction) Parse(p *Parser, raw []byte) error {
	if err := a.parseBase(raw); err != nil {
		return err
	}

	var wire struct {
		Card jsonRaw `json:"card"`
	}
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return err
	}

	if len(wire.Card) == 0 {
		return nil
	}

	nested := &AdaptiveCard{}
	if err := nested.Parse(p, wire.Card); err != nil {
		return errors.Wrap(err, "ShowCardAction", "Parse", "nested card parsing")
	}

	a.card = nested
	return nil
}

// Validate requires the nested card and validates it with nested
// ShowCard actions forbidden at any depth.
func (a *ShowCardAction) Validate(ctx ValidateContext) []ValidationError {
	if a.card == nil {
		return []ValidationError{ctx.errorf(CodePropertyCantBeNull, "ShowCard action requires a card")}
	}

	nestedCtx := ctx.At("card")
	nestedCtx.ForbidShowCard = true
	return a.card.Validate(nestedCtx)
}

// MarshalJSON serializes the action and its nested card.
func (a *ShowCardAction) MarshalJSON() ([]byte, error) {
	var cardRaw jsonRaw
	if a.card != nil {
		data, err := a.card.MarshalJSON()
		if err != nil {
			return nil, err
		}
		cardRaw = data
	}

	return jsonCodec.Marshal(struct {
		Type string `json:"type"`
		baseActionWire
		Card jsonRaw `json:"card,omitempty"`
	}{
		Type:           TypeShowCardAction,
		baseActionWire: baseActionWire{Title: a.ActionTitle, Speak: a.Speak},
		Card:           cardRaw,
	})
}
