package card

import (
	"encoding/json"
	"fmt"

	"github.com/c360/cardkit/errors"
)

// Type tags for every standard element and action. Lookup is exact and
// case-sensitive.
const (
	TypeAdaptiveCard   = "AdaptiveCard"
	TypeTextBlock      = "TextBlock"
	TypeImage          = "Image"
	TypeImageSet       = "ImageSet"
	TypeFactSet        = "FactSet"
	TypeContainer      = "Container"
	TypeColumnSet      = "ColumnSet"
	TypeColumn         = "Column"
	TypeActionSet      = "ActionSet"
	TypeTextInput      = "Input.Text"
	TypeNumberInput    = "Input.Number"
	TypeDateInput      = "Input.Date"
	TypeTimeInput      = "Input.Time"
	TypeToggleInput    = "Input.Toggle"
	TypeChoiceSetInput = "Input.ChoiceSet"
	TypeOpenURLAction  = "Action.OpenUrl"
	TypeSubmitAction   = "Action.Submit"
	TypeHTTPAction     = "Action.Http"
	TypeShowCardAction = "Action.ShowCard"
)

// Action is a user-triggerable operation attached to a card, a
// container, or a button strip. OpenUrl, Submit, and Http are external
// actions: their effect escapes to the host. ShowCard is internal: it
// reveals a nested card.
type Action interface {
	// TypeName returns the JSON type tag, e.g. "Action.Submit".
	TypeName() string

	// Title returns the button label.
	Title() string

	// Parent returns the owning element, or nil when detached.
	Parent() Element

	// SetParent attaches the action to its owner exactly once.
	SetParent(parent Element) error

	// Parse fills the action from its JSON node.
	Parse(p *Parser, raw []byte) error

	// Validate checks the action, returning every diagnostic found.
	Validate(ctx ValidateContext) []ValidationError

	// MarshalJSON serializes the action back to its wire form.
	MarshalJSON() ([]byte, error)
}

// Preparable is implemented by actions whose payload binds live input
// values at dispatch time. Prepare always resolves from the retained
// originals, so repeated calls against changing inputs never compound.
type Preparable interface {
	Prepare(inputs []Input) error
}

// BaseAction carries the attributes common to every action and enforces
// the single-attach parent invariant.
type BaseAction struct {
	ActionTitle string
	Speak       string

	parent Element
}

// Title returns the button label.
func (b *BaseAction) Title() string {
	return b.ActionTitle
}

// Parent returns the owning element, or nil when detached.
func (b *BaseAction) Parent() Element {
	return b.parent
}

// SetParent attaches the action to its owner. A second attachment is a
// contract violation and fails immediately.
func (b *BaseAction) SetParent(parent Element) error {
	if parent == nil {
		return errors.WrapInvalid(errors.ErrNilElement, "BaseAction", "SetParent", "parent validation")
	}
	if b.parent != nil {
		return errors.WrapFatal(errors.ErrAlreadyAttached, "BaseAction", "SetParent", "single-attach check")
	}

	b.parent = parent
	return nil
}

type baseActionWire struct {
	Title string `json:"title"`
	Speak string `json:"speak"`
}

func (b *BaseAction) parseBase(raw []byte) error {
	var wire baseActionWire
	if err := jsonCodec.Unmarshal(raw, &wire); err != nil {
		return errors.WrapInvalid(err, "BaseAction", "parseBase", "JSON unmarshaling")
	}

	b.ActionTitle = wire.Title
	b.Speak = wire.Speak
	return nil
}

// ActionCollection is the ordered action list shared by ActionSet,
// Container, and the card root. It owns its actions and applies the
// host's count, interactivity, and allow-list policies uniformly.
type ActionCollection struct {
	items     []Action
	forbidden []string
}

// Items returns the actions in document order.
func (ac *ActionCollection) Items() []Action {
	return ac.items
}

// Forbid adds action type tags this collection refuses regardless of
// the host allow-list. Hosts use this to ban specific action types in
// one collection without narrowing the global allow-list.
func (ac *ActionCollection) Forbid(tags ...string) {
	ac.forbidden = append(ac.forbidden, tags...)
}

// Add appends an action and attaches it to the owning element.
func (ac *ActionCollection) Add(owner Element, a Action) error {
	if a == nil {
		return errors.WrapInvalid(errors.ErrNilAction, "ActionCollection", "Add", "action validation")
	}
	if err := a.SetParent(owner); err != nil {
		return err
	}

	ac.items = append(ac.items, a)
	return nil
}

// parse fills the collection from a JSON "actions" array, dropping
// unknown or unparsable actions with warnings.
func (ac *ActionCollection) parse(p *Parser, owner Element, raws []json.RawMessage) error {
	for _, a := range p.ParseActions(raws) {
		if err := ac.Add(owner, a); err != nil {
			return err
		}
	}
	return nil
}

// validate applies the collection-level policies, then each action's
// own checks.
func (ac *ActionCollection) validate(ctx ValidateContext) []ValidationError {
	var errs []ValidationError

	if max := ctx.Config.MaxActions; max > 0 && len(ac.items) > max {
		errs = append(errs, ctx.errorf(CodeTooManyActions,
			"%d actions exceed the host limit of %d", len(ac.items), max))
	}

	if len(ac.items) > 0 && !ctx.Config.SupportsInteractivity {
		errs = append(errs, ctx.errorf(CodeInteractivityNotAllowed,
			"actions require interactivity support"))
	}

	for i, a := range ac.items {
		actionCtx := ctx.At(fmt.Sprintf("actions[%d]", i))

		if !ctx.Config.ActionAllowed(a.TypeName()) {
			errs = append(errs, actionCtx.errorf(CodeActionTypeNotAllowed,
				"action type %q is not allowed by the host", a.TypeName()))
		}
		for _, tag := range ac.forbidden {
			if a.TypeName() == tag {
				errs = append(errs, actionCtx.errorf(CodeActionTypeNotAllowed,
					"action type %q is forbidden here", tag))
			}
		}
		if ctx.ForbidShowCard && a.TypeName() == TypeShowCardAction {
			errs = append(errs, actionCtx.errorf(CodeActionTypeNotAllowed,
				"nested ShowCard actions are not permitted inside a revealed card"))
		}

		errs = append(errs, a.Validate(actionCtx)...)
	}

	return errs
}

// marshal serializes the actions for embedding in a parent's wire form.
func (ac *ActionCollection) marshal() ([]json.RawMessage, error) {
	if len(ac.items) == 0 {
		return nil, nil
	}

	raws := make([]json.RawMessage, 0, len(ac.items))
	for _, a := range ac.items {
		data, err := a.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raws = append(raws, data)
	}
	return raws, nil
}
