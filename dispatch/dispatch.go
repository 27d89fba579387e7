package dispatch

import (
	"log/slog"

	"github.com/c360/cardkit/card"
	"github.com/c360/cardkit/errors"
	"github.com/c360/cardkit/hostconfig"
)

// State tracks an action through its execution protocol.
type State int

const (
	// StateIdle: action parsed, no data gathered.
	StateIdle State = iota
	// StatePreparing: inputs are being gathered from the card root.
	StatePreparing
	// StatePrepared: payload substitution complete and immutable.
	StatePrepared
	// StateDispatched: handed to the host callback. Terminal for this
	// trigger; a later trigger prepares a fresh snapshot.
	StateDispatched
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StatePrepared:
		return "prepared"
	case StateDispatched:
		return "dispatched"
	default:
		return "unknown"
	}
}

// Dispatcher runs the action execution protocol: on a user trigger it
// gathers every input reachable from the card root, prepares the
// action's payload against those values, and hands the prepared action
// to the host callback exactly once.
type Dispatcher struct {
	// OnExecuteAction receives prepared external actions (OpenUrl,
	// Submit, Http).
	OnExecuteAction func(a card.Action)

	// OnShowCard receives ShowCard actions, which bypass preparation:
	// they carry no external payload.
	OnShowCard func(a *card.ShowCardAction)

	Config *hostconfig.Config
	Logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the given host configuration.
func NewDispatcher(cfg *hostconfig.Config) *Dispatcher {
	if cfg == nil {
		cfg = hostconfig.Default()
	}
	return &Dispatcher{
		Config: cfg,
		Logger: slog.Default(),
	}
}

// Execute runs one trigger of the protocol for an action belonging to
// root. It returns the terminal state reached. Executing the same
// action again re-prepares from the retained originals, so payloads
// never compound across triggers.
func (d *Dispatcher) Execute(root *card.AdaptiveCard, a card.Action) (State, error) {
	if root == nil {
		return StateIdle, errors.WrapInvalid(errors.ErrNilElement, "Dispatcher", "Execute", "root validation")
	}
	if a == nil {
		return StateIdle, errors.WrapInvalid(errors.ErrNilAction, "Dispatcher", "Execute", "action validation")
	}

	// ShowCard reveals a nested card in place: no payload, no
	// preparation. Inputs inside the revealed card are picked up by
	// whichever nested action eventually fires.
	if show, ok := a.(*card.ShowCardAction); ok {
		if d.OnShowCard == nil {
			return StateIdle, errors.WrapInvalid(errors.ErrNoCallback, "Dispatcher", "Execute", "show-card dispatch")
		}

		d.Logger.Debug("dispatching show-card action", "title", a.Title())
		d.OnShowCard(show)
		return StateDispatched, nil
	}

	if d.OnExecuteAction == nil {
		return StateIdle, errors.WrapInvalid(errors.ErrNoCallback, "Dispatcher", "Execute", "action dispatch")
	}

	state := StatePreparing
	inputs := root.GetAllInputs()

	if preparable, ok := a.(card.Preparable); ok {
		if err := preparable.Prepare(inputs); err != nil {
			return state, errors.Wrap(err, "Dispatcher", "Execute", "payload preparation")
		}
	}
	state = StatePrepared

	d.Logger.Debug("dispatching action",
		"type", a.TypeName(),
		"title", a.Title(),
		"inputs", len(inputs))

	d.OnExecuteAction(a)
	return StateDispatched, nil
}
