package todo

// Mode selects what tapping a row does.
type Mode int

const (
	ModeToggle Mode = iota
	ModeDelete
)

func (m Mode) String() string {
	if m == ModeDelete {
		return "delete"
	}
	return "toggle"
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == ModeDelete {
		return ModeToggle
	}
	return ModeDelete
}

// ActionKind tells the controller how to treat a tap result.
type ActionKind int

const (
	// ActionApplied: List holds the new list (possibly unchanged).
	ActionApplied ActionKind = iota
	// ActionConfirm: the controller must ask before removing ID.
	ActionConfirm
)

// Action is the outcome of a tap or a confirmation.
type Action struct {
	Kind    ActionKind
	List    List
	ID      string
	Changed bool
	Err     error
}

// Tap routes a tap on the item with id according to mode.
// In delete mode nothing changes until Confirm is called.
func Tap(mode Mode, l List, id string) Action {
	if mode == ModeDelete {
		if l.Index(id) < 0 {
			return Action{Kind: ActionApplied, List: l, ID: id, Err: ErrNoSuchItem}
		}
		return Action{Kind: ActionConfirm, List: l, ID: id}
	}
	out, err := Toggle(l, id)
	return Action{Kind: ActionApplied, List: out, ID: id, Changed: err == nil, Err: err}
}

// Confirm resolves a pending delete. accepted=false leaves l untouched.
func Confirm(l List, id string, accepted bool) Action {
	if !accepted {
		return Action{Kind: ActionApplied, List: l, ID: id}
	}
	out, err := Remove(l, id)
	return Action{Kind: ActionApplied, List: out, ID: id, Changed: err == nil, Err: err}
}
