package models

// BladderState is the measured fill level reported by the state file
type BladderState int

const (
	StateUnknown BladderState = iota
	StateEmpty
	StateHalfFull
	StateFull
)

var stateTokens = map[string]BladderState{
	"Empty":     StateEmpty,
	"Half-Full": StateHalfFull,
	"Full":      StateFull,
}

// ParseState matches raw against the recognized tokens exactly; anything else is StateUnknown.
func ParseState(raw string) BladderState {
	if state, ok := stateTokens[raw]; ok {
		return state
	}
	return StateUnknown
}

func (s BladderState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateHalfFull:
		return "Half-Full"
	case StateFull:
		return "Full"
	default:
		return ""
	}
}

// Recognized reports whether s is one of Empty, Half-Full or Full.
func (s BladderState) Recognized() bool {
	return s != StateUnknown
}

// ImageName is the asset file shown for s.
func (s BladderState) ImageName() string {
	if !s.Recognized() {
		return IdleImageName
	}
	return s.String() + ".png"
}

// IdleImageName is displayed before the first successful measurement.
const IdleImageName = "BladderSize.png"
