package naming

import "strings"

// Mode selects which of the two orderings a raw name uses.
type Mode int

const (
	ModeParameter Mode = iota
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeParameter:
		return "parameter"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// ParseMode accepts "parameter" or "command" (case-insensitive, with the
// short aliases "param" and "cmd").
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "parameter", "param", "":
		return ModeParameter, nil
	case "command", "cmd":
		return ModeCommand, nil
	default:
		return ModeParameter, ErrUnknownMode
	}
}
