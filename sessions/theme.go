package sessions

import "github.com/reusee/taicalc/calcconfigs"

// Theme holds the ANSI sequences used by the session. All fields are empty
// when colors are disabled.
type Theme struct {
	Clear   string
	Reset   string
	Bold    string
	Dim     string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string
}

var ColorTheme = Theme{
	Clear:   "\033[H\033[2J",
	Reset:   "\033[0m",
	Bold:    "\033[1m",
	Dim:     "\033[2m",
	Red:     "\033[91m",
	Green:   "\033[92m",
	Yellow:  "\033[93m",
	Blue:    "\033[94m",
	Magenta: "\033[95m",
	Cyan:    "\033[96m",
	White:   "\033[97m",
}

func (Module) Theme(
	color calcconfigs.Color,
) Theme {
	if !color {
		return Theme{}
	}
	return ColorTheme
}
