package sessions

import (
	"github.com/reusee/taicalc/operations"
	"github.com/reusee/taicalc/taicalc"
)

const bannerArt = `
    ██████╗ █████╗ ██╗      ██████╗
   ██╔════╝██╔══██╗██║     ██╔════╝
   ██║     ███████║██║     ██║
   ██║     ██╔══██║██║     ██║
   ╚██████╗██║  ██║███████╗╚██████╗
    ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝
`

func (s *Session) clearScreen() {
	s.printf("%s", s.theme.Clear)
	if s.banner {
		s.printf("\n%s%s%s%s\n", s.theme.Cyan, s.theme.Bold, bannerArt, s.theme.Reset)
		s.printf("%s  ⚡ taicalc ⚡%s\n", s.theme.Yellow, s.theme.Reset)
		s.printf("%s  ─────────────────────────────────────────%s\n\n", s.theme.Dim, s.theme.Reset)
	}
}

type menuEntry struct {
	key  string
	name string
}

func menuEntries() (ret []menuEntry) {
	for _, op := range operations.All {
		ret = append(ret, menuEntry{op.Key, op.Name})
	}
	ret = append(ret,
		menuEntry{"9", "Expression Mode"},
		menuEntry{"H", "History"},
		menuEntry{"C", "Clear Screen"},
		menuEntry{"Q", "Quit"},
	)
	return
}

func (s *Session) printMenu() {
	t := s.theme
	s.printf("\n%s%s  ┌─────────── OPERATIONS ───────────┐%s\n", t.Green, t.Bold, t.Reset)
	s.printf("%s  │                                  │\n", t.Green)
	for _, entry := range menuEntries() {
		s.printf("  │  %s[%s]%s  %-26s│\n", t.White, entry.key, t.Green, entry.name)
	}
	s.printf("  │                                  │\n")
	s.printf("  └──────────────────────────────────┘%s\n\n", t.Reset)
}

func (s *Session) printResult(expression string, value float64) {
	t := s.theme
	s.printf("\n%s  ┌──────────── RESULT ────────────┐%s\n", t.Magenta, t.Reset)
	s.printf("%s  │%s  %s%s%s\n", t.Magenta, t.Reset, t.Dim, expression, t.Reset)
	s.printf("%s  │%s\n", t.Magenta, t.Reset)
	s.printf("%s  │%s  %s%s= %s%s\n", t.Magenta, t.Reset, t.Bold, t.Yellow, taicalc.FormatResult(value), t.Reset)
	s.printf("%s  └────────────────────────────────┘%s\n\n", t.Magenta, t.Reset)
}

func (s *Session) printHistory() {
	t := s.theme
	s.printf("\n%s%s  ┌──────────── HISTORY ───────────┐%s\n", t.Blue, t.Bold, t.Reset)
	if s.history.Len() == 0 {
		s.printf("%s  │  No calculations yet.%s\n", t.Dim, t.Reset)
	}
	for i, record := range s.history.Records() {
		s.printf("%s  │%s %s%d.%s %s\n", t.Blue, t.Reset, t.Dim, i, t.Reset, record)
	}
	s.printf("%s  └────────────────────────────────┘%s\n\n", t.Blue, t.Reset)
}
