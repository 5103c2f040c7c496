package taicalc

// AllowedCharacters lists every rune that may appear in a raw expression.
const AllowedCharacters = "0123456789+-*/().% abcdefghijklmnopqrstuvwxyz,^"

var allowedTable = func() (ret [128]bool) {
	for _, r := range AllowedCharacters {
		ret[r] = true
	}
	return
}()

func IsAllowedCharacter(r rune) bool {
	return r >= 0 && r < 128 && allowedTable[r]
}

func scanCharacters(raw string) error {
	for i, r := range raw {
		if !IsAllowedCharacter(r) {
			return &Error{
				Kind: KindForbiddenCharacter,
				Pos:  i,
				Char: r,
			}
		}
	}
	return nil
}

// normalize rewrites the caret to the power operator. offsets maps each byte of
// the returned string back to its offset in raw.
func normalize(raw string) (string, []int) {
	buf := make([]byte, 0, len(raw)+4)
	offsets := make([]int, 0, len(raw)+4)
	for i := 0; i < len(raw); i++ {
		if raw[i] == '^' {
			buf = append(buf, '*', '*')
			offsets = append(offsets, i, i)
			continue
		}
		buf = append(buf, raw[i])
		offsets = append(offsets, i)
	}
	return string(buf), offsets
}
