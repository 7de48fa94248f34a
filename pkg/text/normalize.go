package text

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unescape turns literal escape sequences left over from JSON or model
// output into real characters and drops a single pair of wrapping quotes.
// Unknown or malformed sequences are kept as written.
func Unescape(text string) string {
	text = unescape(text)
	text = strings.TrimSpace(text)

	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	}

	return strings.TrimSpace(text)
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}

		switch c := s[i+1]; c {
		case 'n':
			b.WriteByte('\n')
			i += 2

		case 'r':
			b.WriteByte('\n')
			i += 2

			if strings.HasPrefix(s[i:], `\n`) {
				i += 2
			}

		case 't':
			b.WriteByte('\t')
			i += 2

		case '"', '\'', '\\':
			b.WriteByte(c)
			i += 2

		case 'x':
			if r, ok := parseHex(s[i+2:], 2); ok {
				b.WriteRune(r)
				i += 4
				continue
			}

			b.WriteString(s[i : i+2])
			i += 2

		case 'u':
			r, ok := parseHex(s[i+2:], 4)

			if !ok {
				b.WriteString(s[i : i+2])
				i += 2
				continue
			}

			i += 6

			if utf16.IsSurrogate(r) && strings.HasPrefix(s[i:], `\u`) {
				if low, ok := parseHex(s[i+2:], 4); ok {
					if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
						r = pair
						i += 6
					}
				}
			}

			b.WriteRune(r)

		case 'U':
			if r, ok := parseHex(s[i+2:], 8); ok && utf8.ValidRune(r) {
				b.WriteRune(r)
				i += 10
				continue
			}

			b.WriteString(s[i : i+2])
			i += 2

		default:
			b.WriteString(s[i : i+2])
			i += 2
		}
	}

	return b.String()
}

func parseHex(s string, n int) (rune, bool) {
	if len(s) < n {
		return 0, false
	}

	v, err := strconv.ParseUint(s[:n], 16, 32)

	if err != nil {
		return 0, false
	}

	return rune(v), true
}
