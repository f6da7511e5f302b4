package format

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DefaultDatePattern is the pattern Date falls back to when none is given.
const DefaultDatePattern = "YYYY-MM-DD[T]HH:mm:ss.SSSZ"

// momentTokens maps moment-style pattern tokens to Go reference layout
// fragments, longest token first so the scanner can match greedily.
var momentTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"ZZ", "-0700"},
	{"Z", "Z07:00"},
	{"A", "PM"},
	{"a", "pm"},
}

// momentLayout translates a moment-style pattern into a Go time layout.
// Bracketed runs are literals, as in moment.
func momentLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i:], ']')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				break
			}
			b.WriteString(pattern[i+1 : i+end])
			i += end + 1
			continue
		}
		matched := false
		for _, t := range momentTokens {
			if strings.HasPrefix(pattern[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// dateStep builds the parse-only read step for Date. time.Time values pass
// through; anything unparseable degrades to undefined.
func dateStep(pattern string) StepFunc {
	layout := momentLayout(pattern)
	return func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		if t, ok := v.(time.Time); ok {
			return t, nil
		}
		s, err := cast.ToStringE(v)
		if err != nil || s == "" {
			return nil, nil
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, nil
		}
		return t, nil
	}
}
