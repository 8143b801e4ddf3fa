package command

import (
	"sort"
	"strings"
)

// Fields is the result of splitting a command remainder on field markers.
//
// Text before the first marker is the preamble. A marker is only recognized
// at the start of the input or directly after a space, so "n/" inside a word
// is left alone. Markers may repeat.
type Fields struct {
	Preamble string
	values   map[string][]string
}

// ParseFields splits s on the given markers (for example "n/", "rm/").
func ParseFields(s string, markers ...string) Fields {
	return parseFields(s, markers, nil)
}

// ParseIndexedFields is ParseFields where the markers in indexed only count
// when a digit follows them, so "e/2 text" starts a field but "e/mail" is
// plain text.
func ParseIndexedFields(s string, indexed []string, markers ...string) Fields {
	only := make(map[string]bool, len(indexed))
	for _, m := range indexed {
		only[m] = true
	}
	all := append(append([]string(nil), markers...), indexed...)
	return parseFields(s, all, only)
}

func parseFields(s string, markers []string, indexed map[string]bool) Fields {
	sorted := append([]string(nil), markers...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	type hit struct {
		pos    int
		marker string
	}
	var hits []hit
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i-1] != ' ' {
			continue
		}
		for _, m := range sorted {
			if strings.HasPrefix(s[i:], m) {
				if indexed[m] && !digitAt(s, i+len(m)) {
					continue
				}
				hits = append(hits, hit{pos: i, marker: m})
				i += len(m) - 1
				break
			}
		}
	}

	f := Fields{values: make(map[string][]string)}
	if len(hits) == 0 {
		f.Preamble = strings.TrimSpace(s)
		return f
	}
	f.Preamble = strings.TrimSpace(s[:hits[0].pos])
	for n, h := range hits {
		end := len(s)
		if n+1 < len(hits) {
			end = hits[n+1].pos
		}
		value := strings.TrimSpace(s[h.pos+len(h.marker) : end])
		f.values[h.marker] = append(f.values[h.marker], value)
	}
	return f
}

func digitAt(s string, i int) bool {
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

// Has reports whether the marker appeared at least once.
func (f Fields) Has(marker string) bool {
	return len(f.values[marker]) > 0
}

// Get returns the last value given for marker.
func (f Fields) Get(marker string) (string, bool) {
	vals := f.values[marker]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// All returns every value given for marker, in input order.
func (f Fields) All(marker string) []string {
	return f.values[marker]
}

// Empty reports whether no marker appeared.
func (f Fields) Empty() bool {
	return len(f.values) == 0
}
