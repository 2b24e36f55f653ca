package tagid

import "strings"

// Kind selects which range a tag identifier is drawn from.
type Kind string

const (
	KindIP      Kind = "ip"
	KindChar    Kind = "char"
	KindGeneral Kind = "general"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min int
	Max int
}

// Width is the number of values in the range.
func (r Range) Width() int {
	return r.Max - r.Min + 1
}

func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

var (
	ipRange      = Range{Min: 1, Max: 1000}
	charRange    = Range{Min: 1001, Max: 9999}
	generalRange = Range{Min: 10000, Max: 99999}
)

// Kinds returns every tag kind in ascending range order.
func Kinds() []Kind {
	return []Kind{KindIP, KindChar, KindGeneral}
}

// RangeFor returns the inclusive range for kind.
func RangeFor(kind Kind) (Range, bool) {
	switch kind {
	case KindIP:
		return ipRange, true
	case KindChar:
		return charRange, true
	case KindGeneral:
		return generalRange, true
	default:
		return Range{}, false
	}
}

// ParseKind maps a kind name or alias to its canonical Kind.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ip", "ip-tag", "ip_tag", "iptag":
		return KindIP, nil
	case "char", "character", "char-tag", "char_tag", "chartag":
		return KindChar, nil
	case "general", "gen", "general-tag", "general_tag", "generaltag":
		return KindGeneral, nil
	default:
		return "", unknownKindError(Kind(value))
	}
}

func (k Kind) String() string {
	return string(k)
}
