package selector

// Kind classifies the parts a selector chain is built from. The numeric
// order of the kinds is at the same time the relative order in which
// parts have to be applied to a chain.
type Kind int8

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// kinds holds the per-kind metadata: display name, textual decoration
// of the part value, and whether at most one part of this kind may
// occur per chain.
var kinds = [...]struct {
	name      string
	prefix    string
	suffix    string
	singleton bool
}{
	KindElement:       {name: "element", singleton: true},
	KindID:            {name: "id", prefix: "#"},
	KindClass:         {name: "class", prefix: "."},
	KindAttribute:     {name: "attribute", prefix: "[", suffix: "]"},
	KindPseudoClass:   {name: "pseudo-class", prefix: ":"},
	KindPseudoElement: {name: "pseudo-element", prefix: "::", singleton: true},
}

// requiredOrder names the application order for error messages.
const requiredOrder = "element, id, class, attribute, pseudo-class, pseudo-element"

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "invalid"
	}
	return kinds[k].name
}

// fragment decorates a part value, e.g. "main" → "#main" for KindID.
func (k Kind) fragment(value string) string {
	return kinds[k].prefix + value + kinds[k].suffix
}

func (k Kind) singleton() bool {
	return kinds[k].singleton
}

// bit is k's position in the used-kinds bitmask of a chain.
func (k Kind) bit() uint8 {
	return 1 << uint8(k)
}
