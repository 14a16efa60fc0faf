package selector

// Composite is a selector combined from two operand selectors and a
// combinator token. It is immutable from creation: no parts can be
// applied to it, it can only be rendered or combined further.
type Composite struct {
	combined    string // operands' text joined at combine time
	left, right Selector
	comb        string
}

// Combine joins two selectors with a CSS combinator, e.g.
//
//	selector.Combine(a, ">", b)
//
// The token is inserted verbatim with a single space on each side; it
// is not checked against the CSS combinator set { ' ', '+', '~', '>' }.
// Note that the descendant combinator " " therefore produces three
// spaces between the operands.
//
// Both operands' current textual form is captured at combine time;
// extending an operand chain afterwards does not change the composite.
func Combine(a Selector, combinator string, b Selector) *Composite {
	comp := &Composite{
		combined: a.text() + " " + combinator + " " + b.text(),
		left:     a,
		right:    b,
		comb:     combinator,
	}
	tracer().Debugf("combined selector %q", comp.combined)
	return comp
}

// Render produces the combined selector string. It cannot fail; the
// error return mirrors Compound.Render for interface Selector.
func (c *Composite) Render() (string, error) {
	return c.combined, nil
}

func (c *Composite) String() string {
	return c.combined
}

func (c *Composite) text() string {
	return c.combined
}

// Left returns the first operand, for walking the combinator tree.
func (c *Composite) Left() Selector {
	return c.left
}

// Right returns the second operand, for walking the combinator tree.
func (c *Composite) Right() Selector {
	return c.right
}

// Combinator returns the combinator token joining the operands.
func (c *Composite) Combinator() string {
	return c.comb
}
