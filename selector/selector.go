package selector

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cssel/maybe"
)

// Selector is the common interface of selector chains and combined
// selectors. It is a closed interface; the only implementations are
// *Compound and *Composite.
type Selector interface {
	// Render produces the final selector string.
	Render() (string, error)
	// String returns the current textual form, without any validity check.
	String() string
	// current textual form, as captured by Combine
	text() string
}

var _ Selector = &Compound{}
var _ Selector = &Composite{}

// ErrEmptySelector flags a Render call on a chain without any parts.
var ErrEmptySelector = errors.New("cannot render empty selector")

// DuplicateSingletonPartError flags a second element or pseudo-element
// part applied to the same chain.
type DuplicateSingletonPartError struct {
	Kind Kind
}

func (e *DuplicateSingletonPartError) Error() string {
	return fmt.Sprintf("selector may contain at most one %s part", e.Kind)
}

// OutOfOrderPartError flags a part applied after a part of a
// higher-ordered kind.
type OutOfOrderPartError struct {
	Attempted Kind
	MaxSeen   Kind
}

func (e *OutOfOrderPartError) Error() string {
	return fmt.Sprintf("cannot apply %s part after %s part; required order is %s",
		e.Attempted, e.MaxSeen, requiredOrder)
}

// --- Selector chains -------------------------------------------------------

// Compound is a selector chain: a sequence of parts describing one
// simple or compound CSS selector, without combinators.
//
// Chains are started with one of the package-level part functions; each
// call starts a new, independent chain. The equally named methods
// extend an existing chain in place and hand it back, so that
// applications may either re-assign or keep the original variable.
type Compound struct {
	rendered string            // accumulated textual form
	used     uint8             // bitmask of kinds applied so far
	max      maybe.Maybe[Kind] // highest-ordered kind applied so far
}

// Element starts a new selector chain with an element (tag) name.
func Element(value string) *Compound {
	c, _ := (&Compound{}).part(KindElement, value)
	return c
}

// ID starts a new selector chain with an id part.
func ID(value string) *Compound {
	c, _ := (&Compound{}).part(KindID, value)
	return c
}

// Class starts a new selector chain with a class part.
func Class(value string) *Compound {
	c, _ := (&Compound{}).part(KindClass, value)
	return c
}

// Attr starts a new selector chain with an attribute expression.
func Attr(value string) *Compound {
	c, _ := (&Compound{}).part(KindAttribute, value)
	return c
}

// PseudoClass starts a new selector chain with a pseudo-class part.
func PseudoClass(value string) *Compound {
	c, _ := (&Compound{}).part(KindPseudoClass, value)
	return c
}

// PseudoElement starts a new selector chain with a pseudo-element part.
func PseudoElement(value string) *Compound {
	c, _ := (&Compound{}).part(KindPseudoElement, value)
	return c
}

// Element appends an element (tag) name. A chain may contain at most
// one element part, and it has to come before all other parts.
func (c *Compound) Element(value string) (*Compound, error) {
	return c.part(KindElement, value)
}

// ID appends an id part as '#value'.
func (c *Compound) ID(value string) (*Compound, error) {
	return c.part(KindID, value)
}

// Class appends a class part as '.value'. Classes may repeat.
func (c *Compound) Class(value string) (*Compound, error) {
	return c.part(KindClass, value)
}

// Attr appends an attribute expression as '[value]'. The expression is
// not parsed; e.g. Attr(`href$=".png"`) yields '[href$=".png"]'.
func (c *Compound) Attr(value string) (*Compound, error) {
	return c.part(KindAttribute, value)
}

// PseudoClass appends a pseudo-class part as ':value'.
func (c *Compound) PseudoClass(value string) (*Compound, error) {
	return c.part(KindPseudoClass, value)
}

// PseudoElement appends a pseudo-element part as '::value'. A chain may
// contain at most one pseudo-element part, and it has to come last.
func (c *Compound) PseudoElement(value string) (*Compound, error) {
	return c.part(KindPseudoElement, value)
}

// part applies a single part of kind k to the chain. A failed
// application leaves the chain untouched and returns it unchanged
// together with the error.
func (c *Compound) part(k Kind, value string) (*Compound, error) {
	if k.singleton() && c.used&k.bit() != 0 {
		return c, &DuplicateSingletonPartError{Kind: k}
	}
	if m := c.max.WithDefault(k); m > k {
		return c, &OutOfOrderPartError{Attempted: k, MaxSeen: m}
	}
	c.rendered += k.fragment(value)
	c.used |= k.bit()
	c.max = maybe.Just(k)
	tracer().Debugf("appended %s part, selector is now %q", k, c.rendered)
	return c, nil
}

// Render produces the selector string accumulated so far. Rendering a
// chain which never received a part fails with ErrEmptySelector.
func (c *Compound) Render() (string, error) {
	if c.used == 0 {
		return "", ErrEmptySelector
	}
	return c.rendered, nil
}

func (c *Compound) String() string {
	return c.rendered
}

func (c *Compound) text() string {
	return c.rendered
}
