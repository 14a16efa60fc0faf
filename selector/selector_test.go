package selector_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssel/result"
	"github.com/npillmayer/cssel/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestChainSingleParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	cases := []struct {
		sel  *selector.Compound
		want string
	}{
		{selector.Element("div"), "div"},
		{selector.ID("main"), "#main"},
		{selector.Class("container"), ".container"},
		{selector.Attr(`href$=".png"`), `[href$=".png"]`},
		{selector.PseudoClass("focus"), ":focus"},
		{selector.PseudoElement("first-line"), "::first-line"},
	}
	for _, c := range cases {
		s, err := c.sel.Render()
		require.NoError(t, err)
		require.Equal(t, c.want, s)
	}
}

func TestChainInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel, err := selector.Element("div").ID("main")
	require.NoError(t, err)
	sel, err = sel.Class("container")
	require.NoError(t, err)
	sel, err = sel.Class("draggable")
	require.NoError(t, err)
	s, err := sel.Render()
	require.NoError(t, err)
	require.Equal(t, "div#main.container.draggable", s)
}

func TestChainAttrAndPseudoClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel, err := selector.Element("a").Attr(`href$=".png"`)
	require.NoError(t, err)
	sel, err = sel.PseudoClass("focus")
	require.NoError(t, err)
	s, err := sel.Render()
	require.NoError(t, err)
	require.Equal(t, `a[href$=".png"]:focus`, s)
}

func TestChainAllKindsInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel := selector.Element("input")
	for _, step := range []func() (*selector.Compound, error){
		func() (*selector.Compound, error) { return sel.ID("age") },
		func() (*selector.Compound, error) { return sel.Class("form-field") },
		func() (*selector.Compound, error) { return sel.Attr("type=number") },
		func() (*selector.Compound, error) { return sel.PseudoClass("invalid") },
		func() (*selector.Compound, error) { return sel.PseudoElement("placeholder") },
	} {
		var err error
		sel, err = step()
		require.NoError(t, err)
	}
	s, err := sel.Render()
	require.NoError(t, err)
	require.Equal(t, "input#age.form-field[type=number]:invalid::placeholder", s)
}

func TestChainDuplicateElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel := selector.Element("div")
	_, err := sel.Element("p")
	if err == nil {
		t.Fatal("expected second element part to fail, didn't")
	}
	var dup *selector.DuplicateSingletonPartError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateSingletonPartError, got %T: %v", err, err)
	}
	if dup.Kind != selector.KindElement {
		t.Errorf("expected offending kind to be element, is %s", dup.Kind)
	}
	// the failed call must not have touched the chain
	s, rerr := sel.Render()
	if rerr != nil || s != "div" {
		t.Errorf("expected chain to still render as 'div', is %q (err %v)", s, rerr)
	}
}

func TestChainDuplicatePseudoElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel := selector.PseudoElement("before")
	_, err := sel.PseudoElement("after")
	var dup *selector.DuplicateSingletonPartError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateSingletonPartError, got %T: %v", err, err)
	}
	if dup.Kind != selector.KindPseudoElement {
		t.Errorf("expected offending kind to be pseudo-element, is %s", dup.Kind)
	}
}

func TestChainOutOfOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel := selector.ID("main")
	_, err := sel.Element("div")
	if err == nil {
		t.Fatal("expected element part after id part to fail, didn't")
	}
	var ooo *selector.OutOfOrderPartError
	if !errors.As(err, &ooo) {
		t.Fatalf("expected OutOfOrderPartError, got %T: %v", err, err)
	}
	if ooo.Attempted != selector.KindElement || ooo.MaxSeen != selector.KindID {
		t.Errorf("expected error to report element after id, reports %s after %s",
			ooo.Attempted, ooo.MaxSeen)
	}
	s, rerr := sel.Render()
	if rerr != nil || s != "#main" {
		t.Errorf("expected chain to still render as '#main', is %q (err %v)", s, rerr)
	}
}

func TestChainRepeatableKindsMayRepeat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel := selector.Class("x")
	for i := 0; i < 2; i++ {
		var err error
		sel, err = sel.Class("x")
		require.NoError(t, err)
	}
	s, err := sel.Render()
	require.NoError(t, err)
	require.Equal(t, ".x.x.x", s)
}

func TestChainRenderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	sel := &selector.Compound{}
	_, err := sel.Render()
	if !errors.Is(err, selector.ErrEmptySelector) {
		t.Errorf("expected ErrEmptySelector for part-less chain, got %v", err)
	}
	if sel.String() != "" {
		t.Errorf("expected empty chain to stringify to \"\", is %q", sel.String())
	}
}

func TestChainsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	a := selector.Element("a")
	b := selector.Element("div")
	_, err := a.ID("x")
	require.NoError(t, err)
	s, err := b.Render()
	require.NoError(t, err)
	if s != "div" {
		t.Errorf("expected second chain to render only its own parts, is %q", s)
	}
	s, err = a.Render()
	require.NoError(t, err)
	if s != "a#x" {
		t.Errorf("expected first chain to render 'a#x', is %q", s)
	}
}

func TestChainResultMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssel.selector")
	defer teardown()
	//
	r := result.Of(selector.Element("div").ID("main"))
	var sel *selector.Compound
	var err error
	switch m := r.Match(); m {
	case m.Ok(&sel):
		t.Logf("Ok(%s)", sel)
	case m.Err(&err):
		t.Fatalf("expected Ok result, is Err: %v", err)
	}

	r = result.Of(selector.PseudoClass("hover").Element("div"))
	switch m := r.Match(); m {
	case m.Ok(&sel):
		t.Error("expected Err result for out-of-order part, is Ok")
	case m.Err(&err):
		t.Logf("Err: %s", err.Error())
	}
}
