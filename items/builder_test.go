package items

import (
	"strings"
	"testing"

	"github.com/avery-laird/breaker/core/dimen"
	"github.com/npillmayer/schuko/testconfig"
)

func TestBuildParagraph(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tokens := []Token{
		{Kind: TokenWord, Text: "foo"},
		{Kind: TokenSpace},
		{Kind: TokenWord, Text: "su"},
		{Kind: TokenSoftHyphen},
		{Kind: TokenWord, Text: "per"},
	}
	p := BuildParagraph(tokens, Monospace(1))
	if !p.IsTerminated() {
		t.Fatalf("built paragraph is not terminated")
	}
	kinds := []ItemType{ITBox, ITGlue, ITBox, ITPenalty, ITBox, ITGlue, ITPenalty}
	if p.Length() != len(kinds) {
		t.Fatalf("paragraph has %d items, expected %d: %s", p.Length(), len(kinds), p)
	}
	for i, kind := range kinds {
		if p.At(i).Type() != kind {
			t.Errorf("item %d is a %s, expected a %s", i, p.At(i).Type(), kind)
		}
	}
	if p.At(0).W() != 3 {
		t.Errorf("width of 'foo' should be 3, is %s", p.At(0).W())
	}
	pen := p.At(3).(Penalty)
	if !pen.Flag || pen.Width != 1 || pen.Cost != HyphenPenalty {
		t.Errorf("soft hyphen should become a flagged penalty of width 1, got %v", pen)
	}
	final := p.At(p.Length() - 1).(Penalty)
	if !final.IsForcedBreak() {
		t.Errorf("paragraph must end with a forced break")
	}
}

func TestMonospace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := Monospace(2)
	if w := m.WordWidth("héllo"); w != 10 {
		t.Errorf("monospace width counts runes, got %s", w)
	}
	w, stretch, shrink := m.SpaceGlue()
	if w != 2 || stretch != 1 || dimen.Abs(shrink-2.0/3.0) > 1e-9 {
		t.Errorf("unexpected space glue (%s, %s, %s)", w, stretch, shrink)
	}
}

func TestBuilderGlueLegality(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	var tokens []Token
	for i, word := range strings.Fields("one two three") {
		if i > 0 {
			tokens = append(tokens, Token{Kind: TokenSpace})
		}
		tokens = append(tokens, Token{Kind: TokenWord, Text: word})
	}
	p := BuildParagraph(tokens, Monospace(1))
	for i := 0; i < p.Length(); i++ {
		if p.At(i).Type() == ITGlue && i < p.Length()-2 {
			if !p.BreakableAt(i) {
				t.Errorf("inter-word glue at %d should be a legal break", i)
			}
		}
	}
}
