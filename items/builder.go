package items

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird
*/

import (
	"unicode/utf8"

	"github.com/avery-laird/breaker/core/dimen"
)

// === Tokens ================================================================

// TokenKind is a type for the builder's input token types.
type TokenKind int8

// Token kinds
const (
	TokenWord       TokenKind = iota // a run of non-whitespace material
	TokenSpace                       // an inter-word gap
	TokenSoftHyphen                  // a hyphenation opportunity inside a word
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenSpace:
		return "space"
	case TokenSoftHyphen:
		return "soft-hyphen"
	}
	return "token"
}

// A Token is one element of the builder's input stream.
type Token struct {
	Kind TokenKind
	Text string
}

// === Measuring =============================================================

// A Measurer supplies the widths the builder cannot know itself: it is the
// voice of the rendering environment. The builder queries it once per
// token; the line breaker never queries it at all.
type Measurer interface {
	WordWidth(word string) dimen.Dimen           // width of a word part
	SpaceGlue() (w, stretch, shrink dimen.Dimen) // glue triple for an inter-word gap
	HyphenWidth() dimen.Dimen                    // width of the hyphen character
}

type monospace dimen.Dimen

// Monospace returns a measurer for a fixed-width environment: every rune
// measures unit, spaces get the customary elasticity of half a unit of
// stretch and a third of a unit of shrink.
func Monospace(unit dimen.Dimen) Measurer {
	return monospace(unit)
}

func (m monospace) WordWidth(word string) dimen.Dimen {
	return dimen.Dimen(m) * dimen.Dimen(utf8.RuneCountInString(word))
}

func (m monospace) SpaceGlue() (dimen.Dimen, dimen.Dimen, dimen.Dimen) {
	u := dimen.Dimen(m)
	return u, u / 2, u / 3
}

func (m monospace) HyphenWidth() dimen.Dimen {
	return dimen.Dimen(m)
}

// === Building ==============================================================

// HyphenPenalty is the cost attached to breaking at a soft hyphen.
var HyphenPenalty dimen.Dimen = 50

// BuildParagraph converts a token stream into a well-formed paragraph:
// words become boxes, inter-word gaps become glue, soft hyphens become
// flagged penalties carrying the measured hyphen width. The paragraph is
// always terminated with the finishing glue and the forcing penalty.
func BuildParagraph(tokens []Token, measure Measurer) *Paragraph {
	para := NewParagraph()
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenWord:
			para.AppendItem(NewBox(measure.WordWidth(tok.Text), tok.Text))
		case TokenSpace:
			w, stretch, shrink := measure.SpaceGlue()
			para.AppendItem(NewGlue(w, stretch, shrink))
		case TokenSoftHyphen:
			para.AppendItem(NewPenalty(measure.HyphenWidth(), HyphenPenalty, true))
		}
	}
	T().Debugf("built paragraph of %d items", para.Length()+2)
	return para.Terminate()
}
