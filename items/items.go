package items

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird
*/

import (
	"fmt"

	"github.com/avery-laird/breaker/core/dimen"
)

// Items implement the box/glue/penalty model for typesetting paragraphs,
// more or less corresponding to the node types of the TeX typesetting
// system.

// === Items =================================================================

// ItemType is a type for the different flavours of items.
type ItemType int8

// Item types
const (
	ITBox ItemType = iota
	ITGlue
	ITPenalty
)

func (t ItemType) String() string {
	switch t {
	case ITBox:
		return "box"
	case ITGlue:
		return "glue"
	case ITPenalty:
		return "penalty"
	}
	return fmt.Sprintf("ItemType(%d)", int8(t))
}

// An Item is the uniform view the line breaker has on a paragraph element.
// Every item answers every accessor: boxes and glue return 0 for Penalty()
// and false for Flagged(), boxes and penalties return 0 for Stretch() and
// Shrink().
type Item interface {
	Type() ItemType       // type identifier of this item
	W() dimen.Dimen       // natural width
	Stretch() dimen.Dimen // stretchability
	Shrink() dimen.Dimen  // shrinkability
	Penalty() dimen.Dimen // effective penalty
	Flagged() bool        // hyphen flag
}

// --- Box -------------------------------------------------------------------

// A Box is an unbreakable unit of typeset material. Its width may be zero
// or negative. Boxes carry their text so that drivers can render broken
// lines.
type Box struct {
	Width dimen.Dimen // width of the typeset material
	Text  string      // text, if available
}

// NewBox creates a box of the given width.
func NewBox(w dimen.Dimen, text string) Box {
	return Box{Width: w, Text: text}
}

// Type is part of interface Item.
func (b Box) Type() ItemType {
	return ITBox
}

func (b Box) String() string {
	return fmt.Sprintf("«%s»", b.Text)
}

// W is part of interface Item. Width of the box.
func (b Box) W() dimen.Dimen {
	return b.Width
}

// Stretch is part of interface Item. Boxes do not stretch.
func (b Box) Stretch() dimen.Dimen {
	return 0
}

// Shrink is part of interface Item. Boxes do not shrink.
func (b Box) Shrink() dimen.Dimen {
	return 0
}

// Penalty is part of interface Item. Returns 0.
func (b Box) Penalty() dimen.Dimen {
	return 0
}

// Flagged is part of interface Item. Boxes are never flagged.
func (b Box) Flagged() bool {
	return false
}

// --- Glue ------------------------------------------------------------------

// Glue is elastic space which can stretch and shrink. A glue item is a
// legal breakpoint iff it is immediately preceded by a box.
type Glue [3]dimen.Dimen

// NewGlue creates a drop of glue with natural width w, stretchability
// stretch and shrinkability shrink.
func NewGlue(w, stretch, shrink dimen.Dimen) Glue {
	return Glue{w, stretch, shrink}
}

// NewFill creates infinitely stretchable glue of width zero, as used to
// finish a paragraph.
func NewFill() Glue {
	return NewGlue(0, dimen.Infty, 0)
}

// Type is part of interface Item.
func (g Glue) Type() ItemType {
	return ITGlue
}

func (g Glue) String() string {
	return fmt.Sprintf("⧟%s", g[0])
}

// W is part of interface Item. Natural width of the glue.
func (g Glue) W() dimen.Dimen {
	return g[0]
}

// Stretch is part of interface Item. Stretchability of the glue.
func (g Glue) Stretch() dimen.Dimen {
	return g[1]
}

// Shrink is part of interface Item. Shrinkability of the glue.
func (g Glue) Shrink() dimen.Dimen {
	return g[2]
}

// Penalty is part of interface Item. Returns 0.
func (g Glue) Penalty() dimen.Dimen {
	return 0
}

// Flagged is part of interface Item. Glue is never flagged.
func (g Glue) Flagged() bool {
	return false
}

// --- Penalty ---------------------------------------------------------------

// A Penalty is an optional breakpoint with a cost. A cost of Infty forbids
// a break, a cost of MinInfty forces one. The width is added to a line
// only when the line actually breaks at the penalty (the hyphen case).
type Penalty struct {
	Width dimen.Dimen // width added when the break is taken
	Cost  dimen.Dimen // aesthetic cost of breaking here
	Flag  bool        // set for hyphenation breaks
}

// NewPenalty creates a penalty item.
func NewPenalty(w, cost dimen.Dimen, flagged bool) Penalty {
	return Penalty{Width: w, Cost: cost, Flag: flagged}
}

// Type is part of interface Item.
func (p Penalty) Type() ItemType {
	return ITPenalty
}

func (p Penalty) String() string {
	return fmt.Sprintf("⦻%s", p.Cost)
}

// W is part of interface Item. Width of the break material.
func (p Penalty) W() dimen.Dimen {
	return p.Width
}

// Stretch is part of interface Item. Penalties do not stretch.
func (p Penalty) Stretch() dimen.Dimen {
	return 0
}

// Shrink is part of interface Item. Penalties do not shrink.
func (p Penalty) Shrink() dimen.Dimen {
	return 0
}

// Penalty is part of interface Item. Cost of breaking at this item.
func (p Penalty) Penalty() dimen.Dimen {
	return p.Cost
}

// Flagged is part of interface Item.
func (p Penalty) Flagged() bool {
	return p.Flag
}

// IsForcedBreak returns true if this penalty forces a break.
func (p Penalty) IsForcedBreak() bool {
	return p.Cost <= dimen.MinInfty
}

// IsProhibited returns true if this penalty forbids a break.
func (p Penalty) IsProhibited() bool {
	return p.Cost >= dimen.Infty
}

var _ Item = Box{}
var _ Item = Glue{}
var _ Item = Penalty{}
