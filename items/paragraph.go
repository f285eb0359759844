package items

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird
*/

import (
	"bytes"
	"strings"

	"github.com/avery-laird/breaker/core/dimen"
)

// === Paragraphs ============================================================

// A Paragraph is an ordered sequence of items. A well-formed paragraph is
// closed by the finishing glue (0, ∞, 0) and a forcing penalty, so that the
// final line may stretch freely and a break at the very end is guaranteed.
type Paragraph struct {
	items []Item
}

// NewParagraph creates an empty paragraph.
func NewParagraph() *Paragraph {
	p := &Paragraph{}
	p.items = make([]Item, 0, 50)
	return p
}

// Length gives the number of items in the paragraph.
func (p *Paragraph) Length() int {
	return len(p.items)
}

// At returns the item at position i, or nil if i is out of range.
func (p *Paragraph) At(i int) Item {
	if i < 0 || i >= len(p.items) {
		return nil
	}
	return p.items[i]
}

// AppendItem appends an item at the end of the paragraph.
func (p *Paragraph) AppendItem(item Item) *Paragraph {
	p.items = append(p.items, item)
	return p
}

// Terminate closes the paragraph with the finishing glue and a forcing
// penalty, unless it is already terminated.
func (p *Paragraph) Terminate() *Paragraph {
	if p.IsTerminated() {
		return p
	}
	return p.AppendItem(NewFill()).AppendItem(NewPenalty(0, dimen.MinInfty, false))
}

// IsTerminated checks the closing invariant: the last item of the
// paragraph is a penalty forcing a break.
func (p *Paragraph) IsTerminated() bool {
	if len(p.items) == 0 {
		return false
	}
	pen, ok := p.items[len(p.items)-1].(Penalty)
	return ok && pen.IsForcedBreak()
}

// BreakableAt reports whether item i is a legal breakpoint: a glue
// immediately preceded by a box, or a penalty with cost below ∞.
func (p *Paragraph) BreakableAt(i int) bool {
	if i < 0 || i >= len(p.items) {
		return false
	}
	switch item := p.items[i].(type) {
	case Glue:
		return i > 0 && p.items[i-1].Type() == ITBox
	case Penalty:
		return !item.IsProhibited()
	}
	return false
}

// Measure returns the widths of the item range [from ... to-1]: natural
// width, stretchability and shrinkability. Penalty widths are not counted,
// they contribute only when a line breaks at the penalty.
func (p *Paragraph) Measure(from, to int) (w, stretch, shrink dimen.Dimen) {
	to = iMin(to, len(p.items))
	for i := iMax(from, 0); i < to; i++ {
		item := p.items[i]
		if item.Type() == ITPenalty {
			continue
		}
		w += item.W()
		stretch += item.Stretch()
		shrink += item.Shrink()
	}
	return w, stretch, shrink
}

// Text returns the text content of the item range [from ... to-1], rendered
// as a single line: box texts separated by one space per glue run. Leading
// discardables are skipped, as a break consumes the glue it sits on. If the
// item at position to is a flagged penalty carrying width, the hyphen
// character is appended (the line is assumed to break there).
func (p *Paragraph) Text(from, to int) string {
	var b bytes.Buffer
	to = iMin(to, len(p.items))
	started := false
	spacecnt := 0
	for i := iMax(from, 0); i < to; i++ {
		switch item := p.items[i].(type) {
		case Box:
			b.WriteString(item.Text)
			started = true
			spacecnt = 0
		case Glue:
			if started && spacecnt == 0 {
				b.WriteString(" ")
				spacecnt++
			}
		}
	}
	text := strings.TrimRight(b.String(), " ")
	if to < len(p.items) {
		if pen, ok := p.items[to].(Penalty); ok && pen.Flag && pen.Width != 0 {
			text += "-"
		}
	}
	return text
}

// Debug representation of a paragraph.
func (p *Paragraph) String() string {
	var b bytes.Buffer
	b.WriteString("\\par{")
	for i, item := range p.items {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(itemString(item))
	}
	b.WriteString("}")
	return b.String()
}

func itemString(item Item) string {
	switch it := item.(type) {
	case Box:
		return it.String()
	case Glue:
		return it.String()
	case Penalty:
		return it.String()
	}
	return "yes, it is an item"
}

// ----------------------------------------------------------------------

func iMin(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func iMax(x, y int) int {
	if x > y {
		return x
	}
	return y
}
