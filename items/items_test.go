package items

import (
	"testing"

	"github.com/avery-laird/breaker/core/dimen"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

func TestItemAccessors(t *testing.T) {
	teardown := config(t)
	defer teardown()
	box := NewBox(3, "foo")
	assert.Equal(t, ITBox, box.Type())
	assert.Equal(t, dimen.Dimen(3), box.W())
	assert.Equal(t, dimen.Zero, box.Penalty())
	assert.False(t, box.Flagged())
	glue := NewGlue(1, 2, 3)
	assert.Equal(t, ITGlue, glue.Type())
	assert.Equal(t, dimen.Dimen(1), glue.W())
	assert.Equal(t, dimen.Dimen(2), glue.Stretch())
	assert.Equal(t, dimen.Dimen(3), glue.Shrink())
	assert.Equal(t, dimen.Zero, glue.Penalty())
	pen := NewPenalty(1, 50, true)
	assert.Equal(t, ITPenalty, pen.Type())
	assert.Equal(t, dimen.Dimen(1), pen.W())
	assert.Equal(t, dimen.Dimen(50), pen.Penalty())
	assert.True(t, pen.Flagged())
	assert.False(t, pen.IsForcedBreak())
	assert.False(t, pen.IsProhibited())
	assert.True(t, NewPenalty(0, dimen.MinInfty, false).IsForcedBreak())
	assert.True(t, NewPenalty(0, dimen.Infty, false).IsProhibited())
}

func TestFill(t *testing.T) {
	teardown := config(t)
	defer teardown()
	fill := NewFill()
	if !fill.Stretch().IsInfinite() {
		t.Errorf("finishing glue must stretch infinitely, got %s", fill.Stretch())
	}
	if fill.W() != 0 || fill.Shrink() != 0 {
		t.Errorf("finishing glue must have no width and no shrink")
	}
}

func TestTerminate(t *testing.T) {
	teardown := config(t)
	defer teardown()
	p := NewParagraph().AppendItem(NewBox(5, "hello"))
	if p.IsTerminated() {
		t.Errorf("open paragraph reported as terminated")
	}
	p.Terminate()
	if !p.IsTerminated() {
		t.Errorf("paragraph not terminated after Terminate")
	}
	if p.Length() != 3 {
		t.Errorf("terminated paragraph should have 3 items, has %d", p.Length())
	}
	p.Terminate() // idempotent
	if p.Length() != 3 {
		t.Errorf("Terminate appended to an already terminated paragraph")
	}
	glue, ok := p.At(1).(Glue)
	if !ok || !glue.Stretch().IsInfinite() {
		t.Errorf("expected the finishing glue before the forcing penalty, got %v", p.At(1))
	}
}

func TestBreakableAt(t *testing.T) {
	teardown := config(t)
	defer teardown()
	p := NewParagraph().
		AppendItem(NewGlue(1, 1, 1)).
		AppendItem(NewBox(3, "foo")).
		AppendItem(NewGlue(1, 1, 1)).
		AppendItem(NewGlue(1, 1, 1)).
		AppendItem(NewBox(3, "bar")).
		AppendItem(NewPenalty(0, dimen.Infty, false)).
		AppendItem(NewPenalty(1, 50, true))
	// glue at 0 has no box before it, glue at 3 follows glue, the penalty
	// at 5 is prohibited; that leaves the glue at 2 and the penalty at 6
	legal := []bool{false, false, true, false, false, false, true}
	for i, expect := range legal {
		if got := p.BreakableAt(i); got != expect {
			t.Errorf("BreakableAt(%d) = %v, expected %v", i, got, expect)
		}
	}
	if p.BreakableAt(-1) || p.BreakableAt(p.Length()) {
		t.Errorf("out of range positions are never breakable")
	}
}

func TestMeasure(t *testing.T) {
	teardown := config(t)
	defer teardown()
	p := NewParagraph().
		AppendItem(NewBox(3, "foo")).
		AppendItem(NewGlue(1, 2, 3)).
		AppendItem(NewPenalty(4, 50, true)).
		AppendItem(NewBox(3, "bar"))
	w, stretch, shrink := p.Measure(0, p.Length())
	assert.Equal(t, dimen.Dimen(7), w, "penalty width must not count")
	assert.Equal(t, dimen.Dimen(2), stretch)
	assert.Equal(t, dimen.Dimen(3), shrink)
}

func TestText(t *testing.T) {
	teardown := config(t)
	defer teardown()
	p := NewParagraph().
		AppendItem(NewBox(3, "foo")).
		AppendItem(NewGlue(1, 1, 1)).
		AppendItem(NewBox(3, "bar")).
		Terminate()
	if text := p.Text(0, 4); text != "foo bar" {
		t.Errorf("full text is '%s', should be 'foo bar'", text)
	}
	if text := p.Text(0, 1); text != "foo" {
		t.Errorf("first line is '%s', should be 'foo'", text)
	}
	if text := p.Text(1, 4); text != "bar" {
		t.Errorf("second line is '%s', should be 'bar'", text)
	}
}

func TestTextHyphen(t *testing.T) {
	teardown := config(t)
	defer teardown()
	p := NewParagraph().
		AppendItem(NewBox(5, "super")).
		AppendItem(NewPenalty(1, 50, true)).
		AppendItem(NewBox(5, "power")).
		Terminate()
	if text := p.Text(0, 1); text != "super-" {
		t.Errorf("hyphenated line is '%s', should be 'super-'", text)
	}
	if text := p.Text(0, p.Length()-1); text != "superpower" {
		t.Errorf("unbroken text is '%s', should be 'superpower'", text)
	}
}
