package knuthplass

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird
*/

import (
	"errors"
	"math"

	"github.com/avery-laird/breaker/core/dimen"
	"github.com/avery-laird/breaker/items"
	"github.com/avery-laird/breaker/linebreak"
	"github.com/emirpasic/gods/lists/arraylist"
)

// Errors signalled for malformed input. An infeasible paragraph is not an
// error: the breaker recovers by admitting an overfull line (see Breaks).
var (
	// ErrNotTerminated means the paragraph does not end with a penalty
	// forcing a break.
	ErrNotTerminated = errors.New("paragraph is not terminated by a forced break")
	// ErrNoParShape means there is no line-length schedule to fit lines to.
	ErrNoParShape = errors.New("cannot break a paragraph without a par shape")
)

// Breaks is the result of breaking one paragraph.
//
// Positions[0] is always 0, the start of the paragraph; Positions[k] is the
// index of the item at which line k ends. Ratios[k] is the adjustment ratio
// chosen for line k (the entry at index 0 is unused). A ratio below -1
// marks a line the breaker could only place overfull.
type Breaks struct {
	Positions []int     // breakpoint positions, one more than lines
	Ratios    []float64 // adjustment ratio per line
	Demerits  float64   // total demerits of the chosen breakpoint sequence
}

// Lines returns the number of lines of the broken paragraph.
func (br *Breaks) Lines() int {
	return len(br.Positions) - 1
}

// --- Active nodes -----------------------------------------------------

const null = int32(-1)

// A node is a tentative breakpoint reached by the search: the head of a
// feasible prefix of breakpoints. Nodes live in the breaker's arena and
// never move; previous and link are arena indices. Deactivating a node
// merely unlinks it from the active list, the passive registry keeps it
// reachable for predecessor traversal.
type node struct {
	position      int         // index into the item sequence
	line          int         // number of the line ending at this breakpoint
	fitness       int         // fitness class of that line
	totalwidth    dimen.Dimen // Σw up to and just after this breakpoint
	totalstretch  dimen.Dimen // Σy up to and just after this breakpoint
	totalshrink   dimen.Dimen // Σz up to and just after this breakpoint
	totaldemerits float64     // minimum cumulative demerits to reach this node
	ratio         float64     // adjustment ratio of the line ending here
	previous      int32       // predecessor realising the minimum
	link          int32       // successor in the active list
}

// linebreaker is the per-call state of the algorithm. A linebreaker serves
// a single paragraph and is not shared; independent calls may run in
// parallel, each owning its arena.
type linebreaker struct {
	par              *items.Paragraph
	parshape         linebreak.ParShape
	params           *linebreak.Parameters
	nodes            []node          // arena of nodes, never moved
	head             int32           // head of the active list
	passive          *arraylist.List // deactivated nodes, newest last
	sumW, sumY, sumZ dimen.Dimen     // running Σw, Σy, Σz of the outer scan
	easyline         int             // first line number of the constant tail
}

func newLinebreaker(par *items.Paragraph, parshape linebreak.ParShape,
	params *linebreak.Parameters) *linebreaker {
	//
	kp := &linebreaker{
		par:      par,
		parshape: parshape,
		params:   params,
		nodes:    make([]node, 0, 64),
		passive:  arraylist.New(),
		easyline: math.MaxInt32,
	}
	if params.Looseness == 0 {
		// with looseness, every line-count variant has to survive to the
		// end, so the per-line batching must never be relaxed
		if easy, ok := parshape.(interface{ EasyLine() int }); ok {
			kp.easyline = easy.EasyLine()
		}
	}
	kp.head = kp.alloc(node{
		fitness:  linebreak.Normal,
		previous: null,
		link:     null,
	})
	return kp
}

func (kp *linebreaker) alloc(n node) int32 {
	kp.nodes = append(kp.nodes, n)
	return int32(len(kp.nodes) - 1)
}

// --- Main API ---------------------------------------------------------

// BreakParagraph determines optimal linebreaks for a paragraph, given the
// desired shape of the paragraph and a set of line-breaking parameters
// (nil selects linebreak.DefaultParameters).
//
// The paragraph must be terminated as by Paragraph.Terminate; parshape
// must not be nil. Other than that the call always produces a breakpoint
// sequence: when no feasible fit exists, single overfull lines are
// admitted and show up in the result with a ratio below -1, or with a
// ratio of exactly -1 where the line has no shrink at all.
func BreakParagraph(par *items.Paragraph, parshape linebreak.ParShape,
	params *linebreak.Parameters) (*Breaks, error) {
	//
	if par == nil || !par.IsTerminated() {
		return nil, ErrNotTerminated
	}
	if parshape == nil {
		return nil, ErrNoParShape
	}
	if params == nil {
		params = linebreak.DefaultParameters()
	}
	kp := newLinebreaker(par, parshape, params)
	kp.findBreakpoints()
	return kp.reconstruct(kp.chooseNode()), nil
}

// findBreakpoints is the outer scan: it walks the item sequence, keeps the
// running Σw, Σy, Σz and fires the main loop at every legal breakpoint.
// Glue is a legal breakpoint iff immediately preceded by a box; a penalty
// is a legal breakpoint iff its cost is below ∞. The width of a penalty is
// not added to the running sums, it counts only when a line actually
// breaks there.
func (kp *linebreaker) findBreakpoints() {
	m := kp.par.Length()
	for b := 0; b < m; b++ {
		item := kp.par.At(b)
		switch item.Type() {
		case items.ITBox:
			kp.sumW += item.W()
		case items.ITGlue:
			if b > 0 && kp.par.At(b-1).Type() == items.ITBox {
				kp.mainLoop(b, item)
			}
			kp.sumW += item.W()
			kp.sumY += item.Stretch()
			kp.sumZ += item.Shrink()
		case items.ITPenalty:
			if item.Penalty() < dimen.Infty {
				kp.mainLoop(b, item)
			}
		}
	}
	T().Infof("collected %d breakpoint nodes for paragraph", len(kp.nodes))
}

// mainLoop weighs a single legal breakpoint b against every node on the
// active frontier. Active nodes are examined in batches of equal line
// number while the line length still varies (below easyline); each batch
// keeps the best feasible predecessor per fitness class and then inserts
// up to four new nodes for b, spliced in before the remainder of the list.
func (kp *linebreaker) mainLoop(b int, item items.Item) {
	forced := item.Penalty() <= dimen.MinInfty
	prev := null
	a := kp.head
	for a != null {
		dmin := math.Inf(1)
		demerits := [4]float64{dmin, dmin, dmin, dmin}
		best := [4]int32{null, null, null, null}
		var ratios [4]float64
		j := 0
		for a != null {
			an := &kp.nodes[a]
			next := an.link
			j = an.line + 1
			r := kp.adjustmentRatio(an, b, j)
			if r < -1 || forced {
				// deactivate a: unlink it, keep it passive for
				// predecessor traversal
				if prev == null {
					kp.head = next
				} else {
					kp.nodes[prev].link = next
				}
				an.link = null
				kp.passive.Add(a)
			} else {
				prev = a
			}
			if -1 <= r && r <= kp.params.Tolerance {
				d, c := kp.demerits(r, item, an)
				if d < demerits[c] {
					demerits[c] = d
					best[c] = a
					ratios[c] = r
					if d < dmin {
						dmin = d
					}
				}
			}
			a = next
			if a != null && kp.nodes[a].line >= j && j < kp.easyline {
				break // end of this batch of lines
			}
		}
		if dmin < math.Inf(1) {
			tw, ty, tz := kp.sumAfter(b)
			for c := 0; c < 4; c++ {
				if demerits[c] <= dmin+kp.params.AdjDemerits {
					fresh := kp.alloc(node{
						position:      b,
						line:          kp.nodes[best[c]].line + 1,
						fitness:       c,
						totalwidth:    tw,
						totalstretch:  ty,
						totalshrink:   tz,
						totaldemerits: demerits[c],
						ratio:         ratios[c],
						previous:      best[c],
						link:          a,
					})
					if prev == null {
						kp.head = fresh
					} else {
						kp.nodes[prev].link = fresh
					}
					prev = fresh
					T().Debugf("new active node at %d, line %d, fitness %d, demerits %.1f",
						b, kp.nodes[fresh].line, c, demerits[c])
				}
			}
		}
	}
	if kp.head == null {
		kp.recover(b, item)
	}
}

// adjustmentRatio computes r for the tentative line from active node a to
// the breakpoint b, which would become line j. Positive r means the line
// has to stretch, negative r means it has to shrink; +∞ means b cannot be
// reached from a at all.
func (kp *linebreaker) adjustmentRatio(a *node, b int, j int) float64 {
	item := kp.par.At(b)
	length := kp.sumW - a.totalwidth
	if item.Type() == items.ITPenalty {
		length += item.W()
	}
	linelen := kp.parshape.LineLength(j)
	switch {
	case length < linelen:
		if stretch := kp.sumY - a.totalstretch; stretch > 0 {
			return float64((linelen - length) / stretch)
		}
		return math.Inf(1)
	case length > linelen:
		if shrink := kp.sumZ - a.totalshrink; shrink > 0 {
			return float64((linelen - length) / shrink)
		}
		return math.Inf(1)
	}
	return 0
}

// demerits computes cumulative demerits and the fitness class for a line
// from active node a to the break item at b, with adjustment ratio r.
// This is the Knuth & Plass formula: the squared badness term, the penalty
// folded in according to its sign, extra demerits for consecutive flagged
// breaks and for clashing fitness classes of adjacent lines.
func (kp *linebreaker) demerits(r float64, item items.Item, a *node) (float64, int) {
	badness := 100 * math.Pow(math.Abs(r), 3)
	p := float64(item.Penalty())
	var d float64
	switch {
	case p >= 0:
		d = (1 + badness + p) * (1 + badness + p)
	case !math.IsInf(p, -1):
		d = (1+badness)*(1+badness) - p*p
	default: // forced break
		d = (1 + badness) * (1 + badness)
	}
	if item.Flagged() && kp.par.At(a.position).Flagged() {
		d += kp.params.DoubleHyphenDemerits
	}
	c := linebreak.Fitness(r)
	if iabs(c-a.fitness) > 1 {
		d += kp.params.AdjDemerits
	}
	return d + a.totaldemerits, c
}

// sumAfter computes the running sums as they will stand just after a break
// at b: Σw, Σy, Σz plus the glue between b and the next box, stopping at a
// forced break after b. A node created at b carries these, so that the
// discardable material at the head of the following line never counts.
func (kp *linebreaker) sumAfter(b int) (w, y, z dimen.Dimen) {
	w, y, z = kp.sumW, kp.sumY, kp.sumZ
	m := kp.par.Length()
	for i := b; i < m; i++ {
		item := kp.par.At(i)
		if item.Type() == items.ITBox {
			break
		}
		if item.Type() == items.ITPenalty {
			if i > b && item.Penalty() <= dimen.MinInfty {
				break
			}
			continue
		}
		w += item.W()
		y += item.Stretch()
		z += item.Shrink()
	}
	return w, y, z
}

// recover handles a drained frontier: no feasible line reaches breakpoint
// b. The most recently deactivated node is readmitted as the predecessor
// of a single new node at b, accepting one overfull line rather than
// producing no output. The recorded ratio stays below -1 where real
// shrink exists, so that callers can spot the overfull line; with no
// shrink at all it is pinned to -1. Demerits are charged as for a fully
// shrunk line, which keeps the search ordered.
func (kp *linebreaker) recover(b int, item items.Item) {
	last, ok := kp.passive.Get(kp.passive.Size() - 1)
	if !ok {
		return // empty paragraphs never start a scan
	}
	a := last.(int32)
	an := kp.nodes[a] // copied, alloc below may grow the arena
	j := an.line + 1
	r := kp.adjustmentRatio(&an, b, j)
	if math.IsInf(r, 1) {
		r = -1
	}
	d, c := kp.demerits(-1, item, &an)
	tw, ty, tz := kp.sumAfter(b)
	T().Infof("overfull line %d: no feasible break at %d", j, b)
	kp.head = kp.alloc(node{
		position:      b,
		line:          j,
		fitness:       c,
		totalwidth:    tw,
		totalstretch:  ty,
		totalshrink:   tz,
		totaldemerits: d,
		ratio:         r,
		previous:      a,
		link:          null,
	})
}

// chooseNode selects the terminal node: fewest total demerits, then
// adjusted for the looseness parameter, which trades demerits for a
// paragraph of up to Looseness more (or fewer) lines.
func (kp *linebreaker) chooseNode() int32 {
	best := kp.head
	for a := kp.head; a != null; a = kp.nodes[a].link {
		if kp.nodes[a].totaldemerits < kp.nodes[best].totaldemerits {
			best = a
		}
	}
	if q := kp.params.Looseness; q != 0 {
		k := kp.nodes[best].line
		s := 0
		for a := kp.head; a != null; a = kp.nodes[a].link {
			delta := kp.nodes[a].line - k
			if (q <= delta && delta < s) || (s < delta && delta <= q) {
				s = delta
				best = a
			} else if delta == s && kp.nodes[a].totaldemerits < kp.nodes[best].totaldemerits {
				best = a
			}
		}
	}
	return best
}

// reconstruct walks the previous chain of the chosen node and collects the
// breakpoint positions and per-line ratios.
func (kp *linebreaker) reconstruct(best int32) *Breaks {
	lines := kp.nodes[best].line
	br := &Breaks{
		Positions: make([]int, lines+1),
		Ratios:    make([]float64, lines+1),
		Demerits:  kp.nodes[best].totaldemerits,
	}
	for a := best; a != null; a = kp.nodes[a].previous {
		j := kp.nodes[a].line
		br.Positions[j] = kp.nodes[a].position
		if j > 0 {
			br.Ratios[j] = kp.nodes[a].ratio
		}
	}
	return br
}

// ----------------------------------------------------------------------

func iabs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
