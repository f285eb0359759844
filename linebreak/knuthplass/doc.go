/*
Package knuthplass implements the optimal-fit line breaking algorithm
described by D.E. Knuth and M.F. Plass.

Definite source of information is of course

	Computers & Typesetting, Vol. A & C.
	http://www-cs-faculty.stanford.edu/~knuth/abcde.html

An approachable summary may be found in

	http://defoe.sourceforge.net/folio/knuth-plass.html

The breaker performs a shortest-path search over the feasible breakpoints
of a paragraph. It maintains a frontier of active nodes, each representing
a feasible prefix of breakpoints; at every legal breakpoint the frontier is
rescanned, infeasible predecessors are retired, and up to four new nodes
(one per fitness class) join the frontier. The result is the breakpoint
sequence of least total demerits, together with the adjustment ratio
chosen for each line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird

*/
package knuthplass

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
