/*
Package items implements the box/glue/penalty item model for paragraphs,
together with a builder that turns a token stream into a well-formed
paragraph and a tokenizer that produces such a stream from raw text.

A paragraph of typeset material is an ordered sequence of three item kinds:
boxes (unbreakable material of fixed width), glue (elastic space) and
penalties (optional breaks with a cost). The line breaker in package
linebreak/knuthplass consumes paragraphs through the uniform Item
interface; nothing here depends on a rendering environment. Widths enter
the model through a Measurer, which is the only voice of the environment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Avery Laird

*/
package items

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
