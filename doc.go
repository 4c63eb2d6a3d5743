/*
Package letters implements the arithmetic of letters: expressions over
characters, where every character becomes a colored glyph and every operator
combines two images.

	A + B || 8 & 0 || G - K

Characters are single ASCII letters or digits. The operators are

	+   draw the right operand over the left one
	|   same as +
	-   erase the right operand from the left one
	&   keep the right operand where both operands are covered
	^   keep what is covered by exactly one of the operands
	||  place the operands side by side

Concatenation binds least; all other operators share one precedence level.
All operators are left-associative, and parentheses group as usual.

Render evaluates an expression to a canvas. Glyphs are tinted in reading order
with colors from a color sequence (see package colors). Pretty and Polish
print an expression in infix and in prefix notation.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package letters

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letters'
func tracer() tracing.Trace {
	return tracing.Select("letters")
}
