/*
Package grammar parses expressions of the arithmetic of letters and folds the
resulting parse trees.

An expression combines single letters and digits with binary operators:

	expr    = expr "||" expr                                  (tier 1, lowest)
	        | expr ( "+" | "-" | "&" | "|" | "^" ) expr       (tier 2)
	        | primary
	primary = letter | digit | "(" expr ")"

All operators are left-associative. Parentheses group sub-expressions but leave
no trace in the parse tree: "(A)" and "A" yield identical trees.

A parse tree is folded by an Interpreter, which supplies one callback for leaf
characters and one for infix operators. Package grammar provides two
interpretations producing text (Pretty and Polish); package letters adds a
third one which renders images.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'letters.grammar'
func tracer() tracing.Trace {
	return tracing.Select("letters.grammar")
}
