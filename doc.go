/*
Package textprim offers the text primitives of a small scripting runtime.

Texts

A script string is a sequence of UTF-16 code units, and scripts look at it
through four different lenses:

	Grapheme    user-perceived character (extended grapheme cluster, UAX #29)
	Codepoint   Unicode scalar value, or an isolated surrogate carried verbatim
	Code unit   16-bit storage unit, the native representation
	UTF-8 byte  the external byte representation

Type Text wraps an immutable code-unit string and converts between these
views. Lengths and indices of user-facing operations (Len, Pick, Slice,
IndexOf) count graphemes, whereas CharCodeAt and CodepointAt address code
units. Isolated surrogates survive every operation except conversion to UTF-8,
which fails closed with an error from package utf8codec.

	t := textprim.FromString("a😀")
	t.Len()                        // 2 graphemes
	t.LenIn(textprim.CodeUnits)    // 3 code units
	t.CodeUnitValues()             // [97 55357 56832]

Sibling packages provide the remaining primitives: codeunit and cluster hold
the code-unit and grapheme machinery, rng deterministic random sequences, seq
the array operations and value the tagged value kinds scripts compute with.

Tracing

Packages trace to schuko tracers. The root package uses the global core
tracer, sub-packages select keyed tracers ('textprim.cluster', 'textprim.rng',
…). Nothing is printed unless an application configures a tracing adapter.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package textprim

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TextError is an error type for the textprim module
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrInvalidCodepoint is flagged whenever a codepoint lies outside of
// [0, 0x10FFFF].
const ErrInvalidCodepoint = TextError("invalid codepoint")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")
