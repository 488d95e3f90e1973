package asm

import (
	"fmt"

	"github.com/ezrec/lce/diag"
)

// LexemKind is the lexical class of a lexem.
type LexemKind int

//go:generate go tool stringer -linecomment -type=LexemKind
const (
	LEXEM_END_OF_FILE     = LexemKind(0) // end of file
	LEXEM_LINE_BREAK      = LexemKind(1) // line break
	LEXEM_IDENTIFIER      = LexemKind(2) // identifier
	LEXEM_NUMERIC_LITERAL = LexemKind(3) // numeric literal
	LEXEM_COMMA           = LexemKind(4) // comma
	LEXEM_LEFT_BRACKET    = LexemKind(5) // left bracket
	LEXEM_RIGHT_BRACKET   = LexemKind(6) // right bracket
	LEXEM_INVALID         = LexemKind(7) // invalid
)

// Lexem is a single token of source text.
type Lexem struct {
	Kind     LexemKind
	Text     string // Source text; empty only at end of file.
	Location diag.Location

	Identifier string // LEXEM_IDENTIFIER payload.
	Value      uint64 // LEXEM_NUMERIC_LITERAL payload.
	Err        error  // Set if a numeric literal failed to parse.
}

func (lex Lexem) String() string {
	switch lex.Kind {
	case LEXEM_END_OF_FILE, LEXEM_LINE_BREAK:
		return lex.Kind.String()
	}
	return fmt.Sprintf("%v(%q)", lex.Kind, lex.Text)
}
