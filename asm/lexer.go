package asm

import (
	"iter"
	"strconv"
	"unicode/utf8"

	"github.com/ezrec/lce/diag"
)

// Lexer splits source text into lexems, one lexem of lookahead at a time.
type Lexer struct {
	source   string
	location diag.Location // Location of the next unread byte.
	current  Lexem
}

// NewLexer returns a lexer primed with the first lexem of source.
func NewLexer(file string, source string) (lexer *Lexer) {
	lexer = &Lexer{
		source: source,
		location: diag.Location{
			File:   file,
			Line:   1,
			Column: 1,
		},
	}

	lexer.current = lexer.scan()

	return
}

// Peek returns the current lexem without consuming it.
func (lexer *Lexer) Peek() Lexem {
	return lexer.current
}

// Next returns the current lexem, and lexes the following one.
// Once the end of the source is reached, Next keeps returning
// LEXEM_END_OF_FILE.
func (lexer *Lexer) Next() (lex Lexem) {
	lex = lexer.current
	if lex.Kind != LEXEM_END_OF_FILE {
		lexer.current = lexer.scan()
	}
	return
}

// Lexems iterates over the remaining lexems, excluding the end of file.
func (lexer *Lexer) Lexems() iter.Seq[Lexem] {
	return func(yield func(lex Lexem) bool) {
		for lexer.Peek().Kind != LEXEM_END_OF_FILE {
			if !yield(lexer.Next()) {
				return
			}
		}
	}
}

// peekChar returns the next unread byte, or 0 at the end of the source.
func (lexer *Lexer) peekChar() byte {
	if lexer.location.Offset < len(lexer.source) {
		return lexer.source[lexer.location.Offset]
	}
	return 0
}

// advance consumes size bytes of a single character.
func (lexer *Lexer) advance(size int) {
	if lexer.peekChar() == '\n' {
		lexer.location.Line++
		lexer.location.Column = 1
	} else {
		lexer.location.Column++
	}
	lexer.location.Offset += size
}

func isAlphabetical(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func canStartIdentifier(ch byte) bool {
	return isAlphabetical(ch) || ch == '_'
}

func canBeInsideIdentifier(ch byte) bool {
	return canStartIdentifier(ch) || isDigit(ch)
}

// scan lexes the next lexem.
func (lexer *Lexer) scan() (lex Lexem) {
	for lexer.location.Offset < len(lexer.source) {
		ch := lexer.peekChar()

		switch ch {
		case ' ', '\t', '\r', 0:
			lexer.advance(1)
			continue
		case ';':
			for lexer.location.Offset < len(lexer.source) && lexer.peekChar() != '\n' {
				lexer.advance(1)
			}
			continue
		}

		start := lexer.location

		switch {
		case ch == '\n':
			lex.Kind = LEXEM_LINE_BREAK
			lexer.advance(1)
		case ch == ',':
			lex.Kind = LEXEM_COMMA
			lexer.advance(1)
		case ch == '[':
			lex.Kind = LEXEM_LEFT_BRACKET
			lexer.advance(1)
		case ch == ']':
			lex.Kind = LEXEM_RIGHT_BRACKET
			lexer.advance(1)
		case canStartIdentifier(ch):
			for lexer.location.Offset < len(lexer.source) && canBeInsideIdentifier(lexer.peekChar()) {
				lexer.advance(1)
			}
			lex.Kind = LEXEM_IDENTIFIER
		case isDigit(ch):
			for lexer.location.Offset < len(lexer.source) && isDigit(lexer.peekChar()) {
				lexer.advance(1)
			}
			lex.Kind = LEXEM_NUMERIC_LITERAL
		default:
			_, size := utf8.DecodeRuneInString(lexer.source[start.Offset:])
			lexer.advance(size)
			lex.Kind = LEXEM_INVALID
		}

		lex.Location = start
		lex.Text = lexer.source[start.Offset:lexer.location.Offset]

		switch lex.Kind {
		case LEXEM_IDENTIFIER:
			lex.Identifier = lex.Text
		case LEXEM_NUMERIC_LITERAL:
			value, err := strconv.ParseUint(lex.Text, 0, 64)
			if err != nil {
				lex.Err = ErrParseNumber(lex.Text)
			} else {
				lex.Value = value
			}
		}

		return
	}

	lex = Lexem{
		Kind:     LEXEM_END_OF_FILE,
		Location: lexer.location,
	}

	return
}
