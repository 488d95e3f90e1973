package asm

import (
	"errors"
	"log"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
)

// Parse reads every line from lexer into an instruction.
//
// A line that fails to parse is reported as an Error and skipped, and
// parsing carries on with the next line. ok is false if any line failed.
func (asm *Assembler) Parse(lexer *Lexer) (instrs []Instruction, ok bool) {
	ok = true

	for {
		var line []Lexem
		for lexer.Peek().Kind != LEXEM_LINE_BREAK && lexer.Peek().Kind != LEXEM_END_OF_FILE {
			line = append(line, lexer.Next())
		}
		end := lexer.Next()

		if len(line) > 0 {
			instr, err := asm.ParseInstruction(line)
			if err != nil {
				var syntax *ErrSyntax
				loc := line[0].Location
				if errors.As(err, &syntax) {
					loc = syntax.Location
					err = syntax.Err
				}
				asm.report(diag.SEVERITY_ERROR, loc, err)
				ok = false
			} else {
				if asm.Verbose {
					log.Printf("%v: %v", instr.Location, instr)
				}
				instrs = append(instrs, instr)
			}
		}

		if end.Kind == LEXEM_END_OF_FILE {
			break
		}
	}

	return
}

// ParseInstruction parses the lexems of a single, non-empty line.
func (asm *Assembler) ParseInstruction(lexems []Lexem) (instr Instruction, err error) {
	if len(lexems) == 0 {
		err = ErrOpcodeMissing
		return
	}

	for _, lex := range lexems {
		if lex.Kind == LEXEM_INVALID {
			err = &ErrSyntax{Location: lex.Location, Err: ErrCharacterInvalid}
			return
		}
	}

	head := lexems[0]
	instr.Location = head.Location

	if head.Kind != LEXEM_IDENTIFIER {
		err = &ErrSyntax{Location: head.Location, Err: ErrOpcodeMissing}
		return
	}

	op, ok := isa.LookupOpcode(head.Identifier)
	if !ok {
		err = &ErrSyntax{Location: head.Location, Err: ErrMnemonicUnknown(head.Identifier)}
		return
	}
	instr.Opcode = op

	rest := lexems[1:]

	switch op.Arity() {
	case 0:
		if len(rest) > 0 {
			asm.report(diag.SEVERITY_WARNING, rest[0].Location, ErrExtraArgs)
		}
	case 1:
		instr.Operands[0], err = parseOperand(head, rest)
	case 2:
		comma := -1
		for n, lex := range rest {
			if lex.Kind == LEXEM_COMMA {
				comma = n
				break
			}
		}
		if comma < 0 {
			err = &ErrSyntax{Location: head.Location, Err: ErrCommaMissing}
			return
		}
		instr.Operands[0], err = parseOperand(head, rest[:comma])
		if err != nil {
			return
		}
		instr.Operands[1], err = parseOperand(rest[comma], rest[comma+1:])
	}

	return
}

// parseOperand parses a single operand span. after is the lexem that
// precedes the span, used to locate a missing operand.
func parseOperand(after Lexem, span []Lexem) (operand isa.Operand, err error) {
	if len(span) == 0 {
		err = &ErrSyntax{Location: after.Location, Err: ErrOperandMissing}
		return
	}

	first := span[0]

	if first.Kind == LEXEM_LEFT_BRACKET {
		last := span[len(span)-1]
		if len(span) < 2 || last.Kind != LEXEM_RIGHT_BRACKET {
			err = &ErrSyntax{Location: first.Location, Err: ErrBracketMissing}
			return
		}
		if len(span) != 3 || (span[1].Kind != LEXEM_IDENTIFIER && span[1].Kind != LEXEM_NUMERIC_LITERAL) {
			err = &ErrSyntax{Location: first.Location, Err: ErrAddressInvalid}
			return
		}
		operand, err = parseValue(span[1])
		if err != nil {
			return
		}
		operand = operand.Address()
		return
	}

	if len(span) > 1 {
		err = &ErrSyntax{Location: span[1].Location, Err: ErrOperandExtra}
		return
	}

	operand, err = parseValue(first)

	return
}

// parseValue parses a register name or numeric literal.
func parseValue(lex Lexem) (operand isa.Operand, err error) {
	switch lex.Kind {
	case LEXEM_IDENTIFIER:
		reg, ok := isa.LookupRegister(lex.Identifier)
		if !ok {
			err = &ErrSyntax{Location: lex.Location, Err: ErrRegisterUnknown(lex.Identifier)}
			return
		}
		operand = isa.Reg(reg)
	case LEXEM_NUMERIC_LITERAL:
		if lex.Err != nil {
			err = &ErrSyntax{Location: lex.Location, Err: lex.Err}
			return
		}
		operand = isa.Imm(lex.Value)
	default:
		err = &ErrSyntax{Location: lex.Location, Err: ErrOperandInvalid}
	}

	return
}
