package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lce/diag"
	"github.com/ezrec/lce/isa"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	col := &diag.Collector{}
	asm := &Assembler{Sink: col}

	instrs, ok := asm.Parse(NewLexer("test.lca", "mov r0, 0\nmov r0, 1\nmov r0, 2"))
	assert.True(ok)
	assert.Empty(col.Diagnostics)

	if !assert.Equal(3, len(instrs)) {
		return
	}

	for n, instr := range instrs {
		assert.Equal(isa.OP_MOV, instr.Opcode)
		assert.Equal(isa.Reg(isa.REG_R0), instr.Operands[0])
		assert.Equal(isa.Imm(uint64(n)), instr.Operands[1])
		assert.Equal(n+1, instr.Location.Line)
	}
}

func TestParseInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		op     isa.Opcode
		first  isa.Operand
		second isa.Operand
	}){
		{"hlt", isa.OP_HLT, isa.None(), isa.None()},
		{"NOP", isa.OP_NOP, isa.None(), isa.None()},
		{"Push R1", isa.OP_PUSH, isa.Reg(isa.REG_R1), isa.None()},
		{"jmp 4096", isa.OP_JMP, isa.Imm(4096), isa.None()},
		{"mov rsp, rfl", isa.OP_MOV, isa.Reg(isa.REG_RSP), isa.Reg(isa.REG_RFL)},
		{"lda r2, [512]", isa.OP_LDA, isa.Reg(isa.REG_R2), isa.ImmAddr(512)},
		{"lda r2, [r3]", isa.OP_LDA, isa.Reg(isa.REG_R2), isa.RegAddr(isa.REG_R3)},
		{"sta [r1], r0", isa.OP_STA, isa.RegAddr(isa.REG_R1), isa.Reg(isa.REG_R0)},
		{"sta 99, r0", isa.OP_STA, isa.Imm(99), isa.Reg(isa.REG_R0)},
		{"add r0,r1", isa.OP_ADD, isa.Reg(isa.REG_R0), isa.Reg(isa.REG_R1)},
		{"mov r0, 99999999999", isa.OP_MOV, isa.Reg(isa.REG_R0), isa.Imm(99999999999)},
		{"mov 5, r0", isa.OP_MOV, isa.Imm(5), isa.Reg(isa.REG_R0)},
	}

	for _, entry := range table {
		col := &diag.Collector{}
		asm := &Assembler{Sink: col}

		instrs, ok := asm.Parse(NewLexer("test.lca", entry.source))
		assert.True(ok, entry.source)
		assert.Empty(col.Diagnostics, entry.source)
		if !assert.Equal(1, len(instrs), entry.source) {
			continue
		}

		instr := instrs[0]
		assert.Equal(entry.op, instr.Opcode, entry.source)
		assert.Equal(entry.first, instr.Operands[0], entry.source)
		assert.Equal(entry.second, instr.Operands[1], entry.source)
		assert.Equal(entry.op.Arity(), instr.Count(), entry.source)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source   string
		expected error
		column   int
	}){
		{"bogus r0", ErrMnemonicUnknown("bogus"), 1},
		{"123", ErrOpcodeMissing, 1},
		{"mov r0 1", ErrCommaMissing, 1},
		{"mov r0,", ErrOperandMissing, 7},
		{"mov , 1", ErrOperandMissing, 1},
		{"push", ErrOperandMissing, 1},
		{"push r0, r1", ErrOperandExtra, 8},
		{"mov r0, 1, 2", ErrOperandExtra, 10},
		{"mov r9, 1", ErrRegisterUnknown("r9"), 5},
		{"mov r0, 09", ErrParseNumber("09"), 9},
		{"lda r0, [r1", ErrBracketMissing, 9},
		{"lda r0, [", ErrBracketMissing, 9},
		{"lda r0, []", ErrAddressInvalid, 9},
		{"lda r0, [r1 r2]", ErrAddressInvalid, 9},
		{"lda r0, [,]", ErrAddressInvalid, 9},
		{"lda r0, ]", ErrOperandInvalid, 9},
		{"mov r0, #1", ErrCharacterInvalid, 9},
	}

	for _, entry := range table {
		col := &diag.Collector{}
		asm := &Assembler{Sink: col}

		instrs, ok := asm.Parse(NewLexer("test.lca", entry.source))
		assert.False(ok, entry.source)
		assert.Empty(instrs, entry.source)
		if !assert.Equal(1, len(col.Diagnostics), entry.source) {
			continue
		}

		d := col.Diagnostics[0]
		assert.Equal(diag.SEVERITY_ERROR, d.Severity, entry.source)
		assert.ErrorIs(d, entry.expected, entry.source)
		assert.Equal(1, d.Location.Line, entry.source)
		assert.Equal(entry.column, d.Location.Column, entry.source)
	}
}

func TestParseRecovery(t *testing.T) {
	assert := assert.New(t)

	col := &diag.Collector{}
	asm := &Assembler{Sink: col}

	source := "mov r0, 1\nfoo\n\n; comment only\nadd r0 r1\nhlt\n"
	instrs, ok := asm.Parse(NewLexer("test.lca", source))
	assert.False(ok)

	if assert.Equal(2, len(instrs)) {
		assert.Equal(isa.OP_MOV, instrs[0].Opcode)
		assert.Equal(isa.OP_HLT, instrs[1].Opcode)
		assert.Equal(6, instrs[1].Location.Line)
	}

	if assert.Equal(2, len(col.Diagnostics)) {
		assert.ErrorIs(col.Diagnostics[0], ErrMnemonicUnknown("foo"))
		assert.Equal(2, col.Diagnostics[0].Location.Line)
		assert.ErrorIs(col.Diagnostics[1], ErrCommaMissing)
		assert.Equal(5, col.Diagnostics[1].Location.Line)
	}
}

func TestParseTrailing(t *testing.T) {
	assert := assert.New(t)

	col := &diag.Collector{}
	asm := &Assembler{Sink: col}

	instrs, ok := asm.Parse(NewLexer("test.lca", "ret r0"))
	assert.True(ok)
	if assert.Equal(1, len(instrs)) {
		assert.Equal(isa.OP_RET, instrs[0].Opcode)
		assert.Equal(0, instrs[0].Count())
	}

	if assert.Equal(1, len(col.Diagnostics)) {
		assert.Equal(diag.SEVERITY_WARNING, col.Diagnostics[0].Severity)
		assert.ErrorIs(col.Diagnostics[0], ErrExtraArgs)
		assert.Equal(5, col.Diagnostics[0].Location.Column)
	}
}
