package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	for op := range Opcode(OP_COUNT) {
		found, ok := LookupOpcode(op.String())
		assert.True(ok, op.String())
		assert.Equal(op, found)
	}

	op, ok := LookupOpcode("MoV")
	assert.True(ok)
	assert.Equal(OP_MOV, op)

	_, ok = LookupOpcode("movx")
	assert.False(ok)

	reg, ok := LookupRegister("RSP")
	assert.True(ok)
	assert.Equal(REG_RSP, reg)

	_, ok = LookupRegister("r6")
	assert.False(ok)

	assert.False(Opcode(OP_COUNT).Valid())
	assert.False(Register(REG_COUNT).Valid())
	assert.Equal("Opcode(22)", Opcode(OP_COUNT).String())
}

func TestArity(t *testing.T) {
	assert := assert.New(t)

	// Every legal shape agrees with the opcode's arity.
	seen := map[Opcode]bool{}
	for shape := range Shapes() {
		count := 0
		if shape.First != OPERAND_NONE {
			count++
		}
		if shape.Second != OPERAND_NONE {
			count++
		}
		assert.Equal(shape.Opcode.Arity(), count, shape.Opcode.String())
		seen[shape.Opcode] = true
	}

	// Every opcode has at least one legal shape.
	for op := range Opcode(OP_COUNT) {
		assert.True(seen[op], op.String())
	}
}

func TestOperandString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		operand  Operand
		expected string
	}){
		{None(), ""},
		{Reg(REG_R0), "r0"},
		{Imm(1337), "1337"},
		{ImmAddr(12), "[12]"},
		{RegAddr(REG_R1), "[r1]"},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, entry.operand.String())
	}

	assert.Equal(ImmAddr(5), Imm(5).Address())
	assert.Equal(RegAddr(REG_R2), Reg(REG_R2).Address())
	assert.Equal(ImmAddr(5), ImmAddr(5).Address())
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		op       Opcode
		first    Operand
		second   Operand
		expected []uint8
	}){
		{"hlt", OP_HLT, None(), None(), []uint8{0b01010100}},
		{"nop", OP_NOP, None(), None(), []uint8{FILL}},
		{"mov_r1_imm8", OP_MOV, Reg(REG_R1), Imm(0x1F), []uint8{0b00000100, 0b10001000, 0x1F}},
		// Four bytes: the R,I form always carries its operand byte.
		{"mov_r0_imm16", OP_MOV, Reg(REG_R0), Imm(1337), []uint8{0b00000100, 0b11000000, 0x39, 0x05}},
		{"mov_r2_r3", OP_MOV, Reg(REG_R2), Reg(REG_R3), []uint8{0b00000100, 0b00010011}},
		{"push_r1", OP_PUSH, Reg(REG_R1), None(), []uint8{0b00110000, 0b00001000}},
		{"push_imm8", OP_PUSH, Imm(7), None(), []uint8{0b00110010, 0x07}},
		{"jmp_imm16", OP_JMP, Imm(0x1234), None(), []uint8{0b00111011, 0x34, 0x12}},
		{"sta_imm_r2", OP_STA, ImmAddr(0x80), Reg(REG_R2), []uint8{0b00001110, 0b00000010, 0x80}},
		{"sta_r1_r2", OP_STA, RegAddr(REG_R1), Reg(REG_R2), []uint8{0b00001100, 0b00001010}},
		{"lda_r3_imm", OP_LDA, Reg(REG_R3), ImmAddr(0x4000), []uint8{0b00001000, 0b11011000, 0x00, 0x40}},
		{"add_rsp_imm8", OP_ADD, Reg(REG_RSP), Imm(2), []uint8{0b00010000, 0b10100000, 0x02}},
		{"mov_truncated", OP_MOV, Reg(REG_R0), Imm(0x12345), []uint8{0b00000100, 0b11000000, 0x45, 0x23}},
		{"mov_truncated_narrow", OP_MOV, Reg(REG_R0), Imm(0x10005), []uint8{0b00000100, 0b10000000, 0x05}},
	}

	for _, entry := range table {
		code, err := Encode(entry.op, entry.first, entry.second)
		if assert.NoError(err, entry.name) {
			assert.Equal(entry.expected, code, entry.name)
		}
	}

	assert.True(Truncated(0x10000))
	assert.False(Truncated(0xffff))
}

func TestEncodeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     Opcode
		first  Operand
		second Operand
	}){
		{"mov_imm_reg", OP_MOV, Imm(1), Reg(REG_R0)},
		{"hlt_reg", OP_HLT, Reg(REG_R0), None()},
		{"not_imm", OP_NOT, Imm(1), None()},
		{"add_missing", OP_ADD, Reg(REG_R0), None()},
		{"mov_address", OP_MOV, Reg(REG_R0), ImmAddr(1)},
		{"unknown", Opcode(OP_COUNT), None(), None()},
	}

	for _, entry := range table {
		_, err := Encode(entry.op, entry.first, entry.second)
		assert.ErrorIs(err, ErrShapeInvalid, entry.name)
	}
}

func sample(kind OperandType, reg Register, value uint64) Operand {
	switch kind {
	case OPERAND_REGISTER:
		return Reg(reg)
	case OPERAND_REGISTER_ADDRESS:
		return RegAddr(reg)
	case OPERAND_IMMEDIATE:
		return Imm(value)
	case OPERAND_IMMEDIATE_ADDRESS:
		return ImmAddr(value)
	}
	return None()
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for shape, form := range Shapes() {
		for _, value := range []uint64{0, 0x7f, 0xff, 0x100, 0xbeef} {
			first := sample(shape.First, REG_R3, value)
			second := sample(shape.Second, REG_RFL, value)

			code, err := Encode(shape.Opcode, first, second)
			if !assert.NoError(err, "%v", shape) {
				continue
			}

			decoded, err := Decode(append(code, 0xaa, 0xbb))
			if !assert.NoError(err, "%v", shape) {
				continue
			}

			expected := [2]Operand{first, second}
			if slot, ok := shape.Opcode.AddressSlot(); ok {
				expected[slot] = expected[slot].Address()
			}

			assert.Equal(shape.Opcode, decoded.Opcode, "%v", shape)
			assert.Equal(form, decoded.Form, "%v", shape)
			assert.Equal(expected, decoded.Operands, "%v", shape)
			assert.Equal(len(code), decoded.Length, "%v", shape)

			// Growing the head a byte at a time stops at the encoded length.
			head := code[:1]
			for len(head) < Length(head) {
				head = code[:len(head)+1]
			}
			assert.Equal(len(code), len(head), "%v", shape)
			assert.Equal(len(code), Length(code), "%v", shape)
		}
	}
}

func TestLength(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		head     []uint8
		expected int
	}){
		{"empty", nil, 1},
		{"hlt", []uint8{0b01010100}, 1},
		{"unknown_opcode", []uint8{0xfc}, 1},
		{"push_reg", []uint8{0b00110000}, 2},
		{"push_imm8", []uint8{0b00110010}, 2},
		{"jmp_imm16", []uint8{0b00111011}, 3},
		{"jmp_reserved", []uint8{0b00111001}, 2},
		{"mov_undecided", []uint8{0b00000100}, 2},
		{"mov_rr", []uint8{0b00000100, 0b00010011}, 2},
		{"mov_ri8", []uint8{0b00000100, 0b10001000}, 3},
		{"mov_ri16", []uint8{0b00000100, 0b11000000}, 4},
		{"sta_ir16", []uint8{0b00001111}, 4},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, Length(entry.head), entry.name)
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	code, err := Decode([]uint8{0b00000100, 0b10001000, 0x1F})
	assert.NoError(err)
	assert.Equal(OP_MOV, code.Opcode)
	assert.Equal(Reg(REG_R1), code.Operands[0])
	assert.Equal(Imm(0x1F), code.Operands[1])
	assert.Equal(3, code.Length)
	assert.Equal("mov r1, 31", code.String())

	code, err = Decode([]uint8{FILL, FILL, FILL, FILL})
	assert.NoError(err)
	assert.Equal(OP_NOP, code.Opcode)
	assert.Equal(1, code.Length)
	assert.Equal("nop", code.String())

	code, err = Decode([]uint8{0b00001100, 0b00001010})
	assert.NoError(err)
	assert.Equal("sta [r1], r2", code.String())

	code, err = Decode([]uint8{0b00110000, 0b00001000})
	assert.NoError(err)
	assert.Equal("push r1", code.String())
}

func TestDecodeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		data     []uint8
		expected error
	}){
		{"empty", []uint8{}, ErrDecodeShort},
		{"unknown", []uint8{0xfc}, ErrOpcodeUnknown(0)},
		{"hlt_tagged", []uint8{0b01010110}, ErrDecodeTag},
		{"push_short", []uint8{0b00110000}, ErrDecodeShort},
		{"push_imm16_short", []uint8{0b00110011, 0x01}, ErrDecodeShort},
		{"push_reserved", []uint8{0b00110001, 0x00}, ErrDecodeTag},
		{"mov_bad_register", []uint8{0b00000100, 0b00110000}, ErrDecodeRegister},
		{"mov_reserved", []uint8{0b00000100, 0b01000000}, ErrDecodeTag},
		{"mov_imm_first", []uint8{0b00000110, 0b00000000, 0x01}, ErrShapeInvalid},
		{"sta_imm_imm", []uint8{0b00001110, 0b10000000, 0x01}, ErrDecodeTag},
		{"not_imm", []uint8{0b00100110, 0x01}, ErrShapeInvalid},
	}

	for _, entry := range table {
		_, err := Decode(entry.data)
		assert.ErrorIs(err, entry.expected, entry.name)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0b00000100, 0b10001000, 0x1F})
	f.Add([]byte{0b01010100})
	f.Add([]byte{0b00001110, 0b00000010, 0x80, 0x00})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		code, err := Decode(data)
		if err != nil {
			return
		}

		assert.LessOrEqual(code.Length, len(data))
		assert.LessOrEqual(code.Length, INSTRUCTION_BYTES)

		encoded, err := Encode(code.Opcode, code.Operands[0], code.Operands[1])
		if !assert.NoError(err, code.String()) {
			return
		}

		again, err := Decode(encoded)
		if assert.NoError(err, code.String()) {
			assert.Equal(code.Opcode, again.Opcode)
			assert.Equal(code.Operands, again.Operands)
		}
	})
}
