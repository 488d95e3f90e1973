package isa

import (
	"fmt"
)

// Code is a decoded instruction.
type Code struct {
	Opcode   Opcode
	Form     Form
	Operands [2]Operand
	Length   int // Encoded length in bytes.
}

// String returns the instruction in assembly syntax.
func (code Code) String() string {
	switch {
	case code.Operands[0].Type == OPERAND_NONE:
		return code.Opcode.String()
	case code.Operands[1].Type == OPERAND_NONE:
		return fmt.Sprintf("%v %v", code.Opcode, code.Operands[0])
	}
	return fmt.Sprintf("%v %v, %v", code.Opcode, code.Operands[0], code.Operands[1])
}

// decodeImmediate reads a tagged immediate starting at data[at].
func decodeImmediate(data []uint8, at int, tag uint8) (value uint64, next int, err error) {
	switch tag {
	case TAG_IMM8:
		if len(data) < at+1 {
			err = ErrDecodeShort
			return
		}
		value = uint64(data[at])
		next = at + 1
	case TAG_IMM16:
		if len(data) < at+2 {
			err = ErrDecodeShort
			return
		}
		value = uint64(data[at]) | (uint64(data[at+1]) << 8)
		next = at + 2
	default:
		err = ErrDecodeTag
	}
	return
}

// immediateBytes is the size of a tagged immediate.
func immediateBytes(tag uint8) int {
	switch tag {
	case TAG_IMM8:
		return 1
	case TAG_IMM16:
		return 2
	}
	return 0
}

// Length returns how many bytes of the instruction starting with head
// are needed to decode it. When head is too short to tell, the result
// is larger than len(head); call again with the longer head.
// Malformed heads return the length Decode needs to reject them.
func Length(head []uint8) (length int) {
	if len(head) == 0 {
		return 1
	}

	op := Opcode(head[0] >> OPCODE_SHIFT)
	tag1 := head[0] & TAG_MASK
	if !op.Valid() {
		return 1
	}

	switch op.Arity() {
	case 0:
		length = 1
	case 1:
		length = 1 + max(1, immediateBytes(tag1))
	case 2:
		if tag1 != TAG_REGISTER {
			length = 2 + immediateBytes(tag1)
			break
		}
		if len(head) < 2 {
			return 2
		}
		length = 2 + immediateBytes(head[1]>>SECOND_TAG_SHIFT)
	}

	return
}

// Decode decodes the instruction at the start of data. Trailing bytes past
// the instruction's length are ignored.
func Decode(data []uint8) (code Code, err error) {
	if len(data) < 1 {
		err = ErrDecodeShort
		return
	}

	op := Opcode(data[0] >> OPCODE_SHIFT)
	if !op.Valid() {
		err = ErrOpcodeUnknown(op)
		return
	}

	code.Opcode = op
	tag1 := data[0] & TAG_MASK

	var operands [2]Operand

	switch op.Arity() {
	case 0:
		if tag1 != TAG_REGISTER {
			err = ErrDecodeTag
			return
		}
		code.Form = FORM_NONE
		code.Length = 1
	case 1:
		if len(data) < 2 {
			err = ErrDecodeShort
			return
		}
		if tag1 == TAG_REGISTER {
			code.Form = FORM_R
			operands[0] = Reg(Register((data[1] >> FIRST_REG_SHIFT) & REG_MASK))
			code.Length = 2
		} else {
			var value uint64
			value, code.Length, err = decodeImmediate(data, 1, tag1)
			if err != nil {
				return
			}
			code.Form = FORM_I
			operands[0] = Imm(value)
		}
	case 2:
		if len(data) < 2 {
			err = ErrDecodeShort
			return
		}
		tag2 := data[1] >> SECOND_TAG_SHIFT
		if tag1 == TAG_REGISTER {
			operands[0] = Reg(Register((data[1] >> FIRST_REG_SHIFT) & REG_MASK))
			if tag2 == TAG_REGISTER {
				code.Form = FORM_RR
				operands[1] = Reg(Register((data[1] >> SECOND_REG_SHIFT) & REG_MASK))
				code.Length = 2
			} else {
				var value uint64
				value, code.Length, err = decodeImmediate(data, 2, tag2)
				if err != nil {
					return
				}
				code.Form = FORM_RI
				operands[1] = Imm(value)
			}
		} else {
			if tag2 != TAG_REGISTER {
				err = ErrDecodeTag
				return
			}
			var value uint64
			value, code.Length, err = decodeImmediate(data, 2, tag1)
			if err != nil {
				return
			}
			code.Form = FORM_IR
			operands[0] = Imm(value)
			operands[1] = Reg(Register((data[1] >> SECOND_REG_SHIFT) & REG_MASK))
		}
	}

	for _, operand := range operands {
		if operand.IsRegister() && !operand.Register.Valid() {
			err = ErrDecodeRegister
			return
		}
	}

	if slot, ok := op.AddressSlot(); ok {
		operands[slot] = operands[slot].Address()
	}

	form, ok := Legal(op, operands[0].Type, operands[1].Type)
	if !ok || form != code.Form {
		err = ErrShapeInvalid
		return
	}

	code.Operands = operands

	return
}
