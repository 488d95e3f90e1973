package isa

// Operand type tags, as stored in the low 2 bits of byte 0 (first operand)
// and the high 2 bits of byte 1 (second operand).
const (
	TAG_REGISTER = uint8(0b00) // Register index in byte 1.
	TAG_RESERVED = uint8(0b01) // Never emitted.
	TAG_IMM8     = uint8(0b10) // One byte immediate.
	TAG_IMM16    = uint8(0b11) // Two byte little-endian immediate.
)

// Bit layout of the first two instruction bytes.
const (
	OPCODE_SHIFT      = 2
	TAG_MASK          = uint8(0b11)
	SECOND_TAG_SHIFT  = 6
	FIRST_REG_SHIFT   = 3
	SECOND_REG_SHIFT  = 0
	REG_MASK          = uint8(0b111)
	IMMEDIATE_MAX     = 0xffff // Widest encodable immediate.
	INSTRUCTION_BYTES = 4      // Longest instruction.
)

// FILL is the byte read past the end of mapped memory. It decodes as nop.
const FILL = uint8(OP_NOP << OPCODE_SHIFT)

// Truncated is true if value does not fit an encoded immediate.
func Truncated(value uint64) bool {
	return value > IMMEDIATE_MAX
}

// immediate returns the tag and little-endian bytes for the low 16 bits
// of value.
func immediate(value uint64) (tag uint8, imms []uint8) {
	v16 := uint16(value)
	if v16 <= 0xff {
		tag = TAG_IMM8
		imms = []uint8{uint8(v16)}
	} else {
		tag = TAG_IMM16
		imms = []uint8{uint8(v16 >> 0), uint8(v16 >> 8)}
	}
	return
}

// Encode returns the binary encoding of an instruction. Immediates wider
// than 16 bits are silently truncated; see Truncated.
func Encode(op Opcode, first, second Operand) (code []uint8, err error) {
	form, ok := Legal(op, first.Type, second.Type)
	if !ok {
		err = ErrShapeInvalid
		return
	}

	b0 := uint8(op) << OPCODE_SHIFT

	switch form {
	case FORM_NONE:
		code = []uint8{b0}
	case FORM_R:
		code = []uint8{
			b0 | TAG_REGISTER,
			uint8(first.Register) << FIRST_REG_SHIFT,
		}
	case FORM_I:
		tag, imms := immediate(first.Value)
		code = append([]uint8{b0 | tag}, imms...)
	case FORM_RR:
		code = []uint8{
			b0 | TAG_REGISTER,
			(TAG_REGISTER << SECOND_TAG_SHIFT) |
				(uint8(first.Register) << FIRST_REG_SHIFT) |
				(uint8(second.Register) << SECOND_REG_SHIFT),
		}
	case FORM_RI:
		tag, imms := immediate(second.Value)
		code = append([]uint8{
			b0 | TAG_REGISTER,
			(tag << SECOND_TAG_SHIFT) | (uint8(first.Register) << FIRST_REG_SHIFT),
		}, imms...)
	case FORM_IR:
		tag, imms := immediate(first.Value)
		code = append([]uint8{
			b0 | tag,
			(TAG_REGISTER << SECOND_TAG_SHIFT) | (uint8(second.Register) << SECOND_REG_SHIFT),
		}, imms...)
	default:
		panic("unknown form")
	}

	return
}
