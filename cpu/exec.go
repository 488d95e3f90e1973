package cpu

import (
	"github.com/ezrec/lce/isa"
)

// handler executes a decoded instruction, and returns the address of the
// next instruction. next_ip is the address following the instruction.
type handler func(cpu *Cpu, code isa.Code, next_ip uint16) uint16

// handlers is the dispatch table, indexed by opcode.
var handlers = [isa.OP_COUNT]handler{
	isa.OP_NOP:  execNop,
	isa.OP_MOV:  execMov,
	isa.OP_LDA:  execLda,
	isa.OP_STA:  execSta,
	isa.OP_ADD:  execAdd,
	isa.OP_SUB:  execSub,
	isa.OP_AND:  execLogic(func(a, b uint16) uint16 { return a & b }),
	isa.OP_OR:   execLogic(func(a, b uint16) uint16 { return a | b }),
	isa.OP_XOR:  execLogic(func(a, b uint16) uint16 { return a ^ b }),
	isa.OP_NOT:  execNot,
	isa.OP_SHL:  execShl,
	isa.OP_SHR:  execShr,
	isa.OP_PUSH: execPush,
	isa.OP_POP:  execPop,
	isa.OP_JMP:  execJump(0),
	isa.OP_JZ:   execJump(FLAG_Z),
	isa.OP_JV:   execJump(FLAG_V),
	isa.OP_JC:   execJump(FLAG_C),
	isa.OP_JN:   execJump(FLAG_N),
	isa.OP_CALL: execCall,
	isa.OP_RET:  execRet,
	isa.OP_HLT:  execHlt,
}

// value returns the value of a register or immediate operand.
func (cpu *Cpu) value(operand isa.Operand) uint16 {
	if operand.IsRegister() {
		return cpu.Register[operand.Register]
	}
	return uint16(operand.Value)
}

// setFlags replaces the bits of rfl selected by mask.
func (cpu *Cpu) setFlags(mask Flag, flags Flag) {
	rfl := &cpu.Register[isa.REG_RFL]
	*rfl = (*rfl &^ uint16(mask)) | uint16(flags&mask)
}

// Flags returns the flag bits of rfl.
func (cpu *Cpu) Flags() Flag {
	return Flag(cpu.Register[isa.REG_RFL]) & (FLAG_Z | FLAG_C | FLAG_V | FLAG_N)
}

// resultFlags returns the Z and N flags of a result.
func resultFlags(result uint16) (flags Flag) {
	if result == 0 {
		flags |= FLAG_Z
	}
	if result&0x8000 != 0 {
		flags |= FLAG_N
	}
	return
}

// push decrements rsp by a word, and stores value there.
func (cpu *Cpu) push(value uint16) {
	cpu.Register[isa.REG_RSP] -= 2
	cpu.WriteWord(cpu.Register[isa.REG_RSP], value)
}

// pop loads the word at rsp, and increments rsp by a word.
func (cpu *Cpu) pop() (value uint16) {
	value = cpu.ReadWord(cpu.Register[isa.REG_RSP])
	cpu.Register[isa.REG_RSP] += 2
	return
}

func execNop(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	return next_ip
}

func execHlt(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	cpu.Halted = true
	return next_ip
}

func execMov(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	cpu.Register[code.Operands[0].Register] = cpu.value(code.Operands[1])
	return next_ip
}

func execLda(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	address := cpu.value(code.Operands[1])
	cpu.Register[code.Operands[0].Register] = cpu.ReadWord(address)
	return next_ip
}

func execSta(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	address := cpu.value(code.Operands[0])
	cpu.WriteWord(address, cpu.value(code.Operands[1]))
	return next_ip
}

func execAdd(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	dst := &cpu.Register[code.Operands[0].Register]
	a := *dst
	b := cpu.value(code.Operands[1])

	wide := uint32(a) + uint32(b)
	result := uint16(wide)

	flags := resultFlags(result)
	if wide > 0xffff {
		flags |= FLAG_C
	}
	if (^(a ^ b) & (a ^ result) & 0x8000) != 0 {
		flags |= FLAG_V
	}

	*dst = result
	cpu.setFlags(FLAG_Z|FLAG_C|FLAG_V|FLAG_N, flags)

	return next_ip
}

func execSub(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	dst := &cpu.Register[code.Operands[0].Register]
	a := *dst
	b := cpu.value(code.Operands[1])

	result := a - b

	flags := resultFlags(result)
	if b > a {
		flags |= FLAG_C
	}
	if ((a ^ b) & (a ^ result) & 0x8000) != 0 {
		flags |= FLAG_V
	}

	*dst = result
	cpu.setFlags(FLAG_Z|FLAG_C|FLAG_V|FLAG_N, flags)

	return next_ip
}

func execLogic(op func(a, b uint16) uint16) handler {
	return func(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
		dst := &cpu.Register[code.Operands[0].Register]
		*dst = op(*dst, cpu.value(code.Operands[1]))
		cpu.setFlags(FLAG_Z|FLAG_V|FLAG_N, resultFlags(*dst))
		return next_ip
	}
}

func execNot(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	dst := &cpu.Register[code.Operands[0].Register]
	*dst = ^*dst
	cpu.setFlags(FLAG_Z|FLAG_V|FLAG_N, resultFlags(*dst))
	return next_ip
}

// shiftCount clamps a shift count; anything past 16 shifts out every bit.
func shiftCount(value uint16) uint {
	return uint(min(value, 17))
}

func execShl(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	dst := &cpu.Register[code.Operands[0].Register]
	count := shiftCount(cpu.value(code.Operands[1]))

	wide := uint32(*dst) << count
	*dst = uint16(wide)

	flags := resultFlags(*dst)
	if (wide>>16)&1 != 0 {
		flags |= FLAG_C
	}
	cpu.setFlags(FLAG_Z|FLAG_C|FLAG_V|FLAG_N, flags)

	return next_ip
}

func execShr(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	dst := &cpu.Register[code.Operands[0].Register]
	count := shiftCount(cpu.value(code.Operands[1]))

	var carry uint16
	if count > 0 {
		carry = (*dst >> (count - 1)) & 1
	}
	*dst >>= count

	flags := resultFlags(*dst)
	if carry != 0 {
		flags |= FLAG_C
	}
	cpu.setFlags(FLAG_Z|FLAG_C|FLAG_V|FLAG_N, flags)

	return next_ip
}

func execPush(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	cpu.push(cpu.value(code.Operands[0]))
	return next_ip
}

func execPop(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	value := cpu.pop()
	cpu.Register[code.Operands[0].Register] = value
	return next_ip
}

// execJump jumps if any of the flags in cond are set, or always if cond is 0.
func execJump(cond Flag) handler {
	return func(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
		if cond == 0 || cpu.Flags()&cond != 0 {
			return cpu.value(code.Operands[0])
		}
		return next_ip
	}
}

func execCall(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	target := cpu.value(code.Operands[0])
	cpu.push(next_ip)
	return target
}

func execRet(cpu *Cpu, code isa.Code, next_ip uint16) uint16 {
	return cpu.pop()
}
