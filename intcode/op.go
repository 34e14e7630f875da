package intcode

import (
	"errors"
	"fmt"
	"math"
)

// The opcodes of the calculator. Every instruction is INSTRUCTION_WIDTH cells
// wide: the opcode, two operand pointers and a destination pointer. Halt only
// uses the opcode cell but the layout stays fixed.

//  ip
// [1][9][10][3] ...
// add memory[9] and memory[10], store the sum at memory[3]

type OP int

const (
	OP_ADD      = OP(1)
	OP_MULTIPLY = OP(2)
	OP_HALT     = OP(99)
)

const INSTRUCTION_WIDTH = 4

var OP_SET = [...]OP{
	OP_ADD,
	OP_MULTIPLY,
	OP_HALT,
}

var (
	ErrUnknownOpcode = errors.New("Unknown opcode")
	ErrOverflow      = errors.New("Integer overflow")
)

func (o OP) String() string {
	switch o {
	case OP_ADD:
		return "OP_ADD"
	case OP_MULTIPLY:
		return "OP_MULTIPLY"
	case OP_HALT:
		return "OP_HALT"
	}
	return fmt.Sprintf("OP(%d)", int(o))
}

// Execute runs the instruction at ip. It returns false with a nil error when
// the machine should halt.
func (o OP) Execute(ip int, memory *Memory) (bool, error) {
	switch o {
	case OP_ADD, OP_MULTIPLY:
		ok, a, err := memory.ReadPositional(ip + 1)
		if !ok {
			return false, fmt.Errorf("%v at address [%d] failed to read first operand. %v", o, ip, err)
		}
		ok, b, err := memory.ReadPositional(ip + 2)
		if !ok {
			return false, fmt.Errorf("%v at address [%d] failed to read second operand. %v", o, ip, err)
		}

		result, ok := checkedAdd(a, b)
		if o == OP_MULTIPLY {
			result, ok = checkedMultiply(a, b)
		}
		if !ok {
			return false, fmt.Errorf("%v at address [%d] failed on operands [%d] and [%d]. %w", o, ip, a, b, ErrOverflow)
		}

		if ok, err := memory.WritePositional(ip+3, result); !ok {
			return false, fmt.Errorf("%v at address [%d] failed to store result. %v", o, ip, err)
		}
	case OP_HALT:
		return false, nil
	default:
		return false, fmt.Errorf("%w [%d] at address [%d]", ErrUnknownOpcode, int(o), ip)
	}

	return true, nil
}

func checkedAdd(a, b int) (int, bool) {
	sum := a + b
	return sum, (sum > a) == (b > 0)
}

func checkedMultiply(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	product := a * b
	return product, product/b == a
}
