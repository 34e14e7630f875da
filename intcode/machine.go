package intcode

import (
	"fmt"
)

var ErrMaxInstructionExecutionCountReached error = fmt.Errorf("Instruction execution count limit reached")

const (
	NOUN_ADDRESS   = 1
	VERB_ADDRESS   = 2
	OUTPUT_ADDRESS = 0
)

type Machine struct {
	Memory             *Memory
	Config             *MachineConfig
	InstructionPointer int
	InstructionCount   uint
	image              []int
}

type MachineConfig struct {
	// Zero disables the limit. The instruction pointer only moves forward,
	// so a run never executes more than len(memory)/INSTRUCTION_WIDTH+1
	// instructions without one.
	MaxInstructionExecutionCount uint `toml:"max_instructions"`
}

func DefaultMachineConfig() *MachineConfig {
	return &MachineConfig{}
}

func NewMachine(mc *MachineConfig) *Machine {
	if mc == nil {
		mc = DefaultMachineConfig()
	}
	return &Machine{
		Memory: NewMemory(nil),
		Config: mc,
	}
}

// LoadProgram keeps its own copy of program; Reset restores memory to it.
func (m *Machine) LoadProgram(program []int) {
	m.image = make([]int, len(program))
	copy(m.image, program)
	m.Reset()
}

// Fork returns a machine with its own copy of memory. The loaded image is
// shared; it is never written after LoadProgram.
func (m *Machine) Fork() *Machine {
	return &Machine{
		Memory:             m.Memory.Clone(),
		Config:             m.Config,
		InstructionPointer: m.InstructionPointer,
		InstructionCount:   m.InstructionCount,
		image:              m.image,
	}
}

func (m *Machine) Reset() {
	m.Memory.Restore(m.image)
	m.InstructionPointer = 0
	m.InstructionCount = 0
}

func (m *Machine) SetInputs(noun, verb int) (bool, error) {
	if ok, err := m.Memory.Write(NOUN_ADDRESS, noun); !ok {
		return false, fmt.Errorf("Failed to set noun [%d]. %v", noun, err)
	}
	if ok, err := m.Memory.Write(VERB_ADDRESS, verb); !ok {
		return false, fmt.Errorf("Failed to set verb [%d]. %v", verb, err)
	}
	return true, nil
}

func (m *Machine) ReadMemory(count uint) (bool, []int, error) {
	if count > uint(len(m.Memory.Cells)) {
		return false, []int{}, fmt.Errorf("Failed to read memory. Read count [%d] is greater than memory capacity [%d]", count, len(m.Memory.Cells))
	}

	return true, m.Memory.Cells[0:count], nil
}

func (m *Machine) Output() (bool, int, error) {
	if ok, val, err := m.Memory.Read(OUTPUT_ADDRESS); ok {
		return true, val, nil
	} else {
		return false, 0, fmt.Errorf("Failed to read output. %v", err)
	}
}

// Run executes from the current instruction pointer until a halt, the end of
// memory, or an error.
func (m *Machine) Run() (bool, error) {
	for m.Memory.InBounds(m.InstructionPointer) {
		if m.Config.MaxInstructionExecutionCount > 0 && m.InstructionCount >= m.Config.MaxInstructionExecutionCount {
			return false, ErrMaxInstructionExecutionCountReached
		}

		op := OP(m.Memory.Cells[m.InstructionPointer])

		ok, err := op.Execute(m.InstructionPointer, m.Memory)
		m.InstructionCount = m.InstructionCount + 1
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}

		m.InstructionPointer = m.InstructionPointer + INSTRUCTION_WIDTH
	}

	return true, nil
}

// RunWithInputs resets the machine, sets noun and verb, runs it and returns
// the output cell.
func (m *Machine) RunWithInputs(noun, verb int) (int, error) {
	m.Reset()

	if ok, err := m.SetInputs(noun, verb); !ok {
		return 0, err
	}

	if ok, err := m.Run(); !ok {
		return 0, err
	}

	_, out, err := m.Output()
	return out, err
}
