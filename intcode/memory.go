package intcode

import (
	"fmt"

	cp "github.com/jinzhu/copier"
)

type Memory struct {
	Cells []int
}

func NewMemory(cells []int) *Memory {
	m := &Memory{Cells: make([]int, len(cells))}
	copy(m.Cells, cells)
	return m
}

func (m *Memory) InBounds(address int) bool {
	return address >= 0 && address <= len(m.Cells)-1
}

func (m *Memory) Read(address int) (bool, int, error) {
	if !m.InBounds(address) {
		return false, 0, fmt.Errorf("Memory address [%d] out of bounds (Memory length: [%d])", address, len(m.Cells))
	}
	return true, m.Cells[address], nil
}

// ReadPositional follows the pointer stored at address and returns the value
// it points to.
func (m *Memory) ReadPositional(address int) (bool, int, error) {
	ok, pointer, err := m.Read(address)
	if !ok {
		return false, 0, err
	}
	if ok, val, err := m.Read(pointer); ok {
		return true, val, nil
	} else {
		return false, 0, fmt.Errorf("Failed to follow pointer at address [%d]. %v", address, err)
	}
}

func (m *Memory) Write(address, val int) (bool, error) {
	if !m.InBounds(address) {
		return false, fmt.Errorf("Failed to write value [%d]. Memory address [%d] out of bounds (Memory length: [%d])", val, address, len(m.Cells))
	}
	m.Cells[address] = val
	return true, nil
}

// WritePositional stores val at the address held in the cell at address.
func (m *Memory) WritePositional(address, val int) (bool, error) {
	ok, pointer, err := m.Read(address)
	if !ok {
		return false, err
	}
	if ok, err := m.Write(pointer, val); !ok {
		return false, fmt.Errorf("Failed to follow pointer at address [%d]. %v", address, err)
	}
	return true, nil
}

func (m *Memory) Clone() *Memory {
	clone := &Memory{}
	if err := cp.CopyWithOption(clone, m, cp.Option{DeepCopy: true}); err != nil || len(clone.Cells) != len(m.Cells) {
		return NewMemory(m.Cells)
	}
	return clone
}

// Restore overwrites the cells with image. The backing slice is reused when
// the lengths match.
func (m *Memory) Restore(image []int) {
	if len(m.Cells) != len(image) {
		m.Cells = make([]int, len(image))
	}
	copy(m.Cells, image)
}
