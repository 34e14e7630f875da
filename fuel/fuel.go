// Package fuel computes the fuel needed to launch modules of a given mass.
package fuel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	DIVIDE_BY = 3
	REDUCE_BY = 2
)

type Mass int

type Fuel int

func (f Fuel) Mass() Mass {
	return Mass(f)
}

// RequiredFuel is the extra fuel needed to carry f, repeated until a step
// needs none. f itself is not included.
func (f Fuel) RequiredFuel() Fuel {
	var total Fuel
	for next := f.Mass().RequiredFuel(); next > 0; next = next.Mass().RequiredFuel() {
		total += next
	}
	return total
}

func (f Fuel) String() string {
	return fmt.Sprintf("Fuel: %d units", int(f))
}

// RequiredFuel is floor(m/3) - 2, never below zero.
func (m Mass) RequiredFuel() Fuel {
	n := int(m)/DIVIDE_BY - REDUCE_BY
	if n < 0 {
		return 0
	}
	return Fuel(n)
}

// TotalRequiredFuel includes the fuel needed for the fuel itself.
func (m Mass) TotalRequiredFuel() Fuel {
	f := m.RequiredFuel()
	return f + f.RequiredFuel()
}

func RequiredFuel(m Mass) Fuel {
	return m.RequiredFuel()
}

func TotalRequiredFuel(m Mass) Fuel {
	return m.TotalRequiredFuel()
}

// Sum folds f over masses.
func Sum(masses []Mass, f func(Mass) Fuel) Fuel {
	var total Fuel
	for _, m := range masses {
		total += f(m)
	}
	return total
}

// ParseMasses reads one non-negative integer per line. Blank lines are
// skipped.
func ParseMasses(r io.Reader) ([]Mass, error) {
	var masses []Mass
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse mass on line [%d]: %w", line, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("Failed to parse mass on line [%d]: value [%d] is negative", line, n)
		}
		masses = append(masses, Mass(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return masses, nil
}
