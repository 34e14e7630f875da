package fuel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRequiredFuel(t *testing.T) {
	cases := map[Mass]Fuel{
		2:      0,
		12:     2,
		14:     2,
		1969:   654,
		100756: 33583,
	}

	for mass, want := range cases {
		if got := RequiredFuel(mass); got != want {
			t.Errorf("RequiredFuel(%d) returned [%d], expected [%d]", mass, got, want)
		}
	}
}

func TestTotalRequiredFuel(t *testing.T) {
	cases := map[Mass]Fuel{
		14:     2,
		1969:   966,
		100756: 50346,
	}

	for mass, want := range cases {
		if got := TotalRequiredFuel(mass); got != want {
			t.Errorf("TotalRequiredFuel(%d) returned [%d], expected [%d]", mass, got, want)
		}
	}
}

func TestFuelRequiredFuel(t *testing.T) {
	if got := Fuel(2).RequiredFuel(); got != 0 {
		t.Errorf("Fuel(2).RequiredFuel() returned [%d], expected [0]", got)
	}

	if got := Fuel(654).RequiredFuel(); got != 312 {
		t.Errorf("Fuel(654).RequiredFuel() returned [%d], expected [312]", got)
	}

	if Fuel(4).Mass() != Mass(4) {
		t.Errorf("Fuel(4).Mass() is not Mass(4)")
	}

	if Fuel(654).String() != "Fuel: 654 units" {
		t.Errorf("Fuel(654).String() returned [%s]", Fuel(654).String())
	}
}

func TestSum(t *testing.T) {
	masses := []Mass{12, 14, 1969, 100756}

	if got := Sum(masses, RequiredFuel); got != 34241 {
		t.Errorf("Sum of RequiredFuel returned [%d], expected [34241]", got)
	}

	if got := Sum(masses, TotalRequiredFuel); got != 51316 {
		t.Errorf("Sum of TotalRequiredFuel returned [%d], expected [51316]", got)
	}

	if got := Sum(nil, RequiredFuel); got != 0 {
		t.Errorf("Sum of no masses returned [%d], expected [0]", got)
	}
}

func TestParseMasses(t *testing.T) {
	masses, err := ParseMasses(strings.NewReader("12\n\n 14 \n1969\n"))
	if err != nil {
		t.Fatalf("Unexpected failure calling ParseMasses. %v", err)
	}

	if diff := cmp.Diff([]Mass{12, 14, 1969}, masses); diff != "" {
		t.Errorf("ParseMasses mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseMasses(strings.NewReader("12\nabc\n")); err == nil {
		t.Errorf("Unexpected success calling ParseMasses with a bad line")
	} else if !strings.HasPrefix(err.Error(), "Failed to parse mass on line [2]") {
		t.Errorf("Error string doesn't match: %v", err)
	}

	if _, err := ParseMasses(strings.NewReader("-5\n")); err == nil {
		t.Errorf("Unexpected success calling ParseMasses with a negative mass")
	} else if err.Error() != "Failed to parse mass on line [1]: value [-5] is negative" {
		t.Errorf("Error string doesn't match: %v", err)
	}
}
