package advent

import (
	"os"
	"path/filepath"
	"runtime"
	test "testing"

	"github.com/google/go-cmp/cmp"

	"nickandperla.net/advent/intcode"
)

func writeToolConfig(t *test.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write tool config: %v", err)
	}
	return path
}

func TestDefaultToolConfig(t *test.T) {
	tc := DefaultToolConfig()

	want := &ToolConfig{
		LogLevel: "info",
		Intcode: &IntcodeConfig{
			Noun:    12,
			Verb:    2,
			Machine: &intcode.MachineConfig{},
		},
		Search: &SearchConfig{
			Target:    19690720,
			NounLimit: 100,
			VerbLimit: 100,
			Workers:   uint(runtime.NumCPU()),
			BatchSize: 100,
		},
	}
	if diff := cmp.Diff(want, tc); diff != "" {
		t.Errorf("DefaultToolConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadToolConfigMissingFile(t *test.T) {
	tc, err := LoadToolConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Unexpected failure loading a missing config: %v", err)
	}

	if diff := cmp.Diff(DefaultToolConfig(), tc); diff != "" {
		t.Errorf("Missing config didn't produce defaults (-want +got):\n%s", diff)
	}
}

func TestLoadToolConfig(t *test.T) {
	path := writeToolConfig(t, `
log_level = "debug"

[intcode]
noun = 5
verb = 7

[intcode.machine]
max_instructions = 50

[search]
target = 12014
workers = 3

[persistence]
name = "answers.db"
path = "/tmp/advent"
sqlite_pragmas = ["journal_mode(WAL)"]
`)

	tc, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("Unexpected failure calling LoadToolConfig(). %v", err)
	}

	want := &ToolConfig{
		LogLevel: "debug",
		Intcode: &IntcodeConfig{
			Noun:    5,
			Verb:    7,
			Machine: &intcode.MachineConfig{MaxInstructionExecutionCount: 50},
		},
		Search: &SearchConfig{
			Target:    12014,
			NounLimit: 100,
			VerbLimit: 100,
			Workers:   3,
			BatchSize: 100,
		},
		Persistence: &PersistenceConfig{
			Name:          "answers.db",
			Path:          "/tmp/advent",
			SQLitePragmas: []string{"journal_mode(WAL)"},
		},
	}
	if diff := cmp.Diff(want, tc); diff != "" {
		t.Errorf("LoadToolConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadToolConfigPartialSections(t *test.T) {
	path := writeToolConfig(t, `
[intcode.machine]
max_instructions = 0

[search]
workers = 2
`)

	tc, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("Unexpected failure calling LoadToolConfig(). %v", err)
	}

	want := DefaultToolConfig()
	want.Search.Workers = 2
	if diff := cmp.Diff(want, tc); diff != "" {
		t.Errorf("Partial sections lost their defaults (-want +got):\n%s", diff)
	}

	if tc.Intcode.Noun != 12 || tc.Intcode.Verb != 2 || tc.Search.Target != 19690720 {
		t.Errorf("Expected noun [12] verb [2] target [19690720], got noun [%d] verb [%d] target [%d]", tc.Intcode.Noun, tc.Intcode.Verb, tc.Search.Target)
	}
}

func TestLoadToolConfigExplicitZeroNoun(t *test.T) {
	tc, err := LoadToolConfig(writeToolConfig(t, "[intcode]\nnoun = 0\n"))
	if err != nil {
		t.Fatalf("Unexpected failure calling LoadToolConfig(). %v", err)
	}

	if tc.Intcode.Noun != 0 || tc.Intcode.Verb != 2 {
		t.Errorf("Expected noun [0] verb [2], got noun [%d] verb [%d]", tc.Intcode.Noun, tc.Intcode.Verb)
	}
}

func TestLoadToolConfigErrors(t *test.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "log_level = \n"},
		{"bad level", "log_level = \"chatty\"\n"},
		{"negative noun", "[intcode]\nnoun = -1\n"},
		{"negative limit", "[search]\nverb_limit = -3\n"},
	}

	for _, tt := range tests {
		if _, err := LoadToolConfig(writeToolConfig(t, tt.body)); err == nil {
			t.Errorf("%s: LoadToolConfig() accepted an invalid config", tt.name)
		}
	}
}

func TestValidateMessage(t *test.T) {
	tc := DefaultToolConfig()
	tc.Intcode.Verb = -2

	err := tc.Validate()
	if err == nil || err.Error() != "Noun [12] and verb [-2] must not be negative" {
		t.Errorf("Validate() error string doesn't match: %v", err)
	}
}

func TestSearchConfigBounds(t *test.T) {
	sc := &SearchConfig{Target: 9, NounLimit: 3, VerbLimit: 4, Workers: 2, BatchSize: 1}

	want := &intcode.SearchConfig{Target: 9, NounLimit: 3, VerbLimit: 4}
	if diff := cmp.Diff(want, sc.Bounds()); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}
}
