package advent

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"nickandperla.net/advent/intcode"
)

type ToolConfig struct {
	LogLevel    string             `toml:"log_level"`
	Intcode     *IntcodeConfig     `toml:"intcode"`
	Search      *SearchConfig      `toml:"search"`
	Persistence *PersistenceConfig `toml:"persistence"`
}

type IntcodeConfig struct {
	Noun    int                    `toml:"noun"`
	Verb    int                    `toml:"verb"`
	Machine *intcode.MachineConfig `toml:"machine"`
}

type SearchConfig struct {
	Target    int  `toml:"target"`
	NounLimit int  `toml:"noun_limit"`
	VerbLimit int  `toml:"verb_limit"`
	Workers   uint `toml:"workers"`
	BatchSize uint `toml:"batch_size"`
}

func (sc *SearchConfig) Bounds() *intcode.SearchConfig {
	return &intcode.SearchConfig{
		Target:    sc.Target,
		NounLimit: sc.NounLimit,
		VerbLimit: sc.VerbLimit,
	}
}

func DefaultToolConfig() *ToolConfig {
	tc := &ToolConfig{}
	tc.applyDefaults()
	return tc
}

// LoadToolConfig decodes the TOML file at path. A missing file yields the
// defaults. Persistence stays disabled unless configured.
func LoadToolConfig(path string) (*ToolConfig, error) {
	conffile, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No tool config at %s, using defaults", path)
		return DefaultToolConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("Unable to load tool config: %w", err)
	}
	defer conffile.Close()

	// Keys missing from the file keep their defaults.
	tc := DefaultToolConfig()
	md, err := toml.NewDecoder(conffile).Decode(tc)
	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warnf("Ignoring unknown tool config keys: %v", undecoded)
	}

	tc.applyDefaults()
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	return tc, nil
}

func (tc *ToolConfig) applyDefaults() {
	if tc.LogLevel == "" {
		tc.LogLevel = DEFAULT_LOG_LEVEL
	}

	if tc.Intcode == nil {
		tc.Intcode = &IntcodeConfig{Noun: intcode.DEFAULT_NOUN, Verb: intcode.DEFAULT_VERB}
	}
	if tc.Intcode.Machine == nil {
		tc.Intcode.Machine = intcode.DefaultMachineConfig()
	}

	if tc.Search == nil {
		tc.Search = &SearchConfig{Target: intcode.DEFAULT_TARGET}
	}
	if tc.Search.NounLimit == 0 {
		tc.Search.NounLimit = intcode.DEFAULT_INPUT_SIZE
	}
	if tc.Search.VerbLimit == 0 {
		tc.Search.VerbLimit = intcode.DEFAULT_INPUT_SIZE
	}
	if tc.Search.Workers == 0 {
		tc.Search.Workers = uint(runtime.NumCPU())
	}
	if tc.Search.BatchSize == 0 {
		tc.Search.BatchSize = DEFAULT_BATCH_SIZE
	}
}

func (tc *ToolConfig) Validate() error {
	if _, err := log.ParseLevel(tc.LogLevel); err != nil {
		return fmt.Errorf("Invalid log_level [%s]: %w", tc.LogLevel, err)
	}
	if tc.Search.NounLimit < 0 || tc.Search.VerbLimit < 0 {
		return fmt.Errorf("Search limits must not be negative, got noun_limit [%d] verb_limit [%d]", tc.Search.NounLimit, tc.Search.VerbLimit)
	}
	if tc.Intcode.Noun < 0 || tc.Intcode.Verb < 0 {
		return fmt.Errorf("Noun [%d] and verb [%d] must not be negative", tc.Intcode.Noun, tc.Intcode.Verb)
	}
	return nil
}

// ConfigureLogging applies LogLevel to the package logger. verbose forces
// debug output.
func (tc *ToolConfig) ConfigureLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(tc.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}
