package advent

const (
	PART_ONE uint = 1
	PART_TWO uint = 2
)

const (
	FUEL_PUZZLE    = "fuel"
	INTCODE_PUZZLE = "intcode"
	WIRES_PUZZLE   = "wires"
)

const (
	DEFAULT_BATCH_SIZE uint = 100
	DEFAULT_LOG_LEVEL       = "info"
	// Registry misses within this edit distance get a suggestion.
	SUGGESTION_DISTANCE = 3
)

// Why a trial was rejected by the Selector.
const (
	FailedMachineRun   SelectFailReason = 1
	FailedTargetOutput SelectFailReason = 2
)
