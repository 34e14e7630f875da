package advent

import (
	"nickandperla.net/advent/intcode"
)

// A Trial is one noun and verb pair. Index is its position in noun-major
// order, which is the order the sequential search would try it in.
type Trial struct {
	Index int
	Noun  int
	Verb  int
}

// An Evaluation is the outcome of running the program for one Trial.
// Deciding whether it answers the search is the Selector's job.
type Evaluation struct {
	Trial                Trial
	MachineRun           bool
	Output               int
	InstructionsExecuted uint
	MachineError         error
}

// Evaluator owns a Machine. It is not safe for concurrent use; each
// Processor gets its own.
type Evaluator struct {
	Machine *intcode.Machine
}

func NewEvaluator(program []int, mc *intcode.MachineConfig) *Evaluator {
	m := intcode.NewMachine(mc)
	m.LoadProgram(program)
	return &Evaluator{Machine: m}
}

// Fork returns an Evaluator with its own copy of the machine, for use by
// another Processor.
func (e *Evaluator) Fork() *Evaluator {
	return &Evaluator{Machine: e.Machine.Fork()}
}

func (e *Evaluator) Evaluate(t Trial) *Evaluation {
	eval := &Evaluation{Trial: t}

	out, err := e.Machine.RunWithInputs(t.Noun, t.Verb)
	eval.InstructionsExecuted = e.Machine.InstructionCount
	if err != nil {
		eval.MachineError = err
		return eval
	}

	eval.MachineRun = true
	eval.Output = out
	return eval
}
