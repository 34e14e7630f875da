package advent

type Selector struct {
	Target int
}

func NewSelector(target int) *Selector {
	return &Selector{Target: target}
}

type SelectFailReason uint

// Select returns 0 when e answers the search.
func (s *Selector) Select(e *Evaluation) SelectFailReason {
	if !e.MachineRun {
		return FailedMachineRun
	}
	if e.Output != s.Target {
		return FailedTargetOutput
	}
	return 0
}
