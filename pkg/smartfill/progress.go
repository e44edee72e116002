package smartfill

// Complete is the progress value at which analysis is done
const Complete = 100

// Progress is a counter from 0 to Complete
type Progress struct {
	value int
}

// Step describes one Advance
type Step struct {
	Progress     int
	Phase        int
	Label        string
	PhaseChanged bool
	// Completed is true only on the step that reaches Complete.
	Completed bool
}

// Value returns the current progress
func (p *Progress) Value() int {
	return p.value
}

// Done reports whether the counter reached Complete
func (p *Progress) Done() bool {
	return p.value >= Complete
}

// Advance increments the counter by one. Once done it returns the final step
// with Completed false, so completion is reported exactly once.
func (p *Progress) Advance() Step {
	if p.Done() {
		return Step{Progress: p.value, Phase: PhaseFor(p.value), Label: Label(p.value)}
	}
	before := PhaseFor(p.value)
	p.value++
	phase := PhaseFor(p.value)
	return Step{
		Progress:     p.value,
		Phase:        phase,
		Label:        phaseLabels[phase],
		PhaseChanged: phase != before,
		Completed:    p.value == Complete,
	}
}
