package core

// Probe is a single check built by a Strategy from a Sample.
type Probe interface {
	// Success reports whether the sample passed the strategy's check.
	// It has no side effects.
	Success() bool
}

// Strategy builds probes. Strategies are registered by name and looked up
// when a probe is added to a comparator.
type Strategy interface {
	NewProbe(sample Sample) Probe
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(sample Sample) Probe

// NewProbe calls f(sample).
func (f StrategyFunc) NewProbe(sample Sample) Probe {
	return f(sample)
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func() bool

// Success calls f.
func (f ProbeFunc) Success() bool {
	return f()
}
