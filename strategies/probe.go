package strategies

import "github.com/poiesic/arraycompare/core"

// check reports whether a sample passes.
type check func(sample core.Sample) bool

// checkStrategy builds probes that evaluate check against their sample.
type checkStrategy struct {
	check check
}

func (s checkStrategy) NewProbe(sample core.Sample) core.Probe {
	return &probe{sample: sample, check: s.check}
}

type probe struct {
	sample core.Sample
	check  check
}

func (p *probe) Success() bool {
	return p.check(p.sample)
}
