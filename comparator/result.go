package comparator

import (
	"fmt"

	"github.com/poiesic/arraycompare/core"
)

// Result is the outcome of evaluating every probe of a Comparator.
type Result struct {
	Success bool

	// Set when Success is false. They describe the first failing probe.
	FailedIndex    int
	FailedStrategy string
	FailedSample   core.Sample
	FailedID       core.ID // fingerprint of FailedSample
}

func (r Result) String() string {
	if r.Success {
		return "success"
	}
	s := r.FailedSample
	return fmt.Sprintf("probe %d failed: %s id=%016x data=%q keywords=%q exceptions=%q",
		r.FailedIndex, r.FailedStrategy, uint64(r.FailedID), s.Data, s.Keywords, s.Exceptions)
}
