// Package obslog is the stdlib log wrapper the driver uses for outer-loop
// progress: a deferred timer plus a fixed key=value line format, carrying
// the run's iteration/HV/spread/ε fields alongside a run ID.
package obslog

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// Time starts a timer for a named operation and returns a function to
// call when it completes; pass a non-nil *error to log the failure case.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			log.Printf("run_id=%s op=%s dur=%dms err=%v", runID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("run_id=%s op=%s dur=%dms", runID, name, dur.Milliseconds())
	}
}

// Iteration logs one outer-loop's quality indicators in the same
// key=value style, for operators tailing process logs rather than
// consuming the structured execution log rows directly.
func Iteration(iteration int, hv, spread, epsilon float64, archiveSize, currentK int) {
	log.Printf("iteration=%d hv=%.4f spread=%.4f epsilon=%.6f archive_size=%d k=%d",
		iteration, hv, spread, epsilon, archiveSize, currentK)
}
