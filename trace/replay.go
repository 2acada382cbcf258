package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sibexico/memsim/mmu"
)

// how many records are replayed between context checks
const cancelCheckInterval = 1024

// Options control a replay
type Options struct {
	// Logger receives per-step traces when Debug is set. Nil discards them.
	Logger *slog.Logger
	// Debug logs every access and the frame table after it
	Debug bool
	// Limit stops the replay after this many records; 0 means no limit
	Limit uint64
}

// Summary counts what a replay did
type Summary struct {
	Accesses uint64
	Reads    uint64
	Writes   uint64
	Faults   uint64
}

// FaultRate returns faults per access, or 0 for an empty replay
func (s Summary) FaultRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Faults) / float64(s.Accesses)
}

// Replay feeds every record of r into m. It stops at the end of the trace,
// at the limit, on the first error, or when ctx is cancelled.
func Replay(ctx context.Context, m mmu.MMU, r *Reader, opts Options) (Summary, error) {
	var summary Summary
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for opts.Limit == 0 || summary.Accesses < opts.Limit {
		if summary.Accesses%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
		}

		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, err
		}

		var (
			fault  bool
			action string
		)
		if rec.Write {
			fault, err = m.WriteMemory(rec.Page)
			action = "Write"
		} else {
			fault, err = m.ReadMemory(rec.Page)
			action = "Read"
		}
		if err != nil {
			return summary, fmt.Errorf("line %d: %w", r.Line(), err)
		}
		summary.Accesses++
		if rec.Write {
			summary.Writes++
		} else {
			summary.Reads++
		}
		if fault {
			summary.Faults++
		}

		if opts.Debug {
			status := "HIT"
			if fault {
				status = "PAGE FAULT"
			}
			logger.Debug("step",
				"step", summary.Accesses,
				"action", action,
				"page", rec.Page,
				"status", status,
				"frames", mmu.FormatFrames(m.Frames()),
			)
		}
	}

	return summary, nil
}
