package mmu

//go:generate mockgen -source replacer.go -destination replacer_mocks.go -package mmu

import "math/rand"

// Policy names accepted by NewReplacer and Config
const (
	PolicyClock  = "clock"
	PolicyLRU    = "lru"
	PolicyRandom = "rand"
)

// Replacer interface for page replacement policies.
// The simulator owns the frame store; a replacer only keeps its own
// bookkeeping and picks victims.
type Replacer interface {
	// Name returns the policy name
	Name() string

	// Accessed informs the replacer that a page was hit or installed in a frame
	Accessed(frame FrameID, page PageID)

	// Victim selects an occupied frame to evict. It is only called when
	// every frame is occupied.
	Victim(view FrameView) FrameID

	// Removed informs the replacer that a page left its frame
	Removed(frame FrameID, page PageID)
}

// SweepReporter is implemented by replacers that scan frames to find a victim.
// The simulator records the reported length after every eviction.
type SweepReporter interface {
	LastSweepLength() int
}

// RandomSource supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a deterministic source for the given seed
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// CanonicalPolicy maps accepted aliases to the policy name replacers report.
// Unknown names are returned unchanged.
func CanonicalPolicy(name string) string {
	if name == "random" {
		return PolicyRandom
	}
	return name
}

// NewReplacer creates a replacer based on the specified algorithm
func NewReplacer(algorithm string, frameCount int, seed int64) (Replacer, error) {
	if frameCount < 1 {
		return nil, ErrInvalidFrameCount("NewReplacer", frameCount)
	}
	switch CanonicalPolicy(algorithm) {
	case PolicyClock:
		return NewClockReplacer(frameCount), nil
	case PolicyLRU:
		return NewLRUReplacer(frameCount), nil
	case PolicyRandom:
		return NewRandomReplacer(NewRandomSource(seed)), nil
	default:
		return nil, ErrUnknownPolicy("NewReplacer", algorithm)
	}
}
