// Package mmu simulates a memory management unit with a fixed pool of
// physical frames and a pluggable page replacement policy. Accesses only
// model page presence; counters record the page faults, disk reads and disk
// writes the accesses would cause.
//
// A Simulator is not safe for concurrent use.
package mmu

//go:generate mockgen -source mmu.go -destination mmu_mocks.go -package mmu

import (
	"io"
	"log/slog"
	"strings"

	"golang.org/x/exp/slices"
)

// MMU is the capability set shared by every replacement policy
type MMU interface {
	// ReadMemory accesses a page for reading and reports whether it faulted
	ReadMemory(page PageID) (bool, error)
	// WriteMemory accesses a page for writing and reports whether it faulted
	WriteMemory(page PageID) (bool, error)

	TotalPageFaults() uint64
	TotalDiskReads() uint64
	TotalDiskWrites() uint64

	// SetDebug enables per-access trace logging
	SetDebug()
	// ResetDebug disables per-access trace logging
	ResetDebug()

	// Frames returns the occupant of every frame in frame order
	Frames() []FrameEntry
}

// Simulator implements MMU on top of a FrameStore and a Replacer
type Simulator struct {
	store    *FrameStore
	replacer Replacer
	stats    *counters
	debug    bool
	logger   *slog.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLogger sets the logger used for debug traces
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDebug sets the initial debug state
func WithDebug(debug bool) Option {
	return func(s *Simulator) {
		s.debug = debug
	}
}

// NewSimulator creates a simulator with frameCount frames managed by replacer
func NewSimulator(frameCount int, replacer Replacer, opts ...Option) (*Simulator, error) {
	store, err := NewFrameStore(frameCount)
	if err != nil {
		return nil, err
	}
	if replacer == nil {
		return nil, ErrInvalidConfig("NewSimulator", "replacer must not be nil")
	}
	s := &Simulator{
		store:    store,
		replacer: replacer,
		stats:    newCounters(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewClockMMU creates a simulator using the clock policy
func NewClockMMU(frameCount int, opts ...Option) (*Simulator, error) {
	if frameCount < 1 {
		return nil, ErrInvalidFrameCount("NewClockMMU", frameCount)
	}
	return NewSimulator(frameCount, NewClockReplacer(frameCount), opts...)
}

// NewLRUMMU creates a simulator using the LRU policy
func NewLRUMMU(frameCount int, opts ...Option) (*Simulator, error) {
	if frameCount < 1 {
		return nil, ErrInvalidFrameCount("NewLRUMMU", frameCount)
	}
	return NewSimulator(frameCount, NewLRUReplacer(frameCount), opts...)
}

// NewRandomMMU creates a simulator using the random policy with the given source
func NewRandomMMU(frameCount int, source RandomSource, opts ...Option) (*Simulator, error) {
	if source == nil {
		return nil, ErrInvalidConfig("NewRandomMMU", "random source must not be nil")
	}
	return NewSimulator(frameCount, NewRandomReplacer(source), opts...)
}

// NewFromConfig validates config and creates the simulator it describes
func NewFromConfig(config *Config, logger *slog.Logger) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	replacer, err := NewReplacer(config.Policy, config.Frames, config.Seed)
	if err != nil {
		return nil, err
	}
	return NewSimulator(config.Frames, replacer, WithLogger(logger), WithDebug(config.Debug))
}

func (s *Simulator) ReadMemory(page PageID) (bool, error) {
	return s.access("ReadMemory", page, false)
}

func (s *Simulator) WriteMemory(page PageID) (bool, error) {
	return s.access("WriteMemory", page, true)
}

func (s *Simulator) access(op string, page PageID, write bool) (bool, error) {
	if page < 0 {
		return false, ErrInvalidPage(op, page)
	}

	if frame, ok := s.store.Lookup(page); ok {
		s.stats.recordHit()
		s.replacer.Accessed(frame, page)
		if write {
			s.store.MarkDirty(page)
		}
		if s.debug {
			s.logger.Debug("hit", "op", op, "page", page, "frame", frame, "dirty", s.store.IsDirty(page))
		}
		return false, nil
	}

	s.stats.recordFault()
	frame := s.allocateFrame(page)
	s.store.install(frame, page)
	s.replacer.Accessed(frame, page)
	if write {
		s.store.MarkDirty(page)
	}
	if s.debug {
		s.logger.Debug("page fault", "op", op, "page", page, "frame", frame,
			"disk_reads", s.stats.diskReads, "dirty", write)
	}
	return true, nil
}

// allocateFrame returns a free frame, evicting a victim when none is left
func (s *Simulator) allocateFrame(page PageID) FrameID {
	if frame, ok := s.store.FreeFrame(); ok {
		if s.debug {
			s.logger.Debug("allocating free frame", "frame", frame, "page", page)
		}
		return frame
	}

	victim := s.replacer.Victim(s.store)
	if sweeper, ok := s.replacer.(SweepReporter); ok {
		s.stats.sweepLengths.Record(float64(sweeper.LastSweepLength()))
	}

	evicted, dirty := s.store.evict(victim)
	s.replacer.Removed(victim, evicted)
	s.stats.recordEviction(dirty)

	if s.debug {
		if dirty {
			s.logger.Debug("writing dirty page to disk", "page", evicted, "frame", victim,
				"disk_writes", s.stats.diskWrites)
		} else {
			s.logger.Debug("evicting clean page", "page", evicted, "frame", victim)
		}
	}
	return victim
}

func (s *Simulator) TotalPageFaults() uint64 {
	return s.stats.pageFaults
}

func (s *Simulator) TotalDiskReads() uint64 {
	return s.stats.diskReads
}

func (s *Simulator) TotalDiskWrites() uint64 {
	return s.stats.diskWrites
}

// Stats returns a snapshot of every counter
func (s *Simulator) Stats() Statistics {
	return s.stats.snapshot()
}

// SetDebug enables per-access debug logging. Output goes to the logger given
// with WithLogger at debug level; without one it is discarded.
func (s *Simulator) SetDebug() {
	s.debug = true
}

func (s *Simulator) ResetDebug() {
	s.debug = false
}

// Debug reports whether debug tracing is enabled
func (s *Simulator) Debug() bool {
	return s.debug
}

func (s *Simulator) Frames() []FrameEntry {
	return s.store.Snapshot()
}

// FrameCount returns the number of physical frames
func (s *Simulator) FrameCount() int {
	return s.store.FrameCount()
}

// Policy returns the replacement policy name
func (s *Simulator) Policy() string {
	return s.replacer.Name()
}

// IsResident reports whether a page currently occupies a frame
func (s *Simulator) IsResident(page PageID) bool {
	_, ok := s.store.Lookup(page)
	return ok
}

// IsDirty reports whether a resident page has been written since it was loaded
func (s *Simulator) IsDirty(page PageID) bool {
	return s.store.IsDirty(page)
}

// ResidentPages returns the resident pages in ascending order
func (s *Simulator) ResidentPages() []PageID {
	pages := make([]PageID, 0, s.store.Used())
	for _, e := range s.store.Snapshot() {
		if e.Occupied {
			pages = append(pages, e.Page)
		}
	}
	slices.Sort(pages)
	return pages
}

// DirtyPages returns the dirty pages in ascending order
func (s *Simulator) DirtyPages() []PageID {
	return s.store.DirtyPages()
}

// CheckInvariants verifies the frame store's internal consistency
func (s *Simulator) CheckInvariants() error {
	return s.store.CheckInvariants()
}

// FormatFrames renders a frame snapshot as "Page Table: 1 - 3"
func FormatFrames(entries []FrameEntry) string {
	var sb strings.Builder
	sb.WriteString("Page Table:")
	for _, e := range entries {
		sb.WriteByte(' ')
		sb.WriteString(e.String())
	}
	return sb.String()
}
