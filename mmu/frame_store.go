package mmu

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PageID identifies a virtual page. Valid pages are non-negative.
type PageID int64

// FrameID is an index into the frame table, in [0, frameCount).
type FrameID int

// FrameEntry describes the occupant of one frame
type FrameEntry struct {
	Frame    FrameID
	Page     PageID
	Occupied bool
}

// String renders the occupant the way the page table printout expects it:
// the page number, or "-" for a free frame
func (e FrameEntry) String() string {
	if !e.Occupied {
		return "-"
	}
	return fmt.Sprintf("%d", e.Page)
}

// FrameView is the read-only part of the frame store handed to replacers
type FrameView interface {
	// FrameCount returns the fixed number of frames
	FrameCount() int
	// PageAt returns the page in a frame and whether the frame is occupied
	PageAt(frame FrameID) (PageID, bool)
	// IsDirty reports whether a page is in the dirty set
	IsDirty(page PageID) bool
}

// FrameStore owns the frame table, the page table and the dirty set.
// The two tables are only changed together through install and evict.
type FrameStore struct {
	frames    []PageID // frame -> page, valid only when occupied[f]
	occupied  []bool
	pageTable map[PageID]FrameID
	dirty     map[PageID]struct{}
	used      int
}

// NewFrameStore creates an empty frame store with the given number of frames
func NewFrameStore(frameCount int) (*FrameStore, error) {
	if frameCount < 1 {
		return nil, ErrInvalidFrameCount("NewFrameStore", frameCount)
	}
	return &FrameStore{
		frames:    make([]PageID, frameCount),
		occupied:  make([]bool, frameCount),
		pageTable: make(map[PageID]FrameID, frameCount),
		dirty:     make(map[PageID]struct{}),
	}, nil
}

func (fs *FrameStore) FrameCount() int {
	return len(fs.frames)
}

// Used returns the number of occupied frames
func (fs *FrameStore) Used() int {
	return fs.used
}

func (fs *FrameStore) PageAt(frame FrameID) (PageID, bool) {
	if !fs.occupied[frame] {
		return 0, false
	}
	return fs.frames[frame], true
}

// Lookup returns the frame holding a page
func (fs *FrameStore) Lookup(page PageID) (FrameID, bool) {
	frame, ok := fs.pageTable[page]
	return frame, ok
}

func (fs *FrameStore) IsDirty(page PageID) bool {
	_, ok := fs.dirty[page]
	return ok
}

// MarkDirty adds a resident page to the dirty set
func (fs *FrameStore) MarkDirty(page PageID) {
	if _, ok := fs.pageTable[page]; !ok {
		mustHold(false, "MarkDirty", fmt.Sprintf("page %d is not resident", page))
	}
	fs.dirty[page] = struct{}{}
}

// FreeFrame returns the lowest-index free frame
func (fs *FrameStore) FreeFrame() (FrameID, bool) {
	if fs.used == len(fs.frames) {
		return 0, false
	}
	for i, taken := range fs.occupied {
		if !taken {
			return FrameID(i), true
		}
	}
	return 0, false
}

// install places a page into a free frame, updating both tables
func (fs *FrameStore) install(frame FrameID, page PageID) {
	mustHold(!fs.occupied[frame], "install", fmt.Sprintf("frame %d is occupied", frame))
	_, resident := fs.pageTable[page]
	mustHold(!resident, "install", fmt.Sprintf("page %d is already resident", page))

	fs.frames[frame] = page
	fs.occupied[frame] = true
	fs.pageTable[page] = frame
	fs.used++
}

// evict frees an occupied frame. It reports the page that was held and
// whether it was dirty; the page leaves the dirty set either way.
func (fs *FrameStore) evict(frame FrameID) (page PageID, wasDirty bool) {
	mustHold(fs.occupied[frame], "evict", fmt.Sprintf("frame %d is free", frame))

	page = fs.frames[frame]
	_, wasDirty = fs.dirty[page]
	delete(fs.dirty, page)
	delete(fs.pageTable, page)
	fs.occupied[frame] = false
	fs.frames[frame] = 0
	fs.used--
	return page, wasDirty
}

// Snapshot returns the occupant of every frame in frame order
func (fs *FrameStore) Snapshot() []FrameEntry {
	entries := make([]FrameEntry, len(fs.frames))
	for i := range fs.frames {
		entries[i] = FrameEntry{
			Frame:    FrameID(i),
			Page:     fs.frames[i],
			Occupied: fs.occupied[i],
		}
	}
	return entries
}

// DirtyPages returns the dirty set in ascending page order
func (fs *FrameStore) DirtyPages() []PageID {
	pages := maps.Keys(fs.dirty)
	slices.Sort(pages)
	return pages
}

// CheckInvariants verifies that the frame table, page table and dirty set agree
func (fs *FrameStore) CheckInvariants() error {
	used := 0
	for i, taken := range fs.occupied {
		if !taken {
			continue
		}
		used++
		page := fs.frames[i]
		frame, ok := fs.pageTable[page]
		if !ok || frame != FrameID(i) {
			return ErrInvariant("CheckInvariants",
				fmt.Sprintf("frame %d holds page %d but page table disagrees", i, page))
		}
	}
	if used != len(fs.pageTable) || used != fs.used {
		return ErrInvariant("CheckInvariants",
			fmt.Sprintf("%d occupied frames, %d page table entries, %d counted", used, len(fs.pageTable), fs.used))
	}
	for page := range fs.dirty {
		if _, ok := fs.pageTable[page]; !ok {
			return ErrInvariant("CheckInvariants", fmt.Sprintf("dirty page %d is not resident", page))
		}
	}
	return nil
}

// mustHold panics with an invariant error when cond is false
func mustHold(cond bool, op, message string) {
	if !cond {
		panic(ErrInvariant(op, message))
	}
}
