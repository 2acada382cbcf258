package mmu

// LRUReplacer implements LRU (Least Recently Used) replacement policy.
// Each hit or install stamps the page with the next value of a strictly
// increasing access counter; reads and writes count the same.
type LRUReplacer struct {
	clock    uint64
	lastUsed map[PageID]uint64
}

// NewLRUReplacer creates a new LRU replacer
func NewLRUReplacer(frameCount int) *LRUReplacer {
	return &LRUReplacer{
		lastUsed: make(map[PageID]uint64, frameCount),
	}
}

func (lru *LRUReplacer) Name() string {
	return PolicyLRU
}

// Accessed stamps the page with the next value of the access clock
func (lru *LRUReplacer) Accessed(frame FrameID, page PageID) {
	lru.clock++
	lru.lastUsed[page] = lru.clock
}

// Removed drops the page's timestamp
func (lru *LRUReplacer) Removed(frame FrameID, page PageID) {
	delete(lru.lastUsed, page)
}

// Victim selects the resident page with the oldest timestamp.
// Ties go to the lowest page number.
func (lru *LRUReplacer) Victim(view FrameView) FrameID {
	var (
		victim   FrameID
		oldest   uint64
		oldPage  PageID
		selected bool
	)
	for i := 0; i < view.FrameCount(); i++ {
		page, ok := view.PageAt(FrameID(i))
		if !ok {
			continue
		}
		stamp, ok := lru.lastUsed[page]
		mustHold(ok, "LRUReplacer.Victim", "resident page has no timestamp")
		if !selected || stamp < oldest || (stamp == oldest && page < oldPage) {
			victim, oldest, oldPage, selected = FrameID(i), stamp, page, true
		}
	}
	mustHold(selected, "LRUReplacer.Victim", "no resident pages")
	return victim
}

// LastUsed returns the timestamp recorded for a page
func (lru *LRUReplacer) LastUsed(page PageID) (uint64, bool) {
	stamp, ok := lru.lastUsed[page]
	return stamp, ok
}

// Size returns the number of tracked pages
func (lru *LRUReplacer) Size() int {
	return len(lru.lastUsed)
}
