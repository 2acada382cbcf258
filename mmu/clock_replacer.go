package mmu

// ClockReplacer implements the clock (second-chance) replacement policy.
//
// Each frame carries a reference bit that is set whenever its page is
// installed or hit. On a fault the hand sweeps the frames in order. A frame
// with the bit set loses it and is skipped; a frame with the bit clear is a
// candidate. The first sweep only accepts clean candidates, the second only
// dirty ones, so clean pages are evicted first and disk writes are saved.
//
// The hand persists across faults and moves past every frame it visits,
// including the chosen one.
type ClockReplacer struct {
	refBits []bool
	hand    int

	// number of frames visited by the last Victim call
	lastSweep int
}

// NewClockReplacer creates a clock replacer for frameCount frames
func NewClockReplacer(frameCount int) *ClockReplacer {
	return &ClockReplacer{
		refBits: make([]bool, frameCount),
	}
}

func (c *ClockReplacer) Name() string {
	return PolicyClock
}

// Accessed sets the reference bit of the frame
func (c *ClockReplacer) Accessed(frame FrameID, page PageID) {
	c.refBits[frame] = true
}

// Removed clears the reference bit; the next install sets it again
func (c *ClockReplacer) Removed(frame FrameID, page PageID) {
	c.refBits[frame] = false
}

// Victim selects a frame to evict.
// After the first sweep every reference bit is clear, so if neither the
// clean nor the dirty sweep finds a candidate, all frames are clean and a
// final clean sweep picks the frame under the hand.
func (c *ClockReplacer) Victim(view FrameView) FrameID {
	c.lastSweep = 0
	for _, preferDirty := range []bool{false, true, false} {
		if frame, ok := c.sweep(view, preferDirty); ok {
			return frame
		}
	}
	// unreachable while every frame is occupied
	mustHold(false, "ClockReplacer.Victim", "no victim found after three sweeps")
	return 0
}

// sweep visits each frame once starting at the hand
func (c *ClockReplacer) sweep(view FrameView, preferDirty bool) (FrameID, bool) {
	n := len(c.refBits)
	for scanned := 0; scanned < n; scanned++ {
		idx := c.hand
		c.hand = (c.hand + 1) % n
		c.lastSweep++

		if c.refBits[idx] {
			// Second chance
			c.refBits[idx] = false
			continue
		}

		page, ok := view.PageAt(FrameID(idx))
		if !ok {
			continue
		}
		if view.IsDirty(page) == preferDirty {
			return FrameID(idx), true
		}
	}
	return 0, false
}

// Hand returns the frame the next sweep starts at
func (c *ClockReplacer) Hand() FrameID {
	return FrameID(c.hand)
}

// Referenced returns the reference bit of a frame
func (c *ClockReplacer) Referenced(frame FrameID) bool {
	return c.refBits[frame]
}

// LastSweepLength returns how many frames the last victim search visited
func (c *ClockReplacer) LastSweepLength() int {
	return c.lastSweep
}
