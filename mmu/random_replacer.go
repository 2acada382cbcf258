package mmu

// RandomReplacer evicts a uniformly chosen occupied frame. It keeps no
// reference or recency state.
type RandomReplacer struct {
	source    RandomSource
	candidate []FrameID
}

func NewRandomReplacer(source RandomSource) *RandomReplacer {
	return &RandomReplacer{source: source}
}

func (r *RandomReplacer) Name() string {
	return PolicyRandom
}

func (r *RandomReplacer) Accessed(frame FrameID, page PageID) {}

func (r *RandomReplacer) Removed(frame FrameID, page PageID) {}

// Victim draws one of the occupied frames, listed in frame order
func (r *RandomReplacer) Victim(view FrameView) FrameID {
	r.candidate = r.candidate[:0]
	for i := 0; i < view.FrameCount(); i++ {
		if _, ok := view.PageAt(FrameID(i)); ok {
			r.candidate = append(r.candidate, FrameID(i))
		}
	}
	mustHold(len(r.candidate) > 0, "RandomReplacer.Victim", "no occupied frames")
	pick := r.source.Intn(len(r.candidate))
	mustHold(pick >= 0 && pick < len(r.candidate), "RandomReplacer.Victim", "random source out of range")
	return r.candidate[pick]
}
