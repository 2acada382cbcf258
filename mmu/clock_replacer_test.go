package mmu

import (
	"testing"
)

func mustClock(t *testing.T, frames int) *Simulator {
	t.Helper()
	sim, err := NewClockMMU(frames)
	if err != nil {
		t.Fatalf("Failed to create clock MMU: %v", err)
	}
	return sim
}

func clockOf(sim *Simulator) *ClockReplacer {
	return sim.replacer.(*ClockReplacer)
}

// TestClockReadWriteRead covers read(1), write(2), read(3) on two frames
func TestClockReadWriteRead(t *testing.T) {
	sim := mustClock(t, 2)

	read(t, sim, 1)
	write(t, sim, 2)
	fault := read(t, sim, 3)
	if !fault {
		t.Error("Expected read of page 3 to fault")
	}

	if sim.TotalPageFaults() != 3 {
		t.Errorf("Expected 3 page faults, got %d", sim.TotalPageFaults())
	}
	if sim.TotalDiskReads() != 3 {
		t.Errorf("Expected 3 disk reads, got %d", sim.TotalDiskReads())
	}

	// The first sweep clears both bits without finding a clean candidate,
	// the dirty sweep then takes page 2.
	if sim.IsResident(2) {
		t.Error("Expected dirty page 2 to be evicted")
	}
	if !sim.IsResident(1) || !sim.IsResident(3) {
		t.Errorf("Expected pages 1 and 3 resident, got %v", sim.ResidentPages())
	}
	if sim.TotalDiskWrites() != 1 {
		t.Errorf("Expected 1 disk write, got %d", sim.TotalDiskWrites())
	}
	if clockOf(sim).Hand() != 0 {
		t.Errorf("Expected hand at frame 0, got %d", clockOf(sim).Hand())
	}
	if got := clockOf(sim).LastSweepLength(); got != 4 {
		t.Errorf("Expected sweep of 4 frames, got %d", got)
	}
}

// TestClockPrefersCleanVictim tests that a clean unreferenced frame wins over a dirty one
func TestClockPrefersCleanVictim(t *testing.T) {
	sim := mustClock(t, 3)

	write(t, sim, 1)
	read(t, sim, 2)
	read(t, sim, 3)

	// Every bit is set, so the clean sweep only clears them and the
	// dirty sweep picks page 1.
	read(t, sim, 4)
	if sim.IsResident(1) {
		t.Fatal("Expected page 1 to be evicted by the dirty sweep")
	}
	if sim.TotalDiskWrites() != 1 {
		t.Fatalf("Expected 1 disk write, got %d", sim.TotalDiskWrites())
	}
	if clockOf(sim).Hand() != 1 {
		t.Fatalf("Expected hand at frame 1, got %d", clockOf(sim).Hand())
	}

	// Page 2 gets referenced and dirtied; page 3 is clean with its bit clear.
	write(t, sim, 2)
	read(t, sim, 5)

	if sim.IsResident(3) {
		t.Error("Expected clean page 3 to be evicted")
	}
	if !sim.IsResident(2) {
		t.Error("Expected referenced page 2 to get a second chance")
	}
	if sim.TotalDiskWrites() != 1 {
		t.Errorf("Expected disk writes to stay at 1, got %d", sim.TotalDiskWrites())
	}
	if clockOf(sim).Hand() != 0 {
		t.Errorf("Expected hand at frame 0, got %d", clockOf(sim).Hand())
	}
}

// TestClockAllCleanAndReferenced tests the fallback sweep when no frame is dirty
func TestClockAllCleanAndReferenced(t *testing.T) {
	sim := mustClock(t, 2)

	read(t, sim, 1)
	read(t, sim, 2)
	read(t, sim, 3)

	if sim.IsResident(1) {
		t.Error("Expected page 1, under the hand, to be evicted")
	}
	if sim.TotalDiskWrites() != 0 {
		t.Errorf("Expected no disk writes, got %d", sim.TotalDiskWrites())
	}
	if clockOf(sim).Hand() != 1 {
		t.Errorf("Expected hand at frame 1, got %d", clockOf(sim).Hand())
	}
	if got := clockOf(sim).LastSweepLength(); got != 5 {
		t.Errorf("Expected sweep of 5 frames, got %d", got)
	}
}

// TestClockSecondChance tests that a referenced page survives a sweep
func TestClockSecondChance(t *testing.T) {
	sim := mustClock(t, 3)

	read(t, sim, 1)
	read(t, sim, 2)
	read(t, sim, 3)
	read(t, sim, 4) // evicts page 1, leaves bits of 2 and 3 clear

	if fault := read(t, sim, 2); fault {
		t.Fatal("Expected page 2 to hit")
	}
	if !clockOf(sim).Referenced(1) {
		t.Fatal("Expected frame 1 to be referenced after the hit")
	}

	read(t, sim, 5)

	if !sim.IsResident(2) {
		t.Error("Expected page 2 to survive the sweep")
	}
	if sim.IsResident(3) {
		t.Error("Expected page 3 to be evicted")
	}
	if clockOf(sim).Referenced(1) {
		t.Error("Expected frame 1 to have lost its reference bit")
	}
}

// TestClockHandPersists tests that consecutive faults keep moving the hand forward
func TestClockHandPersists(t *testing.T) {
	sim := mustClock(t, 4)

	for page := PageID(0); page < 4; page++ {
		read(t, sim, page)
	}

	// Every eviction after the first runs with clear bits except the frame
	// just installed, so victims rotate through the frames.
	var victims []FrameID
	for page := PageID(10); page < 16; page++ {
		before := sim.Frames()
		read(t, sim, page)
		after := sim.Frames()
		for i := range before {
			if before[i] != after[i] {
				victims = append(victims, FrameID(i))
			}
		}
	}

	expected := []FrameID{0, 1, 2, 3, 0, 1}
	if len(victims) != len(expected) {
		t.Fatalf("Expected %d evictions, got %d", len(expected), len(victims))
	}
	for i := range expected {
		if victims[i] != expected[i] {
			t.Errorf("Eviction %d: expected frame %d, got %d", i, expected[i], victims[i])
		}
	}
}

// TestClockReplacerDirect drives the replacer against a frame store
func TestClockReplacerDirect(t *testing.T) {
	store, err := NewFrameStore(3)
	if err != nil {
		t.Fatal(err)
	}
	clock := NewClockReplacer(3)

	for i := 0; i < 3; i++ {
		store.install(FrameID(i), PageID(100+i))
		clock.Accessed(FrameID(i), PageID(100+i))
	}
	store.MarkDirty(100)

	// clear bit of frame 1 by hand; it is the only clean candidate on the first pass
	clock.Removed(1, 101)

	victim := clock.Victim(store)
	if victim != 1 {
		t.Errorf("Expected victim 1, got %d", victim)
	}
	if clock.Referenced(0) {
		t.Error("Expected frame 0 to lose its reference bit during the sweep")
	}
	if clock.Hand() != 2 {
		t.Errorf("Expected hand at 2, got %d", clock.Hand())
	}
}
