package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	pc := NewPausableClock()

	pc.Pause()
	if !pc.IsPaused() {
		t.Fatal("Expected paused")
	}
	frozen := pc.Now()
	time.Sleep(15 * time.Millisecond)
	if !pc.Now().Equal(frozen) {
		t.Errorf("Game time advanced during pause: %v -> %v", frozen, pc.Now())
	}

	pc.Resume()
	if pc.IsPaused() {
		t.Fatal("Expected resumed")
	}
	if pc.TotalPauseDuration() < 15*time.Millisecond {
		t.Errorf("Total pause %v, want >= 15ms", pc.TotalPauseDuration())
	}

	time.Sleep(10 * time.Millisecond)
	if !pc.Now().After(frozen) {
		t.Error("Game time did not advance after resume")
	}
}

func TestPausableClockIdempotent(t *testing.T) {
	pc := NewPausableClock()
	pc.Resume() // no-op when running
	pc.Pause()
	pc.Pause()
	pc.Resume()
	pc.Resume()
	if pc.IsPaused() {
		t.Error("Clock should be running")
	}
}

func TestMockClock(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(startTime)

	if !mock.Now().Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, mock.Now())
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if !mock.Now().Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, mock.Now())
	}

	mock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, mock.Now())
	}

	mock.Pause()
	mock.Advance(time.Hour)
	if !mock.Now().Equal(expected) {
		t.Error("Advance while paused should not move time")
	}
	mock.Resume()
	mock.Advance(time.Minute)
	if !mock.Now().Equal(expected.Add(time.Minute)) {
		t.Error("Advance after resume failed")
	}
}
