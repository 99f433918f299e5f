package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable game clock for testing
// Advance is ignored while paused, mirroring PausableClock
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	paused      bool
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.paused {
		return
	}
	m.currentTime = m.currentTime.Add(d)
}

func (m *MockClock) Pause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
}

func (m *MockClock) Resume() {
	m.mu.Lock()
	m.paused = false
	m.mu.Unlock()
}

func (m *MockClock) IsPaused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}
