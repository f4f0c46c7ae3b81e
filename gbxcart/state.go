package gbxcart

import (
	"sync"

	"github.com/moffa90/go-gbxcart/protocol"
)

// State is a snapshot of the controller's view of the reader. Values are
// never mutated after publication.
type State struct {
	IsOpen       bool
	BoardVersion protocol.BoardVersion
	BoardVoltage protocol.Voltage

	// raw bytes as reported by the device
	RawVersion byte
	RawVoltage byte
}

// CanSetVoltage reports whether the port is open and the board has a
// software voltage switch.
func (s State) CanSetVoltage() bool {
	return s.IsOpen && s.BoardVersion.CanSwitchVoltage()
}

// Observer is notified around every state change. Notifications from a
// Controller are delivered while it holds its operation lock, so observers
// must not call back into the Controller.
type Observer interface {
	// StateChanging is called before the new state is published
	StateChanging(current State)

	// StateChanged is called after the new state is published
	StateChanged(previous, next State)
}

// StateChangedFunc adapts a function to an Observer that ignores
// StateChanging.
type StateChangedFunc func(previous, next State)

func (f StateChangedFunc) StateChanging(State) {}

func (f StateChangedFunc) StateChanged(previous, next State) {
	f(previous, next)
}

// StateStore holds the current State and fans out change notifications.
// Observers run on the goroutine that called UpdateState, outside the
// store's lock; they may call Snapshot but must not call UpdateState.
type StateStore struct {
	mu        sync.RWMutex
	current   State
	observers map[int]Observer
	nextID    int

	// serialises notification rounds
	update sync.Mutex
}

// NewStateStore returns a store in the closed state.
func NewStateStore() *StateStore {
	return &StateStore{
		observers: make(map[int]Observer),
	}
}

// Snapshot returns the current state.
func (s *StateStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers an observer and returns a function that removes it.
func (s *StateStore) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// UpdateState publishes a new state built from raw device replies.
func (s *StateStore) UpdateState(isOpen bool, version, voltage byte) {
	next := State{
		IsOpen:       isOpen,
		BoardVersion: protocol.ParseBoardVersion(version),
		BoardVoltage: protocol.ParseVoltage(voltage),
		RawVersion:   version,
		RawVoltage:   voltage,
	}

	s.update.Lock()
	defer s.update.Unlock()

	s.mu.RLock()
	prev := s.current
	observers := make([]Observer, 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if o, ok := s.observers[id]; ok {
			observers = append(observers, o)
		}
	}
	s.mu.RUnlock()

	for _, o := range observers {
		o.StateChanging(prev)
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	for _, o := range observers {
		o.StateChanged(prev, next)
	}
}
