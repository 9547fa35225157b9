package loading

import (
	"sync"

	"gopkg.in/guregu/null.v4"
)

// sharedState is the only data the caller and the renderer both touch. Every
// field is guarded by mu.
type sharedState struct {
	mu         sync.Mutex
	text       null.String
	frameIndex int
	status     *finalStatus
	persisted  []finalStatus
	terminated bool
}

// snapshot is a consistent copy of sharedState taken for one draw.
type snapshot struct {
	text       null.String
	frameIndex int
	status     *finalStatus
	persisted  []finalStatus
	terminated bool
}

func newSharedState(text string) *sharedState {
	s := &sharedState{}
	if text != "" {
		s.text = null.StringFrom(text)
	}
	return s
}

// setText replaces the live text. It reports false when the text can no
// longer be shown because a status was set or the state is terminated.
func (s *sharedState) setText(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != nil || s.terminated {
		return false
	}

	s.text = null.StringFrom(text)
	return true
}

func (s *sharedState) setStatus(kind StatusKind, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminated {
		return false
	}

	s.status = &finalStatus{kind: kind, message: message}
	return true
}

// persist queues a finished line and resets the live text.
func (s *sharedState) persist(kind StatusKind, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != nil || s.terminated {
		return false
	}

	s.persisted = append(s.persisted, finalStatus{kind: kind, message: message})
	s.text = null.String{}
	return true
}

// terminate reports whether this call flipped the flag.
func (s *sharedState) terminate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminated {
		return false
	}

	s.terminated = true
	return true
}

func (s *sharedState) hasStatus() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status != nil
}

func (s *sharedState) currentText() null.String {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.text
}

func (s *sharedState) index() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frameIndex
}

// take copies the state for drawing, hands over any queued persisted lines,
// and advances the frame cursor when the line is still animating. The
// returned frameIndex is the frame to draw now.
func (s *sharedState) take(frames FrameSet) snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		text:       s.text,
		frameIndex: s.frameIndex,
		persisted:  s.persisted,
		terminated: s.terminated,
	}
	if s.status != nil {
		st := *s.status
		snap.status = &st
	}
	s.persisted = nil

	if s.status == nil && !s.terminated {
		s.frameIndex = frames.Next(s.frameIndex)
	}

	return snap
}
