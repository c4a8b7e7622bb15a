package services

import (
	"sync"
)

// ModerationSettings holds the runtime-adjustable moderation flags.
// The auto-approval toggle is flipped from the admin console while the
// listing service reads it on every create, so access is guarded.
type ModerationSettings struct {
	mu          sync.RWMutex
	autoApprove bool
}

func NewModerationSettings(autoApprove bool) *ModerationSettings {
	return &ModerationSettings{autoApprove: autoApprove}
}

func (s *ModerationSettings) AutoApprove() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoApprove
}

func (s *ModerationSettings) SetAutoApprove(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoApprove = v
}
