package chat

import (
	"github.com/google/uuid"

	"github.com/sandevgo/campusbot/internal/core"
)

// Session is one conversation. It is owned by a single caller and passed to
// every turn explicitly.
type Session struct {
	ID    string
	Topic core.LandmarkID
	Log   []core.Message
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) SessionID() string {
	return s.ID
}

func (s *Session) CurrentTopic() (core.LandmarkID, bool) {
	return s.Topic, s.Topic != ""
}

func (s *Session) append(role, content string) {
	s.Log = append(s.Log, core.Message{Role: role, Content: content})
}
