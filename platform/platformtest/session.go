package platformtest

import (
	"sync"

	"github.com/crafted-tech/logonapp/platform"
)

// Message is one line delivered to a Session.
type Message struct {
	Kind platform.MessageKind
	Text string
}

// Session is an in-memory platform.Session.
type Session struct {
	mu         sync.Mutex
	Properties map[string]string
	Messages   []Message

	// MessageErr, when set, makes every Message call fail.
	MessageErr error
	// SetPropertyErr, when set, makes every SetProperty call fail.
	SetPropertyErr error
}

var _ platform.Session = (*Session)(nil)

// NewSession returns a session seeded with the given properties.
func NewSession(props map[string]string) *Session {
	s := &Session{Properties: map[string]string{}}
	for k, v := range props {
		s.Properties[k] = v
	}
	return s
}

func (s *Session) Property(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Properties[name], nil
}

func (s *Session) SetProperty(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetPropertyErr != nil {
		return s.SetPropertyErr
	}
	s.Properties[name] = value
	return nil
}

func (s *Session) Message(kind platform.MessageKind, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MessageErr != nil {
		return s.MessageErr
	}
	s.Messages = append(s.Messages, Message{Kind: kind, Text: text})
	return nil
}

// Texts returns the text of every delivered message in order.
func (s *Session) Texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Messages))
	for i, m := range s.Messages {
		out[i] = m.Text
	}
	return out
}
