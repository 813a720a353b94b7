package store

import (
	"sync"
	"time"

	"github.com/Qaizar-Master/retail-system/internal/dialogue"
)

// Message is one transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// sessionTTL is how long an idle session survives before eviction.
var sessionTTL = 30 * time.Minute

// Session is the per-conversation state owned by the transport: the
// dialogue slot context, a bounded transcript, and a mutex serializing turn
// processing for this session.
type Session struct {
	// Turn serializes turns: the dialogue core must never process two
	// overlapping turns against the same context.
	Turn sync.Mutex

	Context dialogue.SessionContext

	history   []Message
	updatedAt time.Time
}

// SessionStore keeps every live session, keyed by session ID. Sessions are
// independent; this store only guards the map itself.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxMessages int
}

// NewSessionStore builds a store trimming transcripts to maxMessages.
func NewSessionStore(maxMessages int) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		maxMessages: maxMessages,
	}
}

// Get returns the session for id, creating it when absent and evicting
// expired sessions opportunistically.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, sess := range s.sessions {
		if time.Since(sess.updatedAt) > sessionTTL && key != id {
			delete(s.sessions, key)
		}
	}
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{updatedAt: time.Now()}
		s.sessions[id] = sess
	}
	sess.updatedAt = time.Now()
	return sess
}

// Append records a transcript message for the session.
func (s *SessionStore) Append(id string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{}
		s.sessions[id] = sess
	}
	sess.updatedAt = time.Now()
	sess.history = append(sess.history, msg)
	if s.maxMessages > 0 && len(sess.history) > s.maxMessages {
		sess.history = sess.history[len(sess.history)-s.maxMessages:]
	}
}

// History returns a copy of the session's transcript.
func (s *SessionStore) History(id string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	out := make([]Message, len(sess.history))
	copy(out, sess.history)
	return out
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
