package chat

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Sender identifies who wrote a message.
type Sender int

const (
	SenderUser Sender = iota
	SenderAssistant
)

func (s Sender) String() string {
	switch s {
	case SenderUser:
		return "user"
	case SenderAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Message is a single entry in a conversation. Messages are values and are
// never modified after they are appended.
type Message struct {
	ID        ulid.ULID
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

// FromUser reports whether the message was written by the user.
func (m Message) FromUser() bool {
	return m.Sender == SenderUser
}

// idSource hands out strictly increasing ULIDs, so lexical id order matches
// creation order even within the same millisecond.
type idSource struct {
	entropy *ulid.MonotonicEntropy
	last    ulid.ULID
}

func newIDSource() *idSource {
	return &idSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (s *idSource) next(at time.Time) ulid.ULID {
	ms := ulid.Timestamp(at)
	// Keep ids increasing even if the clock steps backwards.
	if s.last.Time() > ms {
		ms = s.last.Time()
	}
	id := ulid.MustNew(ms, s.entropy)
	s.last = id
	return id
}
