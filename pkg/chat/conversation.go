package chat

import (
	"log/slog"
	"strings"
)

// Greeting is the assistant message every new conversation starts with.
const Greeting = "Hi! I'm the **Vector Prime** assistant.\n" +
	"Ask me about active RFPs, pricing, warranties or recommended products."

// Conversation is the append-only message log behind the chat widget.
// It is not safe for concurrent use; all calls must come from the event loop
// that owns it.
type Conversation struct {
	messages  []Message
	ids       *idSource
	clock     Clock
	listeners []func(Message)
	inFlight  int
}

// NewConversation creates a conversation seeded with a single assistant
// greeting. An empty greeting falls back to Greeting.
func NewConversation(clock Clock, greeting string) *Conversation {
	if clock == nil {
		clock = SystemClock()
	}
	if strings.TrimSpace(greeting) == "" {
		greeting = Greeting
	}
	c := &Conversation{
		ids:   newIDSource(),
		clock: clock,
	}
	c.Say(SenderAssistant, greeting)
	return c
}

// Append adds m to the end of the log and notifies subscribers.
// The log owns identity: any ID on m is replaced by a fresh one, greater than
// every id already in the log. A zero timestamp is filled from the clock.
func (c *Conversation) Append(m Message) Message {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = c.clock.Now()
	}
	m.ID = c.ids.next(m.CreatedAt)
	c.messages = append(c.messages, m)

	slog.Debug("chat_message_appended",
		"message_id", m.ID.String(),
		"sender", m.Sender.String(),
		"length", len(c.messages),
	)

	for _, fn := range c.listeners {
		fn(m)
	}
	return m
}

// Say builds a message from sender and text and appends it.
func (c *Conversation) Say(sender Sender, text string) Message {
	return c.Append(Message{Text: text, Sender: sender})
}

// Messages returns the log in display order. The returned slice is a copy.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages, greeting included.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Last returns the most recent message.
func (c *Conversation) Last() Message {
	return c.messages[len(c.messages)-1]
}

// Subscribe registers fn to be called after every append.
func (c *Conversation) Subscribe(fn func(Message)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Pending reports whether an assistant reply is still on its way.
func (c *Conversation) Pending() bool {
	return c.inFlight > 0
}

func (c *Conversation) replyScheduled() {
	c.inFlight++
}

func (c *Conversation) replyDelivered() {
	if c.inFlight > 0 {
		c.inFlight--
	}
}
