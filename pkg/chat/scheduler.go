package chat

import (
	"log/slog"
	"slices"
	"strings"
	"time"
)

// DefaultReplyDelay is the simulated thinking time before a reply appears.
const DefaultReplyDelay = 800 * time.Millisecond

type pendingReply struct {
	seq    uint64
	due    time.Time
	prompt Message
}

// Scheduler turns user submissions into delayed assistant replies.
//
// Submit appends the user's message right away and queues one reply.
// Nothing happens in the background: the owner calls Flush with the current
// time (typically when a timer armed from NextDue fires) and every reply
// whose delay has elapsed is matched and appended, in due order. Replies are
// never cancelled or merged.
type Scheduler struct {
	conv    *Conversation
	matcher *Matcher
	clock   Clock
	delay   time.Duration

	queue []pendingReply
	seq   uint64
}

// NewScheduler wires a conversation to a matcher. A non-positive delay uses
// DefaultReplyDelay; a nil clock uses the wall clock.
func NewScheduler(conv *Conversation, matcher *Matcher, clock Clock, delay time.Duration) *Scheduler {
	if matcher == nil {
		matcher = DefaultMatcher()
	}
	if clock == nil {
		clock = SystemClock()
	}
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	return &Scheduler{
		conv:    conv,
		matcher: matcher,
		clock:   clock,
		delay:   delay,
	}
}

// Submit appends text as a user message and schedules its reply.
// Blank input is rejected and leaves the conversation untouched.
func (s *Scheduler) Submit(text string) (Message, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, false
	}

	msg := s.conv.Say(SenderUser, trimmed)

	s.seq++
	reply := pendingReply{
		seq:    s.seq,
		due:    s.clock.Now().Add(s.delay),
		prompt: msg,
	}
	idx, _ := slices.BinarySearchFunc(s.queue, reply, comparePending)
	s.queue = slices.Insert(s.queue, idx, reply)
	s.conv.replyScheduled()

	slog.Debug("chat_reply_scheduled",
		"message_id", msg.ID.String(),
		"delay", s.delay,
		"in_flight", len(s.queue),
	)
	return msg, true
}

// Flush appends every reply due at or before now and returns them in the
// order they were appended.
func (s *Scheduler) Flush(now time.Time) []Message {
	var delivered []Message
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		next := s.queue[0]
		s.queue = s.queue[1:]

		intent, text := s.matcher.Match(next.prompt.Text)
		s.conv.replyDelivered()
		reply := s.conv.Say(SenderAssistant, text)
		delivered = append(delivered, reply)

		slog.Info("chat_reply_sent",
			"intent", string(intent),
			"prompt_id", next.prompt.ID.String(),
			"reply_id", reply.ID.String(),
		)
	}
	return delivered
}

// FlushDue is Flush at the scheduler clock's current time.
func (s *Scheduler) FlushDue() []Message {
	return s.Flush(s.clock.Now())
}

// NextDue returns the deadline of the earliest queued reply.
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// NextDelay returns how long until the earliest queued reply is due,
// measured on the scheduler clock. It is zero when that reply is overdue.
func (s *Scheduler) NextDelay() (time.Duration, bool) {
	due, ok := s.NextDue()
	if !ok {
		return 0, false
	}
	return max(due.Sub(s.clock.Now()), 0), true
}

// InFlight returns how many replies are still queued.
func (s *Scheduler) InFlight() int {
	return len(s.queue)
}

// Delay returns the fixed reply delay.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Conversation returns the log replies are appended to.
func (s *Scheduler) Conversation() *Conversation {
	return s.conv
}

func comparePending(a, b pendingReply) int {
	if c := a.due.Compare(b.due); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}
