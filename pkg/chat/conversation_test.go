package chat

import (
	"testing"
	"time"
)

func TestNewConversation_SeedsGreeting(t *testing.T) {
	c := NewConversation(NewManualClock(time.Unix(0, 0)), "")

	if c.Len() != 1 {
		t.Fatalf("Expected 1 seeded message, got %d", c.Len())
	}
	first := c.Messages()[0]
	if first.Sender != SenderAssistant {
		t.Errorf("Expected greeting from assistant, got %s", first.Sender)
	}
	if first.Text != Greeting {
		t.Errorf("Expected default greeting, got %q", first.Text)
	}
	if first.ID.IsZero() {
		t.Error("Expected greeting to have an id")
	}
}

func TestNewConversation_CustomGreeting(t *testing.T) {
	c := NewConversation(nil, "Hello there")

	if got := c.Last().Text; got != "Hello there" {
		t.Errorf("Expected custom greeting, got %q", got)
	}
}

func TestConversation_AppendKeepsOrder(t *testing.T) {
	clock := NewManualClock(time.Unix(1700000000, 0))
	c := NewConversation(clock, "")

	const n = 25
	for i := 0; i < n; i++ {
		sender := SenderUser
		if i%2 == 1 {
			sender = SenderAssistant
		}
		c.Say(sender, string(rune('a'+i)))
	}

	msgs := c.Messages()
	if len(msgs) != n+1 {
		t.Fatalf("Expected %d messages, got %d", n+1, len(msgs))
	}
	for i := 0; i < n; i++ {
		want := string(rune('a' + i))
		if msgs[i+1].Text != want {
			t.Errorf("Message %d: expected %q, got %q", i+1, want, msgs[i+1].Text)
		}
	}
}

func TestConversation_IDsStrictlyIncrease(t *testing.T) {
	// Frozen clock: every message lands in the same millisecond.
	c := NewConversation(NewManualClock(time.Unix(1700000000, 0)), "")
	for i := 0; i < 50; i++ {
		c.Say(SenderUser, "ping")
	}

	msgs := c.Messages()
	seen := make(map[string]bool, len(msgs))
	for i := 1; i < len(msgs); i++ {
		if msgs[i-1].ID.Compare(msgs[i].ID) >= 0 {
			t.Fatalf("Expected id %d to sort after id %d", i, i-1)
		}
		if seen[msgs[i].ID.String()] {
			t.Fatalf("Duplicate id %s", msgs[i].ID)
		}
		seen[msgs[i].ID.String()] = true
	}
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	c := NewConversation(nil, "")
	c.Say(SenderUser, "original")

	msgs := c.Messages()
	msgs[1].Text = "tampered"

	if got := c.Messages()[1].Text; got != "original" {
		t.Errorf("Expected log to be unchanged, got %q", got)
	}
}

func TestConversation_SubscribeNotifiesEachAppend(t *testing.T) {
	c := NewConversation(nil, "")

	var seen []string
	c.Subscribe(func(m Message) {
		seen = append(seen, m.Text)
	})
	c.Subscribe(nil)

	c.Say(SenderUser, "one")
	c.Say(SenderAssistant, "two")

	if len(seen) != 2 || seen[0] != "one" || seen[1] != "two" {
		t.Errorf("Expected [one two], got %v", seen)
	}
}

func TestConversation_AppendNeverReusesID(t *testing.T) {
	c := NewConversation(NewManualClock(time.Unix(1700000000, 0)), "")
	first := c.Say(SenderUser, "first")
	c.Say(SenderAssistant, "second")

	copied := c.Append(Message{ID: first.ID, Text: "again", Sender: SenderUser, CreatedAt: first.CreatedAt})
	if copied.ID == first.ID {
		t.Fatal("Expected a fresh id for a message carrying a used one")
	}

	msgs := c.Messages()
	seen := make(map[string]int, len(msgs))
	for i, m := range msgs {
		if j, ok := seen[m.ID.String()]; ok {
			t.Errorf("Expected unique ids, got duplicate at %d and %d", j, i)
		}
		seen[m.ID.String()] = i
		if i > 0 && m.ID.Compare(msgs[i-1].ID) <= 0 {
			t.Errorf("Expected ids to increase, broken at %d", i)
		}
	}
}

func TestSender_String(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "user"},
		{SenderAssistant, "assistant"},
		{Sender(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sender.String(); got != tt.want {
			t.Errorf("Sender(%d).String() = %q, want %q", tt.sender, got, tt.want)
		}
	}
}
