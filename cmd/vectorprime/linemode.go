package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"vectorprime/pkg/chat"
	"vectorprime/pkg/commands"
	"vectorprime/pkg/config"
	"vectorprime/pkg/ui/components/analyze"
	"vectorprime/pkg/ui/components/welcome"

	"github.com/charmbracelet/x/ansi"
)

// lineSession is the chat loop used when stdout is not a terminal.
type lineSession struct {
	sched    *chat.Scheduler
	clock    chat.Clock
	commands *commands.Dispatcher
	analyzer analyze.Analyzer
	out      io.Writer
	// wait blocks until d has passed on the session clock.
	wait func(d time.Duration)
}

func runLineMode(cfg config.Config, analyzer analyze.Analyzer, in io.Reader, out io.Writer) error {
	s := newLineSession(cfg, chat.SystemClock(), analyzer, out, time.Sleep)
	return s.run(in)
}

func newLineSession(cfg config.Config, clock chat.Clock, analyzer analyze.Analyzer, out io.Writer, wait func(time.Duration)) *lineSession {
	greeting := cfg.Chat.Greeting
	if greeting == "" {
		greeting = chat.Greeting
	}
	conv := chat.NewConversation(clock, greeting)
	delay := time.Duration(cfg.Chat.ReplyDelayMS) * time.Millisecond
	return &lineSession{
		sched:    chat.NewScheduler(conv, chat.DefaultMatcher(), clock, delay),
		clock:    clock,
		commands: commands.NewDispatcher(),
		analyzer: analyzer,
		out:      out,
		wait:     wait,
	}
}

func (s *lineSession) run(in io.Reader) error {
	fmt.Fprint(s.out, ansi.Strip(welcome.Banner()))
	s.printBot(s.sched.Conversation().Last().Text)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if quit := s.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// handle processes one input line and reports whether to exit.
func (s *lineSession) handle(line string) bool {
	if name, args, ok := commands.Parse(line); ok {
		if name == "/analyze" && args != "" {
			fmt.Fprintln(s.out, "Swarm Agents Active: Extracting Specs • Querying Vector DB • Calculating Margins")
		}
		res := s.commands.Dispatch(name, commands.NewContext(context.Background(), args, s.analyzer))
		if res.Content != "" {
			fmt.Fprintln(s.out, strings.TrimRight(res.Content, "\n"))
		}
		return res.Quit
	}
	s.chat(line)
	return false
}

func (s *lineSession) chat(text string) {
	if _, ok := s.sched.Submit(text); !ok {
		return
	}
	fmt.Fprintln(s.out, "Vector Prime is typing…")
	for {
		due, ok := s.sched.NextDue()
		if !ok {
			return
		}
		if d := due.Sub(s.clock.Now()); d > 0 {
			s.wait(d)
		}
		for _, m := range s.sched.FlushDue() {
			s.printBot(m.Text)
		}
	}
}

func (s *lineSession) printBot(text string) {
	fmt.Fprintf(s.out, "Vector Prime: %s\n", strings.ReplaceAll(text, "**", ""))
}
