// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// console.go - The read-eval-print loop that connects a chatbot to a pair of
// streams, normally the terminal's stdin and stdout.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/christimahu/dev/blueprints/gochat/src/chatbot"
)

// ExitKeyword ends the session. It is compared after chatbot.Normalize, so
// "bye", "Bye", " BYE " all work.
const ExitKeyword = "bye"

// ErrRead wraps input errors other than end of input.
var ErrRead = errors.New("read input")

// Responder is what a Session needs from a bot. TryRespond produces the
// reply, including the fallback for unknown input; Lookup only reports
// whether a rule matched.
type Responder interface {
	Name() string
	Lookup(input string) (reply string, ok bool)
	TryRespond(input string) (string, error)
}

// Session runs one conversation between a user and a bot.
type Session struct {
	bot Responder
	in  io.Reader
	out io.Writer
	log *zap.Logger
}

type readResult struct {
	line string
	err  error
}

// NewSession returns a Session that reads lines from in and writes the
// transcript to out. Each session tags its log lines with a fresh session_id.
func NewSession(bot Responder, in io.Reader, out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		bot: bot,
		in:  in,
		out: out,
		log: log.With(zap.String("session_id", uuid.NewString()), zap.String("bot", bot.Name())),
	}
}

// IsExit reports whether line asks to end the conversation.
func IsExit(line string) bool {
	return chatbot.Normalize(line) == ExitKeyword
}

// Run prompts for input until the user types the exit keyword, the input
// ends, or ctx is cancelled. End of input and the exit keyword return nil;
// cancellation returns ctx.Err().
//
// A cancelled Run may leave the reader goroutine blocked on in until the
// next line arrives or in is closed.
func (s *Session) Run(ctx context.Context) error {
	name := s.bot.Name()
	s.log.Info("session started")
	fmt.Fprintf(s.out, "Chat with %s! Type 'help' for commands, or 'bye' to exit.\n", name)

	requests := make(chan struct{})
	results := make(chan readResult, 1)
	defer close(requests)
	go s.readLines(requests, results)

	exchanges := 0
	for {
		fmt.Fprint(s.out, "You: ")

		select {
		case requests <- struct{}{}:
		case <-ctx.Done():
			return s.interrupted(ctx, exchanges)
		}

		var res readResult
		select {
		case res = <-results:
		case <-ctx.Done():
			return s.interrupted(ctx, exchanges)
		}

		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				fmt.Fprintln(s.out, "\nInput stream closed. Exiting.")
				s.log.Info("input closed", zap.Int("exchanges", exchanges))
				return nil
			}
			s.log.Error("failed to read input", zap.Error(res.err))
			return fmt.Errorf("%w: %v", ErrRead, res.err)
		}

		if IsExit(res.line) {
			fmt.Fprintf(s.out, "%s: Goodbye!\n", name)
			s.log.Info("session ended", zap.Int("exchanges", exchanges))
			return nil
		}

		reply, err := s.bot.TryRespond(res.line)
		if err != nil {
			s.log.Debug("rejected input", zap.Error(err))
			fmt.Fprintf(s.out, "%s (error): %v\n", name, err)
			continue
		}
		_, matched := s.bot.Lookup(res.line)
		exchanges++
		s.log.Debug("replied",
			zap.String("input_preview", truncate(res.line, 50)),
			zap.Bool("matched", matched))

		fmt.Fprintf(s.out, "%s: %s\n", name, reply)
	}
}

// readLines reads one line per request, without a length limit. A final
// line missing its newline is delivered before io.EOF. It stops after the
// first error or when requests is closed.
func (s *Session) readLines(requests <-chan struct{}, results chan<- readResult) {
	r := bufio.NewReader(s.in)
	var pending error
	for range requests {
		if pending != nil {
			results <- readResult{err: pending}
			return
		}
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			results <- readResult{err: err}
			return
		}
		pending = err
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		results <- readResult{line: line}
	}
}

func (s *Session) interrupted(ctx context.Context, exchanges int) error {
	fmt.Fprintln(s.out)
	s.log.Info("session interrupted", zap.Int("exchanges", exchanges), zap.Error(ctx.Err()))
	return ctx.Err()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
