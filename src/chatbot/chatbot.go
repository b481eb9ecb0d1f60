// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// chatbot.go - A trivial chatbot that responds to common phrases.
// This file demonstrates how to define structs and methods in Go.

package chatbot

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned by TryRespond when the input is blank.
var ErrEmptyInput = errors.New("input cannot be empty")

// Bot is a chatbot that knows its name and replies to a few known inputs.
// A Bot never changes after NewBot returns, so it is safe for concurrent use.
type Bot struct {
	name    string
	replies map[string]string
}

// NewBot returns a new Bot instance with the provided name.
// Any name is accepted, including the empty string.
func NewBot(name string) *Bot {
	fill := strings.NewReplacer(NamePlaceholder, name)

	replies := make(map[string]string)
	for _, r := range rules {
		reply := fill.Replace(r.Reply)
		for _, t := range r.Triggers {
			if _, taken := replies[t]; !taken {
				replies[t] = reply
			}
		}
	}

	return &Bot{name: name, replies: replies}
}

// Name returns the bot's display name.
func (b *Bot) Name() string {
	return b.name
}

// Lookup normalizes input and returns the reply of the first rule whose
// trigger equals it exactly. ok is false if no rule matched.
func (b *Bot) Lookup(input string) (reply string, ok bool) {
	reply, ok = b.replies[Normalize(input)]
	return reply, ok
}

// Respond returns a simple reply string for known inputs.
// Any unknown input returns Fallback.
func (b *Bot) Respond(input string) string {
	if reply, ok := b.Lookup(input); ok {
		return reply
	}
	return Fallback
}

// TryRespond is the fallible version of Respond. It rejects blank input with
// ErrEmptyInput instead of answering with Fallback.
func (b *Bot) TryRespond(input string) (string, error) {
	if Normalize(input) == "" {
		return "", ErrEmptyInput
	}
	return b.Respond(input), nil
}
