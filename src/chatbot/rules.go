// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// rules.go - The fixed table of trigger phrases and canned replies.
// Add a new row here to teach the bot a new phrase.

package chatbot

// NamePlaceholder is replaced with the bot's name when a reply is built.
const NamePlaceholder = "{name}"

// Fallback is returned for any input that matches no rule.
const Fallback = "I didn't understand that. Try 'help'."

// Rule maps one or more trigger phrases to a canned reply.
// Triggers are compared against normalized input, so they must be lowercase
// and free of surrounding whitespace.
type Rule struct {
	Triggers []string
	Reply    string
}

// rules is ordered: if two rules share a trigger, the first one wins.
var rules = []Rule{
	{Triggers: []string{"hi", "hello"}, Reply: "Hello there!"},
	{Triggers: []string{"how are you?"}, Reply: "I'm a Go program, I'm doing fine!"},
	{Triggers: []string{"what's your name?", "what is your name?"}, Reply: "My name is " + NamePlaceholder + "."},
	{Triggers: []string{"help"}, Reply: "You can say 'hi', 'how are you?', or 'what's your name?'. Type 'bye' to exit."},
}

// Rules returns a copy of the rule table in match order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Triggers: append([]string(nil), r.Triggers...),
			Reply:    r.Reply,
		}
	}
	return out
}
