// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// normalize.go - Canonicalizes a line of user input before it is compared
// against the trigger phrases.

package chatbot

import "strings"

// asciiSpace is the set of characters trimmed from both ends of the input.
const asciiSpace = " \t\n\r\f\v"

// Normalize trims ASCII whitespace from both ends of s and lowercases ASCII
// letters. Every other byte, including non-ASCII and invalid UTF-8, is left
// as is, so the result does not depend on locale.
func Normalize(s string) string {
	b := []byte(strings.Trim(s, asciiSpace))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
