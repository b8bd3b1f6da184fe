package wordpat

import (
	"fmt"
)

// ErrorCode classifies a SyntaxError.
type ErrorCode int

const (
	// ErrUnexpectedChar is an unrecognized or non-lowercase character,
	// a stray ']' or an empty group.
	ErrUnexpectedChar ErrorCode = iota + 1
	// ErrUnmatchedBracket is input that ends inside a '[' group.
	ErrUnmatchedBracket
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnexpectedChar:
		return "unexpected character"
	case ErrUnmatchedBracket:
		return "unmatched bracket"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// SyntaxError is returned when a pattern cannot be parsed.
// Input is the remainder of the pattern at the point of failure.
type SyntaxError struct {
	Input string
	Code  ErrorCode
}

func (e *SyntaxError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("pattern syntax: %v at end of input", e.Code)
	}
	return fmt.Sprintf("pattern syntax: %v at %q", e.Code, e.Input)
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsLetterStart returns true if c can begin a Letter.
func IsLetterStart(c byte) bool {
	return c == '.' || c == '[' || isLower(c)
}

// ParseLetter parses one Letter from the front of s and returns the rest.
func ParseLetter(s string) (Letter, string, error) {
	if s == "" {
		return Letter{}, s, &SyntaxError{Input: s, Code: ErrUnexpectedChar}
	}
	switch c := s[0]; {
	case c == '.':
		return All(), s[1:], nil
	case isLower(c):
		return Singleton(Symbol(c - 'a')), s[1:], nil
	case c == '[':
		return parseGroup(s)
	default:
		return Letter{}, s, &SyntaxError{Input: s, Code: ErrUnexpectedChar}
	}
}

// parseGroup parses a bracketed group, s[0] is '['.
func parseGroup(s string) (Letter, string, error) {
	var l Letter
	rest := s[1:]
	count := 0
	for {
		if rest == "" {
			return Letter{}, s, &SyntaxError{Input: s, Code: ErrUnmatchedBracket}
		}
		if rest[0] == ']' {
			if count == 0 {
				return Letter{}, rest, &SyntaxError{Input: rest, Code: ErrUnexpectedChar}
			}
			return l, rest[1:], nil
		}
		r, next, err := parseRange(rest)
		if err != nil {
			return Letter{}, next, err
		}
		l.Union(r)
		rest = next
		count++
	}
}

// parseRange parses a single char or a range with optional ends.
func parseRange(s string) (Letter, string, error) {
	start, end := Symbol(0), Symbol(AlphabetSize-1)
	hasStart := false
	if isLower(s[0]) {
		start = Symbol(s[0] - 'a')
		hasStart = true
		s = s[1:]
	}
	if s == "" || s[0] != '-' {
		if !hasStart {
			return Letter{}, s, &SyntaxError{Input: s, Code: ErrUnexpectedChar}
		}
		return Singleton(start), s, nil
	}
	s = s[1:]
	if s != "" && isLower(s[0]) {
		end = Symbol(s[0] - 'a')
		s = s[1:]
	}
	return rangeLetter(start, end), s, nil
}

// ParseWord parses a complete pattern.
// The whole of s must be consumed.
func ParseWord(s string) (Word, error) {
	var w Word
	for s != "" {
		l, rest, err := ParseLetter(s)
		if err != nil {
			return nil, err
		}
		w = append(w, l)
		s = rest
	}
	return w, nil
}

// MustParse is ParseWord but panics on error.
func MustParse(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParsePrefix parses as many Letters as possible from the front of s.
// It stops without error at the first character that cannot begin a Letter.
func ParsePrefix(s string) (Word, string, error) {
	var w Word
	for s != "" && IsLetterStart(s[0]) {
		l, rest, err := ParseLetter(s)
		if err != nil {
			return nil, s, err
		}
		w = append(w, l)
		s = rest
	}
	return w, s, nil
}
