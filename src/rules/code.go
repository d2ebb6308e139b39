package rules

import "fmt"

// Code identifies a single lint rule, e.g. "E501".
type Code string

// Category returns the leading letter prefix of the code ("E" for "E501",
// "C" for "C901").
func (c Code) Category() string {
	s := string(c)
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	return s[:i]
}

// Selector addresses one or more rules by prefix: a whole category ("E"),
// a numeric prefix ("E5"), or an exact code ("E501").
type Selector string

// ParseSelector validates selector syntax: one or more uppercase letters
// followed by zero or more digits.
func ParseSelector(s string) (Selector, error) {
	if s == "" {
		return "", fmt.Errorf("empty rule selector")
	}
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return "", fmt.Errorf("rule selector %q must start with an uppercase category letter", s)
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return "", fmt.Errorf("rule selector %q contains invalid character %q", s, s[j])
		}
	}
	return Selector(s), nil
}

// Matches reports whether the selector addresses the given code.
func (sel Selector) Matches(c Code) bool {
	s, p := string(c), string(sel)
	return len(s) >= len(p) && s[:len(p)] == p
}
