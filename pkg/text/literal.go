// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package text provides literal substring matching on top of regexp.
package text

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔤 Literal matches a fixed piece of text, optionally ignoring case.
//
// Every regexp metacharacter in the source text is escaped, so "a.b" never
// matches "axb".
type Literal struct {
	source string
	re     *regexp.Regexp
}

// 🏭 NewLiteral compiles text into a Literal
func NewLiteral(text string, caseInsensitive bool) (*Literal, error) {
	pattern := regexp.QuoteMeta(text)
	if caseInsensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling literal %q: %w", text, err)
	}

	return &Literal{source: text, re: re}, nil
}

// MustLiteral is like NewLiteral but panics on error
func MustLiteral(text string, caseInsensitive bool) *Literal {
	l, err := NewLiteral(text, caseInsensitive)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the text the literal was built from
func (l *Literal) String() string {
	return l.source
}

// 🔍 Contains reports whether s contains the literal
func (l *Literal) Contains(s string) bool {
	return l.re.MatchString(s)
}

// 🔄 ReplaceFirst replaces the first match in s with repl.
//
// repl is inserted verbatim: no "$1" expansion and no case adjustment.
func (l *Literal) ReplaceFirst(s, repl string) (string, bool) {
	loc := l.re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}

	var b strings.Builder
	b.Grow(len(s) - (loc[1] - loc[0]) + len(repl))
	b.WriteString(s[:loc[0]])
	b.WriteString(repl)
	b.WriteString(s[loc[1]:])
	return b.String(), true
}
