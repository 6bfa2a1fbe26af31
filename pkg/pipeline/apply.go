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

package pipeline

import (
	"fmt"
	"strings"
	"unicode"
)

// 📄 Line is one input line and its 1-based position in the original file
type Line struct {
	Number int
	Text   string
}

// 🏷️ NewLines numbers texts starting at 1
func NewLines(texts []string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Number: i + 1, Text: t}
	}
	return lines
}

// 🔄 Result is what happened to a single input line
type Result struct {
	Line     Line
	Kept     bool
	Replaced bool
	Text     string // final text, empty when !Kept
}

// 🏃 Apply runs the plan over lines and returns the surviving output lines
func (p *Plan) Apply(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, r := range p.Results(lines) {
		if r.Kept {
			out = append(out, r.Text)
		}
	}
	return out
}

// 📊 Results runs the plan and reports the outcome of every input line,
// including dropped ones.
//
// Edits run in a fixed order: keep, replace, number, strip, suffix.
func (p *Plan) Results(lines []Line) []Result {
	results := make([]Result, len(lines))
	for i, line := range lines {
		results[i] = p.applyLine(line)
	}
	return results
}

func (p *Plan) applyLine(line Line) Result {
	res := Result{Line: line}

	if p.keep != nil && !p.keep.Contains(line.Text) {
		return res
	}
	res.Kept = true

	s := line.Text
	if p.replace != nil {
		s, res.Replaced = p.replace.old.ReplaceFirst(s, p.replace.new)
	}
	if p.width > 0 {
		s = fmt.Sprintf("%0*d %s", int(p.width), line.Number, s)
	}
	if p.strip {
		s = StripWhitespace(s)
	}
	if p.suffix != "" {
		s += p.suffix
	}

	res.Text = s
	return res
}

// ✂️ StripWhitespace removes every whitespace rune from s
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
