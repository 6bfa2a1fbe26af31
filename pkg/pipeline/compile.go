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

// Package pipeline validates Options and applies the per-line edits.
package pipeline

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/walteh/textprocessor/pkg/options"
	"github.com/walteh/textprocessor/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMissingPayload means a flag's payload was swallowed by the input path
	ErrMissingPayload = errors.Base("missing flag payload")
	// ErrConflict means two options cannot be combined
	ErrConflict = errors.Base("conflicting options")
	// ErrInvalidOperand means a payload value is empty or out of range
	ErrInvalidOperand = errors.Base("invalid operand")
	// ErrOutputPath means the -o destination is empty or is the input file
	ErrOutputPath = errors.Base("invalid output path")
)

const (
	MinWidth = 1
	MaxWidth = 9
)

// 📏 Width is a line number padding width in [MinWidth, MaxWidth]. Zero means unset.
type Width int

// 🔍 ParseWidth parses a -n payload
func ParseWidth(s string) (Width, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%w: padding %q is not an integer", ErrInvalidOperand, s)
	}
	if n < MinWidth || n > MaxWidth {
		return 0, errors.Errorf("%w: padding %d outside [%d, %d]", ErrInvalidOperand, n, MinWidth, MaxWidth)
	}
	return Width(n), nil
}

type replacement struct {
	old *text.Literal
	new string
}

// 📋 Plan is a validated, ready to run set of line edits.
//
// The zero Plan is the identity transform. Plans are read only once built.
type Plan struct {
	keep    *text.Literal
	replace *replacement
	width   Width
	strip   bool
	suffix  string
	input   string
	output  string
}

// 🎯 Compile validates opts and turns it into a Plan.
//
// No I/O happens here; input file checks belong to the reader and output
// existence checks to the writer.
func Compile(opts *options.Options) (*Plan, error) {
	if opts == nil {
		return nil, errors.Errorf("%w: nil options", ErrInvalidOperand)
	}
	if len(opts.Truncated) > 0 {
		return nil, errors.Errorf("%w: %s", ErrMissingPayload, opts.Truncated[0])
	}
	if err := checkConflicts(opts); err != nil {
		return nil, err
	}

	plan := &Plan{
		strip: opts.StripWhitespace,
		input: opts.Input,
	}

	if opts.Keep != nil {
		keep, err := text.NewLiteral(*opts.Keep, opts.CaseInsensitive)
		if err != nil {
			return nil, errors.Errorf("%w: %s", ErrInvalidOperand, err.Error())
		}
		plan.keep = keep
	}

	if opts.Replace != nil {
		if opts.Replace.Old == "" || opts.Replace.New == "" {
			return nil, errors.Errorf("%w: -r needs non-empty old and new text", ErrInvalidOperand)
		}
		old, err := text.NewLiteral(opts.Replace.Old, opts.CaseInsensitive)
		if err != nil {
			return nil, errors.Errorf("%w: %s", ErrInvalidOperand, err.Error())
		}
		plan.replace = &replacement{old: old, new: opts.Replace.New}
	}

	if opts.Padding != nil {
		w, err := ParseWidth(*opts.Padding)
		if err != nil {
			return nil, err
		}
		plan.width = w
	}

	if opts.Suffix != nil {
		if *opts.Suffix == "" {
			return nil, errors.Errorf("%w: -s needs a non-empty suffix", ErrInvalidOperand)
		}
		plan.suffix = *opts.Suffix
	}

	if opts.Output != nil {
		out := *opts.Output
		if strings.TrimSpace(out) == "" {
			return nil, errors.Errorf("%w: blank", ErrOutputPath)
		}
		if filepath.Clean(out) == filepath.Clean(opts.Input) {
			return nil, errors.Errorf("%w: %q is the input file", ErrOutputPath, out)
		}
		plan.output = out
	}

	return plan, nil
}

// exactly three combinations are rejected; nothing else is inferred from -i
func checkConflicts(opts *options.Options) error {
	if opts.CaseInsensitive && opts.Keep == nil && opts.Replace == nil {
		return errors.Errorf("%w: -i requires -k or -r", ErrConflict)
	}
	if opts.StripWhitespace && opts.Padding != nil {
		return errors.Errorf("%w: -w and -n", ErrConflict)
	}
	if opts.Keep != nil && opts.Replace != nil {
		return errors.Errorf("%w: -k and -r", ErrConflict)
	}
	return nil
}

// Input returns the path of the file the plan reads
func (p *Plan) Input() string {
	return p.input
}

// Output returns the destination file, or "" when writing to stdout
func (p *Plan) Output() string {
	return p.output
}

// ToFile reports whether the plan writes to a file
func (p *Plan) ToFile() bool {
	return p.output != ""
}
