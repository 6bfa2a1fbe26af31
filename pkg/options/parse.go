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

package options

import (
	"gitlab.com/tozd/go/errors"
)

// ErrMalformedArguments is returned for structurally invalid argument vectors
var ErrMalformedArguments = errors.Base("malformed arguments")

// 🎯 Parse builds Options from an argv-style token slice.
//
// The last token is always the input path. Flags are only recognized in flag
// positions; payload tokens are taken verbatim even if they look like flags.
// When a flag repeats, its last occurrence wins.
func Parse(tokens []string) (*Options, error) {
	if len(tokens) == 0 {
		return nil, errors.Errorf("%w: no arguments", ErrMalformedArguments)
	}

	last := len(tokens) - 1
	opts := &Options{Input: tokens[last]}

	for i := 0; i < last; {
		flag := Flag(tokens[i])
		n, ok := Arity(flag)
		if !ok {
			return nil, errors.Errorf("%w: unrecognized argument %q", ErrMalformedArguments, tokens[i])
		}
		if i+n > last {
			return nil, errors.Errorf("%w: %s needs %d value(s)", ErrMalformedArguments, flag, n)
		}

		payload := tokens[i+1 : i+1+n]
		opts.set(flag, payload)
		if n > 0 && i+n == last {
			opts.Truncated = append(opts.Truncated, flag)
		}

		i += n + 1
	}

	return opts, nil
}

func (o *Options) set(flag Flag, payload []string) {
	switch flag {
	case FlagOutput:
		o.Output = ptr(payload[0])
	case FlagCaseInsensitive:
		o.CaseInsensitive = true
	case FlagKeep:
		o.Keep = ptr(payload[0])
	case FlagReplace:
		o.Replace = &Replacement{Old: payload[0], New: payload[1]}
	case FlagNumber:
		o.Padding = ptr(payload[0])
	case FlagStripWhitespace:
		o.StripWhitespace = true
	case FlagSuffix:
		o.Suffix = ptr(payload[0])
	}
}

func ptr(s string) *string {
	return &s
}
