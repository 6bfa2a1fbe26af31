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

// Package textio reads and writes whole line-terminated text files.
package textio

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrReadInput means the input file could not be read
	ErrReadInput = errors.Base("reading input")
	// ErrMalformedInput means a non-empty input does not end with a line terminator
	ErrMalformedInput = errors.Base("input does not end with a line terminator")
)

// 📖 ReadLines loads path and splits it into lines without terminators.
//
// An empty file yields zero lines. A non-empty file must end with the line
// terminator.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrReadInput, err.Error())
	}

	lines, err := SplitLines(string(data))
	if err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Int("lines", len(lines)).
		Msg("read input")

	return lines, nil
}

// 🔪 SplitLines splits content on the line terminator
func SplitLines(content string) ([]string, error) {
	if content == "" {
		return []string{}, nil
	}

	end := Terminator[len(Terminator)-1:]
	if !strings.HasSuffix(content, end) {
		return nil, errors.WithStack(ErrMalformedInput)
	}

	lines := strings.Split(strings.TrimSuffix(content, end), end)
	if lead := Terminator[:len(Terminator)-1]; lead != "" {
		for i, l := range lines {
			lines[i] = strings.TrimSuffix(l, lead)
		}
	}
	return lines, nil
}
