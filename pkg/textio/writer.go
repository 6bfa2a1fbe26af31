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

package textio

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrOutputExists means the output file is already there
	ErrOutputExists = errors.Base("output file already exists")
	// ErrWriteOutput means writing the output failed
	ErrWriteOutput = errors.Base("writing output")
)

// 🔍 CheckCreatable fails if path already exists
func CheckCreatable(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return errors.Errorf("%w: %s", ErrOutputExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return errors.Errorf("%w: %s", ErrWriteOutput, err.Error())
	}
}

// 📝 WriteLines writes every line followed by the terminator to w
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return errors.Errorf("%w: %s", ErrWriteOutput, err.Error())
		}
		if _, err := bw.WriteString(Terminator); err != nil {
			return errors.Errorf("%w: %s", ErrWriteOutput, err.Error())
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Errorf("%w: %s", ErrWriteOutput, err.Error())
	}
	return nil
}

// 💾 WriteFile creates path and writes lines into it.
//
// It never overwrites an existing file. If anything fails after the file was
// created, the partial file is removed.
func WriteFile(ctx context.Context, path string, lines []string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.Errorf("%w: %s", ErrOutputExists, path)
		}
		return errors.Errorf("%w: %s", ErrWriteOutput, err.Error())
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("%w: %s", ErrWriteOutput, cerr.Error())
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil {
				zerolog.Ctx(ctx).Warn().Err(rerr).Str("path", path).Msg("removing partial output")
			}
		}
	}()

	if err := WriteLines(f, lines); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("lines", len(lines)).
		Msg("wrote output file")

	return nil
}
