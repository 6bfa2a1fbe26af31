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

package operation

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/walteh/textprocessor/pkg/options"
)

// 🔧 Processor is the reusable library form of the command line tool.
//
// Configure it with the setters, then call Run. The zero value writes to
// os.Stdout. A Processor is not safe for concurrent use.
type Processor struct {
	opts   options.Options
	stdout io.Writer
}

// 🏭 NewProcessor creates a Processor that writes stdout output to w
func NewProcessor(w io.Writer) *Processor {
	return &Processor{stdout: w}
}

// Reset clears every setting, keeping the stdout writer
func (p *Processor) Reset() {
	p.opts = options.Options{}
}

func (p *Processor) SetInputPath(path string) {
	p.opts.Input = path
}

func (p *Processor) SetOutputPath(path string) {
	p.opts.Output = &path
}

func (p *Processor) SetCaseInsensitive(on bool) {
	p.opts.CaseInsensitive = on
}

func (p *Processor) SetKeep(substring string) {
	p.opts.Keep = &substring
}

func (p *Processor) SetReplace(old, new string) {
	p.opts.Replace = &options.Replacement{Old: old, New: new}
}

// SetPadding enables line numbers padded to width digits
func (p *Processor) SetPadding(width int) {
	s := strconv.Itoa(width)
	p.opts.Padding = &s
}

func (p *Processor) SetStripWhitespace(on bool) {
	p.opts.StripWhitespace = on
}

func (p *Processor) SetSuffix(suffix string) {
	p.opts.Suffix = &suffix
}

// Options returns a copy of the current settings
func (p *Processor) Options() options.Options {
	return p.opts
}

// 🏃 Run processes the configured input. Settings are cleared after a
// successful run and kept after a failed one.
func (p *Processor) Run(ctx context.Context) error {
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}

	opts := p.opts
	if err := Execute(ctx, &opts, w); err != nil {
		return err
	}

	p.Reset()
	return nil
}
