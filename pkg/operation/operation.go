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

	"github.com/rs/zerolog"
	"github.com/walteh/textprocessor/pkg/log"
	"github.com/walteh/textprocessor/pkg/options"
	"github.com/walteh/textprocessor/pkg/pipeline"
	"github.com/walteh/textprocessor/pkg/textio"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Run parses args and executes them, writing to stdout unless -o is given
func Run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := options.Parse(args)
	if err != nil {
		log.FromContext(ctx).Failed(ctx, err)
		return errors.Errorf("parsing arguments: %w", err)
	}
	return Execute(ctx, opts, stdout)
}

// 🏃 Execute validates opts, transforms the input file and writes the result
func Execute(ctx context.Context, opts *options.Options, stdout io.Writer) error {
	logger := log.FromContext(ctx)

	err := execute(ctx, logger, opts, stdout)
	if err != nil {
		logger.Failed(ctx, err)
		return err
	}

	logger.EndRun(ctx)
	return nil
}

func execute(ctx context.Context, logger *log.Logger, opts *options.Options, stdout io.Writer) error {
	plan, err := pipeline.Compile(opts)
	if err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	logger.StartRun(ctx, log.RunOperation{
		Input:  plan.Input(),
		Output: plan.Output(),
		Args:   opts.Args(),
	})

	if plan.ToFile() {
		if err := textio.CheckCreatable(plan.Output()); err != nil {
			return errors.Errorf("checking output: %w", err)
		}
	}

	texts, err := textio.ReadLines(ctx, plan.Input())
	if err != nil {
		return errors.Errorf("reading input: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return errors.Errorf("before transform: %w", err)
	}

	results := plan.Results(pipeline.NewLines(texts))
	out := make([]string, 0, len(results))
	for _, r := range results {
		logger.LogLine(ctx, log.LineOperation{
			Number:   r.Line.Number,
			Before:   r.Line.Text,
			After:    r.Text,
			Kept:     r.Kept,
			Replaced: r.Replaced,
		})
		if r.Kept {
			out = append(out, r.Text)
		}
	}

	if err := ctx.Err(); err != nil {
		return errors.Errorf("before write: %w", err)
	}

	if plan.ToFile() {
		if err := textio.WriteFile(ctx, plan.Output(), out); err != nil {
			return errors.Errorf("writing output file: %w", err)
		}
		return nil
	}

	if err := textio.WriteLines(stdout, out); err != nil {
		return errors.Errorf("writing stdout: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("lines", len(out)).Msg("wrote stdout")
	return nil
}
