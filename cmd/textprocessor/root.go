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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textprocessor/pkg/log"
	"github.com/walteh/textprocessor/pkg/operation"
	"github.com/walteh/textprocessor/pkg/textio"
)

// Usage is the only message ever written to stderr by default
const Usage = "Usage: textprocessor [ -o filename | -i | -k substring | -r old new | -n padding | -w | -s suffix ] FILE"

const (
	envDebug    = "TEXTPROCESSOR_DEBUG"
	envLogLevel = "TEXTPROCESSOR_LOG_LEVEL"
)

// 🔧 logLevel picks the log level from the environment. Logging is off unless asked for.
func logLevel(getenv func(string) string) zerolog.Level {
	if lvl := strings.TrimSpace(getenv(envLogLevel)); lvl != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(lvl)); err == nil {
			return parsed
		}
	}
	switch strings.ToLower(strings.TrimSpace(getenv(envDebug))) {
	case "1", "true", "yes", "on":
		return zerolog.DebugLevel
	}
	return zerolog.Disabled
}

// 🎯 NewCommand creates the root command.
//
// Flag parsing is left to the options package: the last argument is always
// the input file and payloads may look like flags, which pflag cannot express.
func NewCommand() *cobra.Command {
	return newCommand(os.Getenv)
}

func newCommand(getenv func(string) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textprocessor [ -o filename | -i | -k substring | -r old new | -n padding | -w | -s suffix ] FILE",
		Short: "Apply line edits to a text file",
		Long: `textprocessor reads FILE and applies, in this order, to every line:
1. -k keep only lines containing the substring (-i ignores case)
2. -r replace the first occurrence of old with new (-i ignores case)
3. -n prefix the original line number, zero padded to 1..9 digits
4. -w remove all whitespace
5. -s append the suffix

Output goes to stdout, or to a new file with -o.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), logLevel(getenv))
			ctx := log.NewContext(cmd.Context(), logger)

			info := GetVersionInfo()
			zerolog.Ctx(ctx).Debug().
				Str("version", info.Version).
				Str("revision", info.Revision).
				Bool("modified", info.Modified).
				Str("platform", info.Platform).
				Str("go", info.GoVersion).
				Msg("starting")

			if err := operation.Run(ctx, args, cmd.OutOrStdout()); err != nil {
				printUsage(cmd.ErrOrStderr())
				return err
			}
			return nil
		},
	}

	return cmd
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, Usage+textio.Terminator)
}
