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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textprocessor/pkg/textio"
)

const nl = textio.Terminator

var usageStr = Usage + nl

func noEnv(string) string { return "" }

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, getenv func(string) string, args ...string) result {
	t.Helper()
	cmd := newCommand(getenv)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args when unset
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func createFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644), "writing input file")
	return path
}

func fileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		flags    []string
		want     string
		wantFail bool
	}{
		{
			name:  "no_flags",
			input: "This is the first line of the input file." + nl,
			want:  "This is the first line of the input file." + nl,
		},
		{
			name:     "ignore_case_alone",
			input:    "This is the first line of the input file." + nl,
			flags:    []string{"-i"},
			wantFail: true,
		},
		{
			name:     "parameters_omitted",
			input:    "This is the first line of the input file." + nl,
			flags:    []string{"-r", "-w"},
			wantFail: true,
		},
		{
			name:     "help_is_not_a_flag",
			input:    "x" + nl,
			flags:    []string{"--help"},
			wantFail: true,
		},
		{
			name:     "missing_newline",
			input:    "This is the first line of the input file.",
			flags:    []string{"-w"},
			wantFail: true,
		},
		{
			name:  "order_replace_strip_suffix",
			input: "This is the old sentence" + nl,
			flags: []string{"-r", "old", "new", "-w", "-s", "."},
			want:  "Thisisthenewsentence." + nl,
		},
		{
			name: "order_keep_number_suffix",
			input: "This course's title is CS6300. #keep" + nl +
				"CS stands for Counter Strike." + nl +
				"It is part of the OMSCS program. #KEEP" + nl,
			flags: []string{"-i", "-k", "#keep", "-n", "1", "-s", "#"},
			want: "1 This course's title is CS6300. #keep#" + nl +
				"3 It is part of the OMSCS program. #KEEP#" + nl,
		},
		{
			name:  "last_occurrence_wins",
			input: "a" + nl + "b" + nl,
			flags: []string{"-n", "8", "-n", "2"},
			want:  "01 a" + nl + "02 b" + nl,
		},
		{
			name:  "flag_like_payloads",
			input: "-kale" + nl + "- knot" + nl,
			flags: []string{"-r", "-k", "-s"},
			want:  "-sale" + nl + "- knot" + nl,
		},
		{
			name:  "empty_input",
			input: "",
			flags: []string{"-s", "x"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := createFile(t, tt.input)
			res := execute(t, noEnv, append(append([]string{}, tt.flags...), input)...)

			if tt.wantFail {
				require.Error(t, res.err)
				assert.Empty(t, res.stdout, "no standard output")
				assert.Equal(t, usageStr, res.stderr, "usage message")
			} else {
				require.NoError(t, res.err)
				assert.Equal(t, tt.want, res.stdout)
				assert.Empty(t, res.stderr, "no errors")
			}

			assert.Equal(t, tt.input, fileContent(t, input), "input has not been modified")
		})
	}
}

func TestCommand_NoArguments(t *testing.T) {
	res := execute(t, noEnv)
	require.Error(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Equal(t, usageStr, res.stderr)
}

func TestCommand_OutputFile(t *testing.T) {
	input := createFile(t, "This is the first line of the input file."+nl)
	output := filepath.Join(t.TempDir(), "output.txt")

	res := execute(t, noEnv, "-o", output, input)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout, "no standard output")
	assert.Empty(t, res.stderr, "no errors")
	assert.Equal(t, "This is the first line of the input file."+nl, fileContent(t, output))

	// never overwrites
	res = execute(t, noEnv, "-o", output, "-s", "!", input)
	require.Error(t, res.err)
	assert.Equal(t, usageStr, res.stderr)
	assert.Equal(t, "This is the first line of the input file."+nl, fileContent(t, output))
}

func TestCommand_OutputIsInput(t *testing.T) {
	input := createFile(t, "content"+nl)

	res := execute(t, noEnv, "-o", input)
	require.Error(t, res.err)
	assert.Equal(t, usageStr, res.stderr)
	assert.Equal(t, "content"+nl, fileContent(t, input))
}

func TestCommand_DebugLogging(t *testing.T) {
	input := createFile(t, "a b"+nl)
	env := func(key string) string {
		if key == envDebug {
			return "1"
		}
		return ""
	}

	res := execute(t, env, "-w", input)
	require.NoError(t, res.err)
	assert.Equal(t, "ab"+nl, res.stdout, "logging never touches stdout")
	assert.Contains(t, res.stderr, "starting run")
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want zerolog.Level
	}{
		{name: "default_disabled", env: nil, want: zerolog.Disabled},
		{name: "debug_flag", env: map[string]string{envDebug: "true"}, want: zerolog.DebugLevel},
		{name: "debug_flag_off", env: map[string]string{envDebug: "0"}, want: zerolog.Disabled},
		{name: "explicit_level", env: map[string]string{envLogLevel: "TRACE"}, want: zerolog.TraceLevel},
		{name: "level_wins_over_debug", env: map[string]string{envLogLevel: "info", envDebug: "1"}, want: zerolog.InfoLevel},
		{name: "bad_level_falls_back", env: map[string]string{envLogLevel: "loud", envDebug: "1"}, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logLevel(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	require.NotNil(t, cmd, "command should not be nil")
	assert.Equal(t, "textprocessor", cmd.Name(), "command name should match")
	assert.NotEmpty(t, cmd.Short, "should have short description")
	assert.True(t, cmd.DisableFlagParsing)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}
