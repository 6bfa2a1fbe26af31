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

// Package options turns a raw argument vector into an Options record.
package options

// 🚩 Flag is a recognized command line flag
type Flag string

const (
	FlagOutput          Flag = "-o"
	FlagCaseInsensitive Flag = "-i"
	FlagKeep            Flag = "-k"
	FlagReplace         Flag = "-r"
	FlagNumber          Flag = "-n"
	FlagStripWhitespace Flag = "-w"
	FlagSuffix          Flag = "-s"
)

// arity is the number of payload tokens each flag consumes
var arity = map[Flag]int{
	FlagOutput:          1,
	FlagCaseInsensitive: 0,
	FlagKeep:            1,
	FlagReplace:         2,
	FlagNumber:          1,
	FlagStripWhitespace: 0,
	FlagSuffix:          1,
}

// 🔍 Arity returns the payload size of f and whether f is recognized
func Arity(f Flag) (int, bool) {
	n, ok := arity[f]
	return n, ok
}

// 🔄 Replacement is the payload of -r
type Replacement struct {
	Old string
	New string
}

// 📚 Options is the compiled form of one invocation's arguments.
//
// Every pointer field is either nil or fully populated. Payloads are kept
// verbatim; semantic validation happens in the pipeline package.
type Options struct {
	Output          *string      // -o: write to a new file instead of stdout
	CaseInsensitive bool         // -i
	Keep            *string      // -k: keep only lines containing this text
	Replace         *Replacement // -r: replace first occurrence of Old with New
	Padding         *string      // -n: raw padding width payload
	StripWhitespace bool         // -w
	Suffix          *string      // -s: text appended to every line
	Input           string       // last token

	// Truncated lists flags whose payload swallowed the input path token.
	Truncated []Flag
}

// 📤 ToFile reports whether output goes to a file instead of stdout
func (o *Options) ToFile() bool {
	return o.Output != nil
}

// 📝 Args renders o back into an argument vector that parses to the same record
func (o *Options) Args() []string {
	var args []string
	if o.Output != nil {
		args = append(args, string(FlagOutput), *o.Output)
	}
	if o.CaseInsensitive {
		args = append(args, string(FlagCaseInsensitive))
	}
	if o.Keep != nil {
		args = append(args, string(FlagKeep), *o.Keep)
	}
	if o.Replace != nil {
		args = append(args, string(FlagReplace), o.Replace.Old, o.Replace.New)
	}
	if o.Padding != nil {
		args = append(args, string(FlagNumber), *o.Padding)
	}
	if o.StripWhitespace {
		args = append(args, string(FlagStripWhitespace))
	}
	if o.Suffix != nil {
		args = append(args, string(FlagSuffix), *o.Suffix)
	}
	return append(args, o.Input)
}
