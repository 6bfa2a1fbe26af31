/*
Package operation runs one text processing invocation from start to finish.

	+-------------+     +-------------+     +-------------+
	|   options   | --> |  pipeline   | --> |   textio    |
	|   (Parse)   |     |  (Compile)  |     | (Read/Write)|
	+-------------+     +------+------+     +-------------+
	                           |
	                    +------+------+
	                    |    Apply    |
	                    | (per line)  |
	                    +-------------+

🔄 Flow:
1. Parse the argument vector into options.Options
2. Compile the options into a pipeline.Plan (all validation)
3. Check the output file does not exist yet
4. Read the whole input file
5. Apply the plan to every line
6. Write the result to stdout or to a freshly created file

Every validation step runs before anything is written. The output file is
created only once the full output is known, and removed again if writing it
fails. The input file is never opened for writing.

🤝 Entry points:
- Run: argv in, output out. Used by the command line.
- Execute: same as Run for an already parsed options.Options.
- Processor: the reusable library form, configured with setters.

🔍 Example:

	err := operation.Run(ctx, []string{"-n", "2", "input.txt"}, os.Stdout)
*/
package operation
