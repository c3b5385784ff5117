// Copyright 2025 go-highway Authors
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
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ajroetker/simd128/hwy"
)

type options struct {
	scalar  bool
	verbose bool
	hex     bool

	restore func()
}

// run builds the command tree, executes it with args and undoes any
// process-wide backend or logger changes before returning.
func run(args []string, stdout, stderr io.Writer) error {
	opts := &options{}
	defer opts.cleanup()

	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "u16x8",
		Short:         "Evaluate and inspect unsigned 16x8 vector operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				hwy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			if opts.scalar {
				opts.restore = hwy.ForceScalar()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.scalar, "scalar", false, "force the portable backend")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log backend selection to stderr")
	flags.BoolVar(&opts.hex, "hex", false, "print lanes in hexadecimal")

	root.AddCommand(newInfoCmd(), newEvalCmd(opts))
	return root
}

func (o *options) cleanup() {
	if o.restore != nil {
		o.restore()
		o.restore = nil
	}
	if o.verbose {
		hwy.SetLogger(nil)
	}
}
