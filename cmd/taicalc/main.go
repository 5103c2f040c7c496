package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/sessions"
	"golang.org/x/term"
)

var (
	evalArgs    = cmds.Collect[string]("eval", "evaluate an expression and print the result")
	showSymbols = cmds.Switch("symbols", "print the names usable in expressions")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if len(*evalArgs) > 0 {
		if err := evalExpressions(os.Stdout, *evalArgs); err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(1)
		}
		return
	}

	if *showSymbols {
		printSymbols(os.Stdout)
		return
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSession sessions.NewSession,
	) {
		var reader sessions.LineReader
		if term.IsTerminal(int(os.Stdin.Fd())) {
			rl, err := sessions.NewReadlineReader()
			if err != nil {
				logger.Warn("readline", "error", err)
				reader = sessions.NewScannerReader(os.Stdin, os.Stdout)
			} else {
				defer rl.Close()
				reader = rl
			}
		} else {
			reader = sessions.NewScannerReader(os.Stdin, os.Stdout)
		}

		if err := newSession(reader, os.Stdout).Run(ctx); err != nil {
			logger.Error("session", "error", err)
			os.Exit(1)
		}
	})
}
