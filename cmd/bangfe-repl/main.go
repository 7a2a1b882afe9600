// Command bangfe-repl types whole words into an input context and prints
// the candidate table, one line at a time.
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"

	"bangfe/internal/app"
	"bangfe/internal/cli"
	"bangfe/internal/trace"
)

// tracer traces with key 'bangfe.frontend'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.frontend")
}

func main() {
	initDisplay()

	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bangfe-repl: %v\n", err)
		os.Exit(1)
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage("bangfe-repl"))
		return
	}
	if err := trace.Setup(opts.TraceLevel); err != nil {
		fmt.Fprintf(os.Stderr, "bangfe-repl: %v\n", err)
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to the bangfe REPL")

	rt, err := app.NewRuntime(opts)
	if err != nil {
		tracer().Errorf(err.Error())
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer rt.Close()

	repl, err := readline.New("bn > ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	defer repl.Close()

	intp := &Intp{repl: repl, rt: rt}
	pterm.Info.Println(fmt.Sprintf("Profile %s. Type :help for commands, quit with <ctrl>D", rt.Profile().Name))
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
