// Command bangfe is a terminal frontend: it reads raw keys, shows the word
// being composed with its candidates and keeps the committed text on the
// current line.
package main

import (
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/pterm/pterm"

	"bangfe/internal/app"
	"bangfe/internal/cli"
	"bangfe/internal/layout"
	"bangfe/internal/trace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bangfe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage("bangfe"))
		return nil
	}
	if opts.ListLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}
	if err := trace.Setup(opts.TraceLevel); err != nil {
		return err
	}

	rt, err := app.NewRuntime(opts)
	if err != nil {
		return err
	}
	defer rt.Close()
	if opts.ListProfiles {
		for _, p := range rt.Profiles().Profiles {
			fmt.Println(p.Name)
		}
		return nil
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()
	keys, err := keyboard.GetKeys(16)
	if err != nil {
		return fmt.Errorf("read keys: %w", err)
	}

	pterm.Info.Println(fmt.Sprintf("profile %s, toggle with %v, quit with <ctrl>C", rt.Profile().Name, rt.Toggle().Chords))
	term := newTerminal(rt, os.Stdout)
	term.redraw()
	for {
		select {
		case ev := <-keys:
			if ev.Err != nil {
				return ev.Err
			}
			if quit := term.handle(ev); quit {
				fmt.Fprintln(os.Stdout)
				return nil
			}
		case _, ok := <-rt.Reloads():
			if !ok {
				continue
			}
			if _, err := rt.Reload(); err != nil {
				term.status = err.Error()
			} else {
				term.status = "data reloaded"
			}
		}
		term.redraw()
	}
}
