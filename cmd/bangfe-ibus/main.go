//go:build linux

// bangfe-ibus exposes an input context on the D-Bus session bus.
//
// A panel or IBus glue process calls HandleKey for every key press and
// renders the returned candidates; Commit hands back the text to insert.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/npillmayer/schuko/tracing"

	"bangfe/internal/app"
	"bangfe/internal/cli"
	"bangfe/internal/trace"
)

const (
	defaultBusName  = "org.bangfe.Engine"
	engineInterface = "org.bangfe.Engine"
	enginePath      = "/org/bangfe/Engine"
)

// tracer traces with key 'bangfe.frontend'
func tracer() tracing.Trace {
	return tracing.Select("bangfe.frontend")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bangfe-ibus: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage("bangfe-ibus"))
		return nil
	}
	if err := trace.Setup(opts.TraceLevel); err != nil {
		return err
	}
	busName := opts.BusName
	if busName == "" {
		busName = defaultBusName
	}

	rt, err := app.NewRuntime(opts)
	if err != nil {
		return err
	}
	defer rt.Close()
	svc := newService(rt)

	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("bus name %s already taken", busName)
	}
	if err := conn.Export(svc, enginePath, engineInterface); err != nil {
		return fmt.Errorf("export engine: %w", err)
	}
	tracer().Infof("serving %s on %s", engineInterface, busName)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	for {
		select {
		case reload, ok := <-rt.Reloads():
			if !ok {
				continue
			}
			svc.reload(reload.Paths)
		case <-sigChan:
			tracer().Infof("shutting down")
			svc.Finish()
			return nil
		}
	}
}
