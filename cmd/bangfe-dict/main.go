// Command bangfe-dict imports a JSON word map or a word list into the
// SQLite dictionary the engine prefers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"bangfe/internal/cli"
	"bangfe/internal/dictionary"
	"bangfe/internal/trace"
)

func main() {
	if err := run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := cli.Parse(args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage("bangfe-dict"))
		return nil
	}
	if err := trace.Setup(opts.TraceLevel); err != nil {
		return err
	}
	input, output, err := paths(opts)
	if err != nil {
		return err
	}

	imported, total, err := importFile(input, output)
	if err != nil {
		return err
	}
	pterm.Success.Println(fmt.Sprintf("imported %d words from %s, %s now holds %d", imported, input, output, total))
	return nil
}

// paths fills in defaults: with --database DIR the input is the JSON or
// TSV file found there and the output is DIR/dictionary.db.
func paths(opts cli.Options) (input, output string, err error) {
	input, output = opts.InputPath, opts.OutputPath
	if input == "" && opts.DatabaseDir != "" {
		for _, name := range []string{dictionary.JSONFile, dictionary.WordListFile} {
			candidate := filepath.Join(opts.DatabaseDir, name)
			if _, err := os.Stat(candidate); err == nil {
				input = candidate
				break
			}
		}
	}
	if input == "" {
		return "", "", fmt.Errorf("no input: use --input or --database")
	}
	if output == "" {
		dir := opts.DatabaseDir
		if dir == "" {
			dir = filepath.Dir(input)
		}
		output = filepath.Join(dir, dictionary.SQLiteFile)
	}
	return input, output, nil
}

func importFile(input, output string) (imported, total int, err error) {
	entries, err := dictionary.ReadEntries(input)
	if err != nil {
		return 0, 0, err
	}
	db, err := dictionary.OpenSQLite(output)
	if err != nil {
		return 0, 0, err
	}
	defer db.Close()
	if imported, err = db.Import(entries); err != nil {
		return 0, 0, err
	}
	if total, err = db.Count(); err != nil {
		return 0, 0, err
	}
	return imported, total, nil
}
