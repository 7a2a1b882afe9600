package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"bangfe/internal/app"
	"bangfe/internal/keycode"
	"bangfe/pkg/ime"
)

// Intp is our interpreter object
type Intp struct {
	repl      *readline.Instance
	rt        *app.Runtime
	current   ime.Suggestion
	committed strings.Builder
}

// REPL reads lines until EOF or :quit.
func (intp *Intp) REPL() {
	for {
		intp.drainReloads()
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) ctx() *ime.Context { return intp.rt.Context() }

func (intp *Intp) execute(line string) (quit bool, err error) {
	if !strings.HasPrefix(line, ":") {
		intp.typeWord(line)
		return false, nil
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return false, fmt.Errorf("empty command")
	}
	switch fields[0] {
	case "quit", "q":
		return true, nil
	case "help":
		intp.help()
	case "commit", "c":
		index := intp.current.PreviouslySelected()
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return false, fmt.Errorf("commit: %w", err)
			}
			index = n
		}
		return false, intp.commit(index)
	case "back", "b":
		intp.current = intp.ctx().Backspace()
		intp.print()
	case "finish", "f":
		intp.ctx().FinishInputSession()
		intp.current = ime.Suggestion{}
		pterm.Println("session finished")
	case "mode", "m":
		var applied bool
		if len(fields) > 1 {
			applied, err = intp.rt.SelectProfile(fields[1])
		} else {
			applied, err = intp.rt.NextProfile()
		}
		if err != nil {
			return false, err
		}
		intp.reportProfile(applied)
	case "reload", "r":
		applied, err := intp.rt.Reload()
		if err != nil {
			return false, err
		}
		intp.reportProfile(applied)
	case "text":
		pterm.Println(intp.committed.String())
	default:
		return false, fmt.Errorf("unknown command :%s", fields[0])
	}
	return false, nil
}

func (intp *Intp) typeWord(word string) {
	for _, r := range word {
		code, ok := keycode.FromRune(r)
		if !ok {
			pterm.Error.Printf("no key for %q\n", r)
			continue
		}
		sg := intp.ctx().HandleKey(code, 0)
		if intp.ctx().KeyHandled() {
			intp.current = sg
		}
	}
	intp.print()
}

func (intp *Intp) commit(index int) error {
	if !intp.ctx().OngoingInputSession() {
		return fmt.Errorf("nothing to commit")
	}
	if n := intp.current.Len(); index < 0 || index >= n {
		return fmt.Errorf("commit: index %d out of range [0,%d)", index, n)
	}
	text := intp.ctx().Commit(index)
	intp.committed.WriteString(text)
	intp.current = ime.Suggestion{}
	pterm.Printf("committed %s\n", text)
	if err := intp.ctx().PendingError(); err != nil {
		return err
	}
	return nil
}

func (intp *Intp) print() {
	sg := intp.current
	if !intp.ctx().OngoingInputSession() || sg.IsEmpty() {
		pterm.Println("(no session)")
		return
	}
	if sg.IsLonely() {
		pterm.Printf("%s\n", sg.Lonely())
		return
	}
	pterm.Printf("typed %s\n", sg.Auxiliary())
	data := [][]string{
		{"Index", "Candidate", ""},
	}
	for i, c := range sg.Candidates() {
		mark := ""
		if i == sg.PreviouslySelected() {
			mark = "*"
		}
		data = append(data, []string{strconv.Itoa(i), c, mark})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) reportProfile(applied bool) {
	if applied {
		pterm.Info.Println(fmt.Sprintf("profile %s", intp.rt.Profile().Name))
		return
	}
	pterm.Info.Println(fmt.Sprintf("profile %s after the current word", intp.rt.Profile().Name))
}

// drainReloads applies data changes noticed while waiting for input.
func (intp *Intp) drainReloads() {
	for {
		select {
		case reload, ok := <-intp.rt.Reloads():
			if !ok {
				return
			}
			if _, err := intp.rt.Reload(); err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			pterm.Info.Println(fmt.Sprintf("reloaded after changes to %s", strings.Join(reload.Paths, ", ")))
		default:
			return
		}
	}
}

func (intp *Intp) help() {
	pterm.Println(`words are typed into the current session
:commit [N]   commit candidate N (default: the preselected one)
:back         backspace
:finish       drop the current word
:mode [NAME]  switch to the next or the named profile
:reload       rebuild the engine from its files
:text         show everything committed so far
:quit`)
}
