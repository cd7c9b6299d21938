// Package main is a small shell built on the readline Prompt: tab cycles
// through command names and file paths, ctrl w / ctrl y kill and yank words,
// and up / down walk the history.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/readline"
)

var commands = []string{"cat", "cd", "exit", "ls", "pwd"}

func main() {
	settingsPath := flag.String("settings", "", "YAML settings file")
	flag.Parse()

	opts := []readline.PromptOption{readline.WithMemoryHistory(1000)}
	if *settingsPath != "" {
		settings, err := readline.LoadSettingsFile(*settingsPath)
		if err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
		opts = append(opts, settings.PromptOptions()...)
	}
	opts = append(opts, readline.WithEditorOptions(readline.WithCompleter(shellCompleter())))

	p, err := readline.NewPrompt("shell> ", opts...)
	if err != nil {
		log.Fatalf("failed to create prompt: %v", err)
	}
	defer p.Close()

	for {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "unknown"
		}
		p.SetPrefix(fmt.Sprintf("shell:%s> ", filepath.Base(cwd)))

		line, err := p.Run()
		if errors.Is(err, readline.ErrEOF) || errors.Is(err, readline.ErrInterrupted) {
			fmt.Println("Goodbye!")
			return
		}
		if err != nil {
			log.Printf("Error: %v", err)
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" {
			fmt.Println("Goodbye!")
			return
		}
		if err := execute(fields[0], fields[1:]); err != nil {
			fmt.Printf("%s: %v\n", fields[0], err)
		}
	}
}

// shellCompleter offers command names first, then file paths.
func shellCompleter() readline.Completer {
	sources := []readline.Completer{
		readline.NewPrefixCompleter(commands),
		readline.NewFileCompleter(),
	}
	return func(fragment string, state int) (string, bool) {
		var all []string
		for _, complete := range sources {
			for i := 0; ; i++ {
				c, ok := complete(fragment, i)
				if !ok {
					break
				}
				all = append(all, c)
			}
		}
		if state < 0 {
			state += len(all)
		}
		if state < 0 || state >= len(all) {
			return "", false
		}
		return all[state], true
	}
}

func execute(cmd string, args []string) error {
	switch cmd {
	case "pwd":
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		fmt.Println(dir)
	case "cd":
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return os.Chdir(dir)
	case "ls":
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() {
				name += "/"
			}
			fmt.Println(name)
		}
	case "cat":
		for _, name := range args {
			data, err := os.ReadFile(name) //nolint:gosec // reading user-chosen files is the point
			if err != nil {
				return err
			}
			fmt.Print(string(data))
		}
	default:
		return errors.New("command not found")
	}
	return nil
}
