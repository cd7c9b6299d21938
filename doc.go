// Package readline provides a readline-style text editing engine for Go.
//
// The Editor owns a text buffer and a cursor and implements the editing
// semantics of classic line editors: character and word motion, line motion
// for wrapped multi-line text, kill and yank, single-step undo and
// tab-completion cycling. It performs no I/O, so it can be embedded in any
// surface that reports named key events and a visible width.
//
// Key Features:
//
//   - Character offsets, not bytes; wide characters take two display columns
//   - Configurable word characters for word motion and word kills
//   - Kill buffer with coalesced whole-line kills
//   - Undo of every text-changing key (cursor motion is never recorded)
//   - Completion cycling over an external completer, forward and backward
//   - Optional multi-line buffers and a maximum character count
//   - A terminal Prompt built on the Editor, with history
//
// Quick Start:
//
//	ed := readline.New(
//		readline.WithText("git st"),
//		readline.WithCursor(6),
//		readline.WithCompleter(readline.NewPrefixCompleter([]string{"status", "stash"})),
//	)
//	ed.Keypress(80, "tab")    // "git status"
//	ed.Keypress(80, "tab")    // "git stash"
//	ed.Keypress(80, "ctrl w") // "git "
//	ed.Keypress(80, "ctrl y") // "git stash"
//
// Keypress reports whether the key was consumed. Unbound keys that are not
// printable input, and arrow keys that cannot move the cursor further, are
// left to the host, which can use them for focus changes or history.
//
// Key Bindings:
//
//   - ctrl f / right, ctrl b / left: move by character
//   - meta f / shift right, meta b / shift left: move by word
//   - ctrl a / home, ctrl e / end: beginning / end of line
//   - up / ctrl p, down / ctrl n: previous / next display row
//   - ctrl d / delete, ctrl h / backspace: delete a character
//   - ctrl u, ctrl k, meta x: kill to line start, to line end, whole line
//   - meta d, ctrl w / meta backspace: kill a word forward / backward
//   - ctrl t: transpose characters
//   - ctrl y: paste the last kill
//   - ctrl _: undo
//   - ctrl l: clear the buffer
//   - enter: insert a line break (multiline only)
//   - tab / shift tab: cycle completions
//
// Terminal Prompt:
//
//	p, err := readline.NewPrompt("$ ", readline.WithMemoryHistory(100))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	line, err := p.Run()
//	if errors.Is(err, readline.ErrInterrupted) {
//		return
//	}
//
// Thread Safety:
//
// Editor and Prompt instances are not thread-safe. Each one should be used
// from a single goroutine. A completer is called synchronously and must not
// modify the editor it completes for.
package readline
