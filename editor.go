package readline

// DefaultWidth is the column width assumed before a host reports one.
const DefaultWidth = 30

// DefaultCompleterDelims separates the completed segment from the text
// before it.
const DefaultCompleterDelims = " \t\n;"

// Config holds the configuration of an Editor.
type Config struct {
	Text                 string    // Initial text
	Cursor               int       // Initial cursor offset (clamped)
	WordChars            string    // Word-character set (empty = DefaultWordChars)
	Multiline            bool      // Allow line breaks in the buffer
	MaxChars             int       // Maximum number of characters (0 = unlimited)
	Width                int       // Initial column width for wrap-aware motion
	Completer            Completer // Completion callback (nil = completion off)
	CompletionKey        string    // Key cycling completions forward
	CompletionKeyReverse string    // Key cycling completions backward
	CompleterDelims      *string   // Completion delimiters (nil = DefaultCompleterDelims)
}

// Option represents a configuration option for an Editor.
type Option func(*Config)

// WithText sets the initial text.
func WithText(text string) Option {
	return func(c *Config) {
		c.Text = text
	}
}

// WithCursor sets the initial cursor offset.
func WithCursor(cursor int) Option {
	return func(c *Config) {
		c.Cursor = cursor
	}
}

// WithWordChars sets the characters that make up words.
func WithWordChars(chars string) Option {
	return func(c *Config) {
		c.WordChars = chars
	}
}

// WithMultiline enables or disables line breaks in the buffer.
func WithMultiline(multiline bool) Option {
	return func(c *Config) {
		c.Multiline = multiline
	}
}

// WithMaxChars limits the buffer to n characters. Zero means no limit.
// Typed and pasted text and completion candidates are cut to the room left.
func WithMaxChars(n int) Option {
	return func(c *Config) {
		c.MaxChars = n
	}
}

// WithWidth sets the column width used until the host reports another one.
func WithWidth(width int) Option {
	return func(c *Config) {
		c.Width = width
	}
}

// WithCompleter enables completion with the default keys.
func WithCompleter(completer Completer) Option {
	return func(c *Config) {
		c.Completer = completer
	}
}

// WithCompletionKeys sets the forward and reverse completion keys.
func WithCompletionKeys(key, reverse string) Option {
	return func(c *Config) {
		c.CompletionKey = key
		c.CompletionKeyReverse = reverse
	}
}

// WithCompleterDelims sets the delimiters that start a completion segment.
// An empty string makes the whole text before the cursor the segment.
func WithCompleterDelims(delims string) Option {
	return func(c *Config) {
		c.CompleterDelims = &delims
	}
}

// Editor is a readline-style editing engine. It owns the text, the cursor,
// the undo history, the kill buffer and the completion state, and exposes
// every editing primitive as a method. Keypress maps named keys onto them.
//
// An Editor does no I/O and is not safe for concurrent use; each editable
// surface owns its own instance.
type Editor struct {
	text   []rune
	cursor int
	width  int

	multiline bool
	maxChars  int

	words  *WordSegmenter
	keyMap *KeyMap
	undo   UndoHistory
	kills  KillBuffer

	completer       Completer
	completionKey   string
	completionRev   string
	completerDelims string
	completion      *completionState
}

// New creates an Editor.
//
// Example:
//
//	ed := readline.New(
//		readline.WithText("git st"),
//		readline.WithCursor(6),
//		readline.WithCompleter(readline.NewPrefixCompleter([]string{"status", "stash"})),
//	)
//	ed.Keypress(80, "tab")
//	fmt.Println(ed.Text()) // git status
func New(options ...Option) *Editor {
	config := Config{}
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(config)
}

func newFromConfig(config Config) *Editor {
	if config.Width == 0 {
		config.Width = DefaultWidth
	}
	if config.CompletionKey == "" && config.CompletionKeyReverse == "" {
		config.CompletionKey = "tab"
		config.CompletionKeyReverse = "shift tab"
	}
	delims := DefaultCompleterDelims
	if config.CompleterDelims != nil {
		delims = *config.CompleterDelims
	}
	if config.MaxChars < 0 {
		config.MaxChars = 0
	}

	e := &Editor{
		width:           config.Width,
		multiline:       config.Multiline,
		maxChars:        config.MaxChars,
		words:           NewWordSegmenter(config.WordChars),
		keyMap:          NewDefaultKeyMap(config.Multiline),
		completer:       config.Completer,
		completionKey:   config.CompletionKey,
		completionRev:   config.CompletionKeyReverse,
		completerDelims: delims,
	}
	e.SetText(config.Text)
	e.SetCursor(config.Cursor)
	return e
}

// Text returns the current text.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the cursor offset in characters.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Width returns the column width used for wrap-aware motion.
func (e *Editor) Width() int {
	return e.width
}

// SetWidth changes the column width used for wrap-aware motion.
// A width <= 0 disables wrapping.
func (e *Editor) SetWidth(width int) {
	e.width = width
}

// Multiline reports whether the buffer accepts line breaks.
func (e *Editor) Multiline() bool {
	return e.multiline
}

// KeyMap returns the key table the editor dispatches with.
func (e *Editor) KeyMap() *KeyMap {
	return e.keyMap
}

// KillBuffer returns the editor's kill buffer.
func (e *Editor) KillBuffer() *KillBuffer {
	return &e.kills
}

// UndoHistory returns the editor's undo history.
func (e *Editor) UndoHistory() *UndoHistory {
	return &e.undo
}

// SetText replaces the text, truncating it to the character limit, and
// clamps the cursor into the new text.
func (e *Editor) SetText(text string) {
	runes := []rune(text)
	if e.maxChars > 0 && len(runes) > e.maxChars {
		runes = runes[:e.maxChars]
	}
	e.setRunes(runes)
}

// setRunes replaces the text. It ends any completion cycle; complete
// re-arms its own after writing the candidate.
func (e *Editor) setRunes(runes []rune) {
	e.text = runes
	e.cursor = clamp(e.cursor, 0, len(e.text))
	e.completion = nil
}

// SetCursor moves the cursor to pos, clamped into [0, len(text)]. It ends
// any completion cycle.
func (e *Editor) SetCursor(pos int) {
	e.cursor = clamp(pos, 0, len(e.text))
	e.completion = nil
}

// Reset empties the buffer and forgets undo and completion state. The kill
// buffer survives so text killed in one session can be pasted in the next.
func (e *Editor) Reset() {
	e.text = nil
	e.cursor = 0
	e.undo.Reset()
	e.completion = nil
}

// Keypress handles one named key and reports whether it was consumed.
//
// The width is the visible column count used for wrap-aware motion during
// this call; a width <= 0 keeps the previous one. Completion keys are checked
// first; any other key ends a completion cycle. Unbound keys that are not
// printable input are left unconsumed for the host.
func (e *Editor) Keypress(width int, key string) bool {
	if width > 0 {
		e.width = width
	}

	if e.completer != nil && key != "" {
		switch key {
		case e.completionKey:
			e.captureUndo(func() { e.complete(true) })
			return true
		case e.completionRev:
			e.captureUndo(func() { e.complete(false) })
			return true
		}
	}
	e.completion = nil

	if b, ok := e.keyMap.Lookup(key); ok {
		switch {
		case b.PassThrough:
			return e.Run(b.Action)
		case b.Action == ActionUndo:
			e.Undo()
		default:
			e.captureUndo(func() { e.Run(b.Action) })
		}
		return true
	}

	if IsValidKey(key) {
		e.captureUndo(func() { e.InsertText(key) })
		return true
	}
	return false
}

// Run performs action and reports whether it had an effect where the
// operation distinguishes that (character and row motion). Other actions
// report true.
func (e *Editor) Run(action Action) bool {
	switch action {
	case ActionForwardChar:
		return e.ForwardChar()
	case ActionBackwardChar:
		return e.BackwardChar()
	case ActionForwardWord:
		e.ForwardWord()
	case ActionBackwardWord:
		e.BackwardWord()
	case ActionBeginningOfLine:
		e.BeginningOfLine()
	case ActionEndOfLine:
		e.EndOfLine()
	case ActionPreviousLine:
		return e.PreviousLine()
	case ActionNextLine:
		return e.NextLine()
	case ActionDeleteChar:
		e.DeleteChar()
	case ActionBackwardDeleteChar:
		e.BackwardDeleteChar()
	case ActionBackwardKillLine:
		e.BackwardKillLine()
	case ActionForwardKillLine:
		e.ForwardKillLine()
	case ActionKillWholeLine:
		e.KillWholeLine()
	case ActionKillWord:
		e.KillWord()
	case ActionBackwardKillWord:
		e.BackwardKillWord()
	case ActionTransposeChars:
		e.TransposeChars()
	case ActionClearScreen:
		e.ClearScreen()
	case ActionPaste:
		e.Paste()
	case ActionUndo:
		e.Undo()
	case ActionInsertNewline:
		e.InsertNewline()
	default:
		return false
	}
	return true
}

func (e *Editor) snapshot() Snapshot {
	return Snapshot{Cursor: e.cursor, Text: string(e.text)}
}

// captureUndo runs fn and records the change in the undo history when the
// text changed.
func (e *Editor) captureUndo(fn func()) {
	before := e.snapshot()
	fn()
	e.undo.Push(before, e.snapshot())
}

// Undo restores the state before the most recent recorded edit.
// It is a no-op when there is nothing to undo.
func (e *Editor) Undo() {
	s, ok := e.undo.Pop()
	if !ok {
		return
	}
	e.setRunes([]rune(s.Text))
	e.SetCursor(s.Cursor)
}
