package prompt

import (
	"io"

	"github.com/chzyer/readline"
)

// TerminalLineReader reads lines from the controlling terminal with tab
// completion via readline. One readline instance is created per prompt so
// each question gets its own completion set.
type TerminalLineReader struct{}

// ReadLine implements LineReader. Interrupt and EOF both map to
// ErrCancelled.
func (TerminalLineReader) ReadLine(promptText string, completions []string) (string, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(completions))
	for _, c := range completions {
		items = append(items, readline.PcItem(c))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptText,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	switch err {
	case nil:
		return line, nil
	case readline.ErrInterrupt, io.EOF:
		return "", ErrCancelled
	default:
		return "", err
	}
}
