package cli

import (
	"bufio"
	"io"
)

// terminalPrompter implements pages.Prompter over the REPL's input, so
// forms and commands consume the same buffered stream.
type terminalPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func (p *terminalPrompter) Text(label string) (string, error) {
	return GetSimpleText(p.reader, label, p.w)
}

func (p *terminalPrompter) Password(label string) (string, error) {
	pw, err := GetPassword(p.reader, label, p.w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func (p *terminalPrompter) Multiline(label string) (string, error) {
	return GetMultiline(p.reader, label, p.w)
}

func (p *terminalPrompter) Confirm(label string) (bool, error) {
	return GetConfirm(p.reader, label, p.w)
}
