package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// streamReader reads plain lines, used for pipes, files and tests.
// Lines have no length limit, so an overlong line is still handed back for validation.
type streamReader struct {
	reader *bufio.Reader
	output io.Writer
}

func newStreamReader(input io.Reader, output io.Writer) *streamReader {
	return &streamReader{
		reader: bufio.NewReader(input),
		output: output,
	}
}

func (that *streamReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(that.output, prompt)

	line, err := that.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", apperror.ErrInputClosed
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *streamReader) Close() error {
	return nil
}

// readlineReader gives an interactive terminal line editing and history.
type readlineReader struct {
	rl     *readline.Instance
	output io.Writer
}

func newReadlineReader(historyFile string, output io.Writer) (*readlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &readlineReader{rl: rl, output: output}, nil
}

func (that *readlineReader) ReadLine(prompt string) (string, error) {
	// readline redraws a single line, so anything before the last newline is printed up front
	if i := strings.LastIndex(prompt, "\n"); i >= 0 {
		fmt.Fprint(that.output, prompt[:i+1])
		prompt = prompt[i+1:]
	}

	that.rl.SetPrompt(prompt)

	line, err := that.rl.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", apperror.ErrInputClosed
	}

	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return line, nil
}

func (that *readlineReader) Close() error {
	return that.rl.Close()
}
