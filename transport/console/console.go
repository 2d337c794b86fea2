package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"golang.org/x/term"
)

const (
	title     = "Tic-Tac-Toe (CLI)"
	titleRule = "-----------------"
	rowRule   = "---+---+---"

	clearSequence       = "\033[H\033[2J"
	windowTitleSequence = "\033]0;%s\007"
)

type Options struct {
	Color       bool
	ClearScreen bool
	WindowTitle bool
	HistoryFile string
}

type styles struct {
	x        lipgloss.Style
	o        lipgloss.Style
	title    lipgloss.Style
	alert    lipgloss.Style
	announce lipgloss.Style
}

// Console renders the game as text and reads the player's answers line by line.
type Console struct {
	reader lineReader
	output io.Writer

	clear  bool
	color  bool
	styles styles
}

// New builds a Console over arbitrary streams. Lines are read with a plain buffered reader.
func New(input io.Reader, output io.Writer, opts Options) *Console {
	return newConsole(newStreamReader(input, output), output, opts)
}

// NewTerminal builds a Console on the process stdin/stdout. Readline, screen clearing and
// colors are only switched on when the matching stream is a terminal.
func NewTerminal(opts Options) (*Console, error) {
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	opts.ClearScreen = opts.ClearScreen && stdoutTTY
	opts.Color = opts.Color && stdoutTTY
	opts.WindowTitle = opts.WindowTitle && stdoutTTY

	if !stdinTTY || !stdoutTTY {
		return New(os.Stdin, os.Stdout, opts), nil
	}

	reader, err := newReadlineReader(opts.HistoryFile, os.Stdout)
	if err != nil {
		return nil, err
	}

	return newConsole(reader, os.Stdout, opts), nil
}

func newConsole(reader lineReader, output io.Writer, opts Options) *Console {
	renderer := lipgloss.NewRenderer(output)

	if opts.WindowTitle {
		fmt.Fprintf(output, windowTitleSequence, title)
	}

	return &Console{
		reader: reader,
		output: output,
		clear:  opts.ClearScreen,
		color:  opts.Color,
		styles: styles{
			x:        renderer.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			o:        renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			title:    renderer.NewStyle().Foreground(lipgloss.Color("14")),
			alert:    renderer.NewStyle().Foreground(lipgloss.Color("11")),
			announce: renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		},
	}
}

func (that *Console) ReadLine(prompt string) (string, error) {
	return that.reader.ReadLine(prompt)
}

func (that *Console) Close() error {
	return that.reader.Close()
}

func (that *Console) Clear() {
	if that.clear {
		fmt.Fprint(that.output, clearSequence)
	}
}

// Title prints the banner; a valid mode adds the mode line below it.
func (that *Console) Title(mode entity.Mode) {
	fmt.Fprintln(that.output, that.render(that.styles.title, title))
	fmt.Fprintln(that.output, titleRule)
	fmt.Fprintln(that.output)

	if mode.IsValid() {
		fmt.Fprintf(that.output, "Mode: %s\n\n", mode)
	}
}

func (that *Console) Board(board entity.Board) {
	fmt.Fprint(that.output, that.FormatBoard(board))
}

// FormatBoard lays the board out as three " a | b | c " rows split by rules.
func (that *Console) FormatBoard(board entity.Board) string {
	var out strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			out.WriteString(rowRule + "\n")
		}

		fmt.Fprintf(&out, " %s | %s | %s \n",
			that.cell(board, row*3),
			that.cell(board, row*3+1),
			that.cell(board, row*3+2),
		)
	}

	return out.String()
}

func (that *Console) cell(board entity.Board, index int) string {
	symbol := board.Symbol(index)

	switch board[index] {
	case entity.PlayerX:
		return that.render(that.styles.x, symbol)
	case entity.PlayerO:
		return that.render(that.styles.o, symbol)
	default:
		return symbol
	}
}

func (that *Console) Print(msg string) {
	fmt.Fprintln(that.output, msg)
}

func (that *Console) Alert(msg string) {
	fmt.Fprintln(that.output, that.render(that.styles.alert, msg))
}

func (that *Console) Announce(msg string) {
	fmt.Fprintln(that.output, that.render(that.styles.announce, msg))
}

// render styles each line on its own so lipgloss does not pad lines to a common width.
func (that *Console) render(style lipgloss.Style, text string) string {
	if !that.color {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
