package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/game"
)

// Styles holds one style per tone
type Styles struct {
	Muted lipgloss.Style
	Good  lipgloss.Style
	Bad   lipgloss.Style
	Alert lipgloss.Style
	Echo  lipgloss.Style
}

// NewStyles creates the console styles for renderer r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Muted: r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Good:  r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Bad:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Alert: r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Echo:  r.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
	}
}

// Option configures a Console
type Option func(*Console)

// WithPlainText turns colour and emphasis off, e.g. for debug runs whose
// output gets compared against a transcript
func WithPlainText() Option {
	return func(c *Console) {
		c.renderer.SetColorProfile(termenv.Ascii)
	}
}

// Console prints every event it receives to a writer
type Console struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   Styles
}

// NewConsole creates a console printing to w
func NewConsole(w io.Writer, opts ...Option) *Console {
	c := &Console{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = NewStyles(c.renderer)
	return c
}

func (c *Console) OnEvent(event game.GameEvent) {
	for _, line := range Format(event) {
		fmt.Fprintln(c.out, c.render(line))
	}
}

// Echo prints a command read from a script, "# <cmd>"
func (c *Console) Echo(cmd string) {
	fmt.Fprintln(c.out, c.styles.Echo.Render("# "+cmd))
}

// Banner prints a heading line
func (c *Console) Banner(text string) {
	fmt.Fprintln(c.out, c.styles.Alert.Render(text))
}

func (c *Console) render(line Line) string {
	// lipgloss expands tabs, so tabbed report lines stay unstyled
	switch line.Tone {
	case Muted:
		if strings.Contains(line.Text, "\t") {
			return line.Text
		}
		return c.styles.Muted.Render(line.Text)
	case Good:
		return c.styles.Good.Render(line.Text)
	case Bad:
		return c.styles.Bad.Render(line.Text)
	case Alert:
		return c.styles.Alert.Render(line.Text)
	default:
		return line.Text
	}
}

// Summary stays quiet until the session ends and then prints the statistics
// report. Simulations use it instead of a Console.
type Summary struct {
	out io.Writer
}

// NewSummary creates a summary printer writing to w
func NewSummary(w io.Writer) *Summary {
	return &Summary{out: w}
}

func (s *Summary) OnEvent(event game.GameEvent) {
	q, ok := event.(game.QuitEvent)
	if !ok {
		return
	}
	for _, line := range Report(q.Stats, q.Balance) {
		fmt.Fprintln(s.out, line)
	}
}
