package notify

import (
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// ConsoleNotifier prints transaction notifications as boxed messages
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify renders n as a single cell box with a colored title
func (c *ConsoleNotifier) Notify(n usecase.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.AppendRow(table.Row{titleColor(n.State).Sprint(n.Title)})
	t.AppendRow(table.Row{n.Message})
	t.Render()
}

func titleColor(state models.TxState) *color.Color {
	if state == models.TxStateSuccess {
		return color.New(color.FgGreen, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}

var _ usecase.Notifier = (*ConsoleNotifier)(nil)
