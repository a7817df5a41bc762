package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

type notificationMsg usecase.Notification

type progressMsg usecase.ProgressEvent

// Bridge forwards notifications and progress events raised by use cases
// into the bubbletea event loop. It satisfies both usecase.Notifier and
// usecase.ProgressSink.
type Bridge struct {
	events    chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
}

// NewBridge creates a bridge with a small event buffer
func NewBridge() *Bridge {
	return &Bridge{
		events: make(chan tea.Msg, 16),
		done:   make(chan struct{}),
	}
}

var (
	_ usecase.Notifier     = (*Bridge)(nil)
	_ usecase.ProgressSink = (*Bridge)(nil)
)

// Notify queues a modal notification
func (b *Bridge) Notify(n usecase.Notification) {
	b.send(notificationMsg(n))
}

// OnProgress queues a progress update for the status line
func (b *Bridge) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	b.send(progressMsg(event))
}

// Info is shown as a status line message
func (b *Bridge) Info(message string) {
	b.send(progressMsg{Stage: "info", Message: message})
}

// Error is shown as a status line message
func (b *Bridge) Error(message string) {
	b.send(progressMsg{Stage: "error", Message: message})
}

// Close releases senders blocked on a program that is no longer reading
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.events <- msg:
	case <-b.done:
	}
}

// listen blocks until the next bridged event arrives
func (b *Bridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.done:
			return nil
		}
	}
}
