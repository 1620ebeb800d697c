package core

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ScreenID identifies a screen instance for inbox routing.
type ScreenID string

func NewScreenID(kind string) ScreenID {
	return ScreenID(kind + ":" + uuid.NewString())
}

// Sender hands a message to the UI loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bus is an unbounded FIFO in front of the UI loop. Post never blocks, so it
// is safe to call from Update as well as from worker goroutines.
type Bus struct {
	mu     sync.Mutex
	queue  []tea.Msg
	notify chan struct{}
}

func NewBus() *Bus {
	return &Bus{notify: make(chan struct{}, 1)}
}

func (b *Bus) Post(msg tea.Msg) {
	if msg == nil {
		return
	}
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()
	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Push posts a PushScreenMsg, keeping the push ordered with everything else
// already posted.
func (b *Bus) Push(s Screen, onDismiss DismissFunc) {
	if s == nil {
		return
	}
	b.Post(PushScreenMsg{Screen: s, OnDismiss: onDismiss})
}

func (b *Bus) Inbox(id ScreenID) Inbox {
	return Inbox{bus: b, to: id}
}

// Drain removes and returns everything queued, oldest first.
func (b *Bus) Drain() []tea.Msg {
	b.mu.Lock()
	out := b.queue
	b.queue = nil
	b.mu.Unlock()
	return out
}

func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Pump forwards posted messages to s in post order until ctx is done.
func (b *Bus) Pump(ctx context.Context, s Sender) error {
	for {
		for _, msg := range b.Drain() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.Send(msg)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.notify:
		}
	}
}

// Inbox is the post address of one screen.
type Inbox struct {
	bus *Bus
	to  ScreenID
}

func (i Inbox) ID() ScreenID { return i.to }

func (i Inbox) Bus() *Bus { return i.bus }

func (i Inbox) Valid() bool { return i.bus != nil && i.to != "" }

// Post delivers msg to the owning screen through the bus. Safe from any
// goroutine.
func (i Inbox) Post(msg tea.Msg) {
	if !i.Valid() || msg == nil {
		return
	}
	i.bus.Post(Envelope{To: i.to, Msg: msg})
}
