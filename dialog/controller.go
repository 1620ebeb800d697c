package dialog

import (
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/internal/logging"
	"github.com/jask/termkit/internal/metrics"
)

type pendingKey struct {
	originator core.ScreenID
	key        core.CorrelationKey
}

// Controller opens dialogs on behalf of screens. Its methods may be called
// from any goroutine.
type Controller struct {
	bus     *core.Bus
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	pending map[pendingKey]int
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logging.OrNop(logger) }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

func NewController(bus *core.Bus, opts ...Option) *Controller {
	c := &Controller{
		bus:     bus,
		logger:  logging.NewNop(),
		pending: make(map[pendingKey]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Message shows text with a single OK button. An empty key means KeyMessage.
func (c *Controller) Message(originator core.Inbox, text string, key core.CorrelationKey) string {
	if key == "" {
		key = KeyMessage
	}
	id, _ := c.Ask(originator, Request{Prompt: text, Key: key, Choices: []Choice{AckChoice("OK")}})
	return id
}

// Verify asks a yes/no question. Without choices it offers Yes and No.
func (c *Controller) Verify(originator core.Inbox, question string, key core.CorrelationKey, choices ...Choice) string {
	if key == "" {
		key = KeyVerify
	}
	if len(choices) == 0 {
		choices = []Choice{YesChoice("Yes"), NoChoice("No")}
	}
	id, _ := c.Ask(originator, Request{Prompt: question, Key: key, Choices: choices})
	return id
}

// VerifyCancel asks a yes/no/cancel question.
func (c *Controller) VerifyCancel(originator core.Inbox, question string, key core.CorrelationKey, choices ...Choice) string {
	if key == "" {
		key = KeyVerifyCancel
	}
	if len(choices) == 0 {
		choices = []Choice{YesChoice("Yes"), NoChoice("No"), CancelChoice("Cancel")}
	}
	id, _ := c.Ask(originator, Request{Prompt: question, Key: key, Choices: choices})
	return id
}

// Ask queues a dialog for req and returns its request id at once. The answer
// arrives in originator as a ResultMsg.
func (c *Controller) Ask(originator core.Inbox, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Choices = append([]Choice(nil), req.Choices...)

	pk := pendingKey{originator: originator.ID(), key: req.Key}
	c.mu.Lock()
	if c.pending[pk] > 0 {
		c.logger.Warn("dialog key already pending, answers will be told apart only by request id",
			"originator", originator.ID(), "key", req.Key, "request", req.ID)
		c.metrics.AmbiguousKey(string(req.Key))
	}
	c.pending[pk]++
	c.mu.Unlock()

	s := NewScreen(req)
	c.metrics.DialogOpened(string(req.Key))
	c.logger.Debug("dialog queued", "request", req.ID, "key", req.Key)
	c.bus.Push(s, c.continuation(originator, s, pk))
	return req.ID, nil
}

// Pending reports how many dialogs for key are open on behalf of originator.
func (c *Controller) Pending(originator core.ScreenID, key core.CorrelationKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[pendingKey{originator: originator, key: key}]
}

func (c *Controller) continuation(originator core.Inbox, s *Screen, pk pendingKey) core.DismissFunc {
	return func(result any) tea.Cmd {
		defer c.release(s, pk)
		res, ok := result.(Result)
		if !ok {
			c.logger.Warn("dialog closed without a choice", "request", s.req.ID, "result", result)
			return nil
		}
		s.state = StateDelivered
		originator.Post(core.Correlate(s.req.Key, res))
		c.metrics.DialogAnswered(string(s.req.Key))
		c.logger.Debug("dialog answered", "request", res.RequestID, "key", s.req.Key, "label", res.Label)
		return nil
	}
}

func (c *Controller) release(s *Screen, pk pendingKey) {
	c.mu.Lock()
	if c.pending[pk] <= 1 {
		delete(c.pending, pk)
	} else {
		c.pending[pk]--
	}
	c.mu.Unlock()
	s.state = StateDiscarded
}
