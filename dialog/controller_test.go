package dialog

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/core/coretest"
	"github.com/jask/termkit/internal/metrics"
)

type fixture struct {
	h    *coretest.Harness
	home *coretest.StubScreen
	ctl  *Controller
	m    *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := core.NewBus()
	home := coretest.NewStubScreen(core.ScopeHome)
	m := metrics.New()
	return &fixture{
		h:    coretest.New(home, bus),
		home: home,
		ctl:  NewController(bus, WithMetrics(m)),
		m:    m,
	}
}

func (f *fixture) inbox() core.Inbox { return f.h.Bus.Inbox(f.home.ID()) }

// results lists the dialog results the home screen has received.
func (f *fixture) results() []ResultMsg {
	var out []ResultMsg
	for _, msg := range f.home.Got {
		if r, ok := msg.(ResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

func (f *fixture) top(t *testing.T) *Screen {
	t.Helper()
	s, ok := f.h.Model.Top().(*Screen)
	require.True(t, ok, "top screen is not a dialog")
	return s
}

func TestVerifyDeliversChosenLabel(t *testing.T) {
	f := newFixture(t)
	id := f.ctl.Verify(f.inbox(), "Really?", "")
	f.h.Settle()
	require.Equal(t, StatePushed, f.top(t).State())

	f.h.Key("tab")
	f.h.Key("enter")

	got := f.results()
	require.Len(t, got, 1)
	require.Equal(t, KeyVerify, got[0].Key)
	require.Equal(t, "No", got[0].Payload.Label)
	require.Equal(t, AnswerNo, got[0].Payload.Answer)
	require.Equal(t, id, got[0].Payload.RequestID)
	require.Nil(t, f.h.Model.Top())
}

func TestOverlappingKeysRouteIndependently(t *testing.T) {
	f := newFixture(t)
	f.ctl.Verify(f.inbox(), "Q", "k1")
	f.ctl.Verify(f.inbox(), "Q2", "k2")
	f.h.Settle()
	require.Len(t, f.h.Model.Screens(), 2)

	f.h.Key("enter")
	got := f.results()
	require.Len(t, got, 1)
	require.Equal(t, core.CorrelationKey("k2"), got[0].Key)
	require.Equal(t, "Yes", got[0].Payload.Label)
	require.Equal(t, 1, f.ctl.Pending(f.home.ID(), "k1"))

	f.h.Key("n")
	got = f.results()
	require.Len(t, got, 2)
	require.Equal(t, core.CorrelationKey("k1"), got[1].Key)
	require.Equal(t, "No", got[1].Payload.Label)
	require.Zero(t, f.ctl.Pending(f.home.ID(), "k1"))
}

func TestDialogStateMachine(t *testing.T) {
	f := newFixture(t)
	f.ctl.Message(f.inbox(), "Saved", "")
	f.h.Settle()
	s := f.top(t)
	require.Equal(t, StatePushed, s.State())

	cmd := s.Press(0)
	require.NotNil(t, cmd)
	require.Equal(t, StateDismissed, s.State())
	require.Nil(t, s.Press(0), "second press must be ignored")

	f.h.Run(cmd)
	require.Equal(t, StateDiscarded, s.State())
	res, ok := s.Chosen()
	require.True(t, ok)
	require.Equal(t, AnswerAck, res.Answer)

	got := f.results()
	require.Len(t, got, 1)
	require.Equal(t, KeyMessage, got[0].Key)
}

func TestUnmountedDialogIgnoresPress(t *testing.T) {
	s := NewScreen(Request{ID: "r", Choices: []Choice{AckChoice("OK")}})
	require.Equal(t, StateCreated, s.State())
	require.Nil(t, s.Press(0))
}

func TestResultDeliveredExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.ctl.Verify(f.inbox(), "Q", "once")
	f.h.Settle()
	s := f.top(t)
	f.h.Key("enter")
	f.h.Send(core.DismissMsg{Screen: s.ID(), Result: Result{Label: "Yes"}})
	require.Len(t, f.results(), 1)
}

func TestEscPressesCancelOnly(t *testing.T) {
	f := newFixture(t)
	f.ctl.Verify(f.inbox(), "Q", "")
	f.h.Settle()
	f.h.Key("esc")
	require.NotNil(t, f.h.Model.Top(), "verify has no cancel choice")
	f.h.Key("enter")

	f.ctl.VerifyCancel(f.inbox(), "Q", "")
	f.h.Settle()
	f.h.Key("esc")
	got := f.results()
	require.Len(t, got, 2)
	require.Equal(t, KeyVerifyCancel, got[1].Key)
	require.Equal(t, AnswerCancel, got[1].Payload.Answer)
	require.Equal(t, 2, got[1].Payload.Index)
}

func TestDismissWithoutChoiceDeliversNothing(t *testing.T) {
	f := newFixture(t)
	f.ctl.Verify(f.inbox(), "Q", "")
	f.h.Settle()
	s := f.top(t)
	f.h.Send(core.DismissMsg{Screen: s.ID(), Result: nil})
	require.Empty(t, f.results())
	require.Equal(t, StateDiscarded, s.State())
}

func TestPoppedDialogReleasesPending(t *testing.T) {
	f := newFixture(t)
	f.ctl.Verify(f.inbox(), "Q", "k")
	f.h.Settle()
	s := f.top(t)
	require.Equal(t, 1, f.ctl.Pending(f.home.ID(), "k"))

	f.h.Send(core.PopScreenMsg{})
	require.Nil(t, f.h.Model.Top())
	require.Empty(t, f.results())
	require.Equal(t, StateDiscarded, s.State())
	require.Equal(t, 0, f.ctl.Pending(f.home.ID(), "k"))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "pushed", StatePushed.String())
	require.Equal(t, "discarded", StateDiscarded.String())
	require.Equal(t, "state(42)", State(42).String())
}

func TestDuplicatePendingKeyIsCounted(t *testing.T) {
	f := newFixture(t)
	a := f.ctl.Verify(f.inbox(), "first", "same")
	b := f.ctl.Verify(f.inbox(), "second", "same")
	require.NotEqual(t, a, b)
	require.Equal(t, 2, f.ctl.Pending(f.home.ID(), "same"))
	require.Equal(t, 1.0, testutil.ToFloat64(f.m.AmbiguousKeys.WithLabelValues("same")))

	f.h.Settle()
	f.h.Key("enter")
	f.h.Key("enter")
	got := f.results()
	require.Len(t, got, 2)
	require.Equal(t, b, got[0].Payload.RequestID)
	require.Equal(t, a, got[1].Payload.RequestID)
	require.Equal(t, 2.0, testutil.ToFloat64(f.m.DialogsAnswer.WithLabelValues("same")))
}

func TestAskRejectsEmptyChoices(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctl.Ask(f.inbox(), Request{Prompt: "nothing to pick"})
	require.ErrorIs(t, err, ErrNoChoices)
	require.Zero(t, f.h.Bus.Len())
}

func TestAskFromWorkers(t *testing.T) {
	f := newFixture(t)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.ctl.Message(f.inbox(), "hi", "worker")
		}()
	}
	wg.Wait()
	f.h.Settle()
	require.Len(t, f.h.Model.Screens(), 10)
	for i := 0; i < 10; i++ {
		f.h.Key("enter")
	}
	require.Len(t, f.results(), 10)
	require.Zero(t, f.ctl.Pending(f.home.ID(), "worker"))
}

func TestAnswerBool(t *testing.T) {
	require.True(t, AnswerYes.AsBool())
	require.True(t, AnswerAll.AsBool())
	require.False(t, AnswerCancel.AsBool())
	require.Equal(t, AnswerYes, AnswerFromBool(true))
	require.Equal(t, AnswerNo, AnswerFromBool(false))
}
