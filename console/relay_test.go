package console

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/core/coretest"
)

func newConsole(t *testing.T) (*coretest.Harness, *Console) {
	t.Helper()
	bus := core.NewBus()
	h := coretest.New(coretest.NewStubScreen(core.ScopeHome), bus)
	c := Init(bus, NewTerminal(bus, WithClock(fixedClock)), nil)
	t.Cleanup(Teardown)
	return h, c
}

func TestInitReturnsInstalledConsole(t *testing.T) {
	bus := core.NewBus()
	first := Init(bus, NewTerminal(bus), nil)
	t.Cleanup(Teardown)
	second := Init(bus, NewTerminal(bus), nil)
	require.Same(t, first, second)
	require.Same(t, first, Current())

	Teardown()
	require.Nil(t, Current())
}

func TestInactiveRelayDropsLines(t *testing.T) {
	h, c := newConsole(t)
	for i := 0; i < 5; i++ {
		c.Print("p")
		c.Warning("w")
		c.Error("e")
	}
	require.Zero(t, h.Bus.Len())
	h.Settle()
	require.Empty(t, c.Terminal().Lines())
}

func TestShowIsIdempotent(t *testing.T) {
	h, c := newConsole(t)
	require.True(t, c.Show())
	require.False(t, c.Show())
	h.Settle()
	require.True(t, c.Active())
	require.Len(t, h.Model.Screens(), 1)
	require.Equal(t, c.Terminal().ID(), h.Model.Top().ID())
}

func TestPoppedConsoleBecomesInactive(t *testing.T) {
	h, c := newConsole(t)
	require.True(t, c.Show())
	h.Settle()
	h.Send(core.PopScreenMsg{})
	require.False(t, c.Active())
	require.Nil(t, c.DismissResult())

	c.Print("dropped")
	require.Zero(t, h.Bus.Len())
	require.True(t, c.Show())
}

func TestActiveRelayKeepsCallOrder(t *testing.T) {
	h, c := newConsole(t)
	require.True(t, c.Show())
	c.Print("one")
	c.Warning("two")
	c.Error("three")
	c.Print("four")
	h.Settle()

	require.Equal(t, []string{"one", "WARNING: two", "ERROR: three", "four"}, texts(c.Terminal().Lines()))
}

func TestShowClearsPreviousSession(t *testing.T) {
	h, c := newConsole(t)
	c.Show()
	c.Print("old")
	h.Settle()
	h.Run(c.Terminal().Close())
	require.False(t, c.Active())
	require.Equal(t, true, c.DismissResult())

	c.Show()
	h.Settle()
	require.Empty(t, c.Terminal().Lines())
	require.Nil(t, c.DismissResult())
}

func TestPackageFunctionsDelegate(t *testing.T) {
	Print("no console yet")

	h, c := newConsole(t)
	c.Show()
	Print("a")
	Warning("b")
	Error("c")
	h.Settle()
	require.Len(t, c.Terminal().Lines(), 3)

	h.Run(c.Terminal().Close())
	Print("after close")
	h.Settle()
	require.Len(t, c.Terminal().Lines(), 3)
}

func TestConsoleRunShowsAndRelays(t *testing.T) {
	h, c := newConsole(t)
	h.Run(c.Run(func(ctx context.Context, args Args) bool {
		FromContext(ctx).Print(fmt.Sprintf("params %v", args["N"]))
		Warning("from anywhere")
		return false
	}, Args{"N": 3}))

	require.True(t, c.Active())
	require.Equal(t, []string{
		"params 3",
		"WARNING: from anywhere",
		"READY false 05-03-2024, 14:07:09",
	}, texts(c.Terminal().Lines()))
	require.False(t, c.Terminal().Running())
}

func TestConcurrentPrintsAllArrive(t *testing.T) {
	h, c := newConsole(t)
	c.Show()
	h.Settle()

	const workers, each = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				c.Print("x")
			}
		}()
	}
	wg.Wait()
	h.Settle()
	require.Len(t, c.Terminal().Lines(), workers*each)
}

func TestFromContextWithoutPrinter(t *testing.T) {
	require.NotPanics(t, func() {
		FromContext(context.Background()).Print("dropped")
	})
}
