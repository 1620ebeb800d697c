package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jask/termkit/console"
)

// Argument names understood by Task.
const (
	ArgIterations = "N"
	ArgDelay      = "delay"
)

// Task counts to N, printing every 300th step, warning every 1600th and
// reporting an error every 2000th. It always reports false.
func Task(ctx context.Context, args console.Args) bool {
	p := console.FromContext(ctx)
	p.Print(fmt.Sprintf("params %v", args))
	n, _ := args[ArgIterations].(int)
	delay, _ := args[ArgDelay].(time.Duration)
	for i := 1; i < n; i++ {
		if i%1600 == 0 {
			p.Warning(fmt.Sprintf("now i = %d\n but not really...", i))
		}
		if i%2000 == 0 {
			p.Error(strings.ToUpper(fmt.Sprintf("now i = %d", i)))
		}
		if i%300 == 0 {
			p.Print(fmt.Sprintf("this is %d", i))
			if delay > 0 {
				time.Sleep(delay)
			}
		}
	}
	return false
}
