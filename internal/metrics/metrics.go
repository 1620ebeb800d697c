package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "termkit"

// Metrics groups the task and dialog collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	RunsStarted   prometheus.Counter
	RunsRejected  prometheus.Counter
	RunsFinished  *prometheus.CounterVec
	TaskPanics    prometheus.Counter
	CloseRefused  prometheus.Counter
	RunDuration   prometheus.Histogram
	DialogsOpened *prometheus.CounterVec
	DialogsAnswer *prometheus.CounterVec
	AmbiguousKeys *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RunsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_runs_started_total",
			Help:      "Tasks handed to a worker.",
		}),
		RunsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_runs_rejected_total",
			Help:      "Run requests dropped because a task was already in flight.",
		}),
		RunsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_runs_finished_total",
			Help:      "Finished task runs by result.",
		}, []string{"result"}),
		TaskPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_panics_total",
			Help:      "Task bodies that panicked.",
		}),
		CloseRefused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "console_close_refused_total",
			Help:      "Close requests ignored while a task was running.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_run_duration_seconds",
			Help:      "Wall time of task runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		DialogsOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_opened_total",
			Help:      "Dialogs pushed by correlation key.",
		}, []string{"key"}),
		DialogsAnswer: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_answered_total",
			Help:      "Dialog results delivered by correlation key.",
		}, []string{"key"}),
		AmbiguousKeys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_ambiguous_total",
			Help:      "Dialogs opened while another with the same key was pending.",
		}, []string{"key"}),
	}
	reg.MustRegister(
		m.RunsStarted, m.RunsRejected, m.RunsFinished, m.TaskPanics, m.CloseRefused,
		m.RunDuration, m.DialogsOpened, m.DialogsAnswer, m.AmbiguousKeys,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.RunsStarted.Inc()
}

func (m *Metrics) RunRejected() {
	if m == nil {
		return
	}
	m.RunsRejected.Inc()
}

func (m *Metrics) RunFinished(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.RunsFinished.WithLabelValues(result).Inc()
	m.RunDuration.Observe(d.Seconds())
}

func (m *Metrics) TaskPanicked() {
	if m == nil {
		return
	}
	m.TaskPanics.Inc()
}

func (m *Metrics) CloseWhileRunning() {
	if m == nil {
		return
	}
	m.CloseRefused.Inc()
}

func (m *Metrics) DialogOpened(key string) {
	if m == nil {
		return
	}
	m.DialogsOpened.WithLabelValues(key).Inc()
}

func (m *Metrics) DialogAnswered(key string) {
	if m == nil {
		return
	}
	m.DialogsAnswer.WithLabelValues(key).Inc()
}

func (m *Metrics) AmbiguousKey(key string) {
	if m == nil {
		return
	}
	m.AmbiguousKeys.WithLabelValues(key).Inc()
}
