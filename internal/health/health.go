// Package health aggregates readiness checks of the backing stores.
package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"timeblock/pkg/log"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	ComponentUp   = "up"
	ComponentDown = "down"
)

// DefaultTimeout bounds a single checker when none is configured.
const DefaultTimeout = 3 * time.Second

// Checker checks one dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Component is the result of one checker.
type Component struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Report lists healthy components under Info, failing ones under Error and
// all of them under Details.
type Report struct {
	Status  string               `json:"status"`
	Info    map[string]Component `json:"info"`
	Error   map[string]Component `json:"error"`
	Details map[string]Component `json:"details"`
}

// Healthy reports whether every checker passed.
func (r Report) Healthy() bool {
	return r.Status == StatusOK
}

// Aggregator runs its checkers concurrently.
type Aggregator struct {
	l        log.Logger
	timeout  time.Duration
	checkers []Checker
}

// New creates an Aggregator. A non-positive timeout uses DefaultTimeout.
func New(l log.Logger, timeout time.Duration, checkers ...Checker) *Aggregator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Aggregator{l: l, timeout: timeout, checkers: checkers}
}

// Check runs every checker with its own timeout and collects the results.
func (a *Aggregator) Check(ctx context.Context) Report {
	errs := make([]error, len(a.checkers))

	var g errgroup.Group
	for i, c := range a.checkers {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()
			errs[i] = c.Check(cctx)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{
		Status:  StatusOK,
		Info:    map[string]Component{},
		Error:   map[string]Component{},
		Details: map[string]Component{},
	}
	for i, c := range a.checkers {
		name := c.Name()
		if errs[i] != nil {
			a.l.Warnf(ctx, "health.Check %s: %v", name, errs[i])
			comp := Component{Status: ComponentDown, Message: errs[i].Error()}
			report.Error[name] = comp
			report.Details[name] = comp
			report.Status = StatusError
			continue
		}
		comp := Component{Status: ComponentUp}
		report.Info[name] = comp
		report.Details[name] = comp
	}
	return report
}
