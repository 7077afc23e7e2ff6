package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressManager struct {
	p *mpb.Progress
}

func NewProgressManager(out io.Writer) *ProgressManager {
	p := mpb.New(
		mpb.WithWidth(32),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	return &ProgressManager{p: p}
}

func (pm *ProgressManager) Close() {
	pm.p.Wait()
}

// Steps registers a bar that advances once per named pipeline step.
func (pm *ProgressManager) Steps(prefix string, steps ...string) *StepHandle {
	h := &StepHandle{
		steps: steps,
		start: time.Now(),
	}

	h.bar = pm.p.New(
		int64(len(steps)),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(prefix+"  "),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit(" %d/%d", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + h.current()
			}),
			decor.Any(func(_ decor.Statistics) string {
				if h.final.Load() {
					return fmt.Sprintf(" | %dms", h.elapsed.Load())
				}
				return fmt.Sprintf(" | %dms", time.Since(h.start).Milliseconds())
			}),
		),
	)

	return h
}

type StepHandle struct {
	bar   *mpb.Bar
	steps []string

	mu   sync.Mutex
	done int

	start   time.Time
	elapsed atomic.Int64
	final   atomic.Bool
}

func (h *StepHandle) current() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done >= len(h.steps) {
		return "done"
	}
	return h.steps[h.done]
}

// Next marks the current step as finished.
func (h *StepHandle) Next() {
	if h.final.Load() {
		return
	}

	h.mu.Lock()
	if h.done < len(h.steps) {
		h.done++
	}
	done := h.done
	h.mu.Unlock()

	if done == len(h.steps) {
		h.elapsed.Store(time.Since(h.start).Milliseconds())
		h.final.Store(true)
	}
	h.bar.SetCurrent(int64(done))
}

// Abort stops the bar after a failed step, leaving it on screen.
func (h *StepHandle) Abort() {
	if h.final.Swap(true) {
		return
	}

	h.elapsed.Store(time.Since(h.start).Milliseconds())
	h.bar.Abort(false)
}
