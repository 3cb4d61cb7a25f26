package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// CycleResult summarizes one pass over the registry.
type CycleResult struct {
	Symbols  int
	Updated  int
	Failed   int
	Skipped  bool
	Duration time.Duration
}

// Poller refreshes every registry entry once per interval.
type Poller struct {
	cfg      Config
	source   Source
	renderer Renderer
	logger   log.Logger

	running atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Poller. cfg is copied; later changes by the caller are not seen.
func New(cfg Config, source Source, renderer Renderer, logger log.Logger) *Poller {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	cfg = cfg.clone()
	cfg.applyDefaults()
	return &Poller{
		cfg:      cfg,
		source:   source,
		renderer: renderer,
		logger:   logger,
	}
}

// Start begins the polling loop: one pass immediately, then one per interval.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	_ = level.Info(p.logger).Log("msg", "dashboard poller started",
		"interval", p.cfg.Interval,
		"symbols", len(p.cfg.Symbols),
	)
	return nil
}

// Stop cancels the loop and waits for the current pass to return.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		_ = level.Info(p.logger).Log("msg", "dashboard poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop. Passes run on this goroutine only, so a slow
// pass delays the next one instead of overlapping it.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.RunOnce(p.ctx)

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.RunOnce(p.ctx)
		}
	}
}

// RunOnce updates every entry sequentially, in registry order, then flushes the
// renderer. A call made while another pass is in progress is skipped.
func (p *Poller) RunOnce(ctx context.Context) CycleResult {
	res := CycleResult{Symbols: len(p.cfg.Symbols)}
	if !p.running.CompareAndSwap(false, true) {
		_ = level.Warn(p.logger).Log("msg", "poll cycle skipped, previous cycle still running")
		res.Skipped = true
		return res
	}
	defer p.running.Store(false)

	start := time.Now()
	for _, e := range p.cfg.Symbols {
		if ctx.Err() != nil {
			break
		}
		if err := p.updateWithTimeout(ctx, e); err != nil {
			_ = level.Warn(p.logger).Log("msg", "symbol update failed", "id", e.ID, "symbol", e.Symbol, "err", err)
			res.Failed++
			continue
		}
		res.Updated++
	}

	if err := p.renderer.Flush(); err != nil {
		_ = level.Error(p.logger).Log("msg", "failed to flush dashboard", "err", err)
	}

	res.Duration = time.Since(start)
	_ = level.Info(p.logger).Log("msg", "poll cycle complete",
		"symbols", res.Symbols,
		"updated", res.Updated,
		"failed", res.Failed,
		"duration", res.Duration,
	)
	return res
}

func (p *Poller) updateWithTimeout(ctx context.Context, e Entry) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()
	return p.Update(ctx, e)
}
