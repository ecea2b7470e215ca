// Package loop runs a puzzle engine on its own goroutine. The timer and the
// player's commands both reach the engine through one select loop, so a lock
// and its line clear always finish before the next command is looked at.
package loop

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpuzzle/internal/games/blockpuzzle"
)

// View is what observers see after every state change.
type View struct {
	blockpuzzle.Snapshot
	Paused bool
}

// Options configures a Runner.
type Options struct {
	Width        int
	Height       int
	FallInterval time.Duration
	Rand         blockpuzzle.Rand

	// Ticker overrides the FallInterval ticker.
	Ticker Ticker

	// Logger receives lock and game-over events. Nil discards them.
	Logger *log.Logger
}

type requestKind int

const (
	requestCommand requestKind = iota
	requestReset
	requestPause
)

type request struct {
	kind requestKind
	cmd  blockpuzzle.Command
}

// Runner owns an engine and the goroutine that mutates it.
type Runner struct {
	engine *blockpuzzle.Engine
	ticker Ticker
	logger *log.Logger
	paused bool // loop goroutine only

	requests chan request
	updates  chan View
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Start creates the engine and launches the loop. The loop runs until ctx is
// cancelled or Stop is called. The initial view is published immediately.
func Start(ctx context.Context, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ticker := opts.Ticker
	if ticker == nil {
		ticker = NewTicker(opts.FallInterval)
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &Runner{
		engine:   blockpuzzle.NewEngine(opts.Width, opts.Height, opts.Rand),
		ticker:   ticker,
		logger:   logger,
		requests: make(chan request),
		updates:  make(chan View, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	r.engine.OnLock = r.logLock

	go r.run(ctx)
	return r
}

// Updates returns the view channel. Only the most recent view is kept; the
// channel is closed when the loop exits.
func (r *Runner) Updates() <-chan View {
	return r.updates
}

// Send queues a player command. It is a no-op once the runner has stopped.
func (r *Runner) Send(cmd blockpuzzle.Command) {
	r.request(request{kind: requestCommand, cmd: cmd})
}

// Reset starts a new game.
func (r *Runner) Reset() {
	r.request(request{kind: requestReset})
}

// TogglePause suspends or resumes ticks and commands.
func (r *Runner) TogglePause() {
	r.request(request{kind: requestPause})
}

// Stop ends the loop, stops the ticker, and waits for the goroutine to exit.
// No tick is processed after Stop returns. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(r.cancel)
	<-r.done
}

// Done is closed when the loop has exited.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) request(req request) {
	select {
	case r.requests <- req:
	case <-r.done:
	}
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)
	defer close(r.updates)
	defer r.ticker.Stop()

	r.publish()
	for {
		select {
		case <-ctx.Done():
			return

		case <-r.ticker.C():
			// select picks randomly among ready cases
			if ctx.Err() != nil {
				return
			}
			if r.paused {
				continue
			}
			r.engine.Tick()

		case req := <-r.requests:
			r.apply(req)
		}
		r.publish()
	}
}

func (r *Runner) apply(req request) {
	switch req.kind {
	case requestReset:
		r.paused = false
		r.engine.Reset()
		r.logger.Debug("game reset")
	case requestPause:
		if r.engine.IsGameOver() {
			return
		}
		r.paused = !r.paused
	case requestCommand:
		if r.paused {
			return
		}
		r.engine.OnCommand(req.cmd)
	}
}

// publish replaces any unread view with the current one.
func (r *Runner) publish() {
	v := View{Snapshot: r.engine.Snapshot(), Paused: r.paused}
	select {
	case <-r.updates:
	default:
	}
	r.updates <- v
}

func (r *Runner) logLock(ev blockpuzzle.LockEvent) {
	if ev.Lines > 0 {
		r.logger.Debug("lines cleared", "lines", ev.Lines, "points", ev.ScoreDelta, "score", r.engine.Score())
	}
	if ev.GameOver {
		r.logger.Info("game over", "score", r.engine.Score(), "lines", r.engine.Lines())
	}
}
