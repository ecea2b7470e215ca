package blockpuzzle

import (
	"github.com/vovakirdan/blockpuzzle/internal/core"
)

// Phase is the engine's position in the spawn/fall/lock cycle.
type Phase int

const (
	PhaseSpawning Phase = iota // no falling piece, one is about to be drawn
	PhaseFalling               // a piece is live
	PhaseLocking               // merging the landed piece; never visible between calls
	PhaseGameOver              // terminal until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a player instruction for the falling piece.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	MoveDown
	Rotate
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	case Rotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// CommandForAction maps a platform action to an engine command.
func CommandForAction(a core.Action) (Command, bool) {
	switch a {
	case core.ActionLeft:
		return MoveLeft, true
	case core.ActionRight:
		return MoveRight, true
	case core.ActionDown:
		return MoveDown, true
	case core.ActionRotate:
		return Rotate, true
	default:
		return 0, false
	}
}

// LockEvent describes the outcome of a lock.
type LockEvent struct {
	Lines      int  // rows cleared by this lock
	ScoreDelta int  // points earned by this lock
	GameOver   bool // the follow-up spawn failed
}

// Engine is the game state. It is not safe for concurrent use; callers
// serialize all access (see the loop package).
type Engine struct {
	width  int
	height int
	rng    Rand

	grid    Grid
	current Piece
	phase   Phase
	score   int
	lines   int
	ticks   uint64

	// OnLock, when set, is called after every lock.
	OnLock func(LockEvent)
}

// NewEngine creates an engine with an empty width×height grid and spawns the
// first piece.
func NewEngine(width, height int, rng Rand) *Engine {
	if rng == nil {
		panic("blockpuzzle: nil random source")
	}
	e := &Engine{
		width:  width,
		height: height,
		rng:    rng,
	}
	e.Reset()
	return e
}

// Reset clears the grid and score and starts a new game.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.width, e.height)
	e.current = Piece{}
	e.score = 0
	e.lines = 0
	e.ticks = 0
	e.phase = PhaseSpawning
	e.spawn()
}

// Tick performs one automatic descent. It is a no-op after game over.
// A blocked descent locks the piece and spawns the next one.
func (e *Engine) Tick() {
	if e.phase != PhaseFalling {
		return
	}
	e.ticks++
	e.moveDown()
}

// OnCommand applies a player command. Commands are ignored after game over
// and while a lock is in progress.
func (e *Engine) OnCommand(cmd Command) {
	if e.phase != PhaseFalling {
		return
	}
	switch cmd {
	case MoveLeft:
		e.try(e.current.Moved(-1, 0))
	case MoveRight:
		e.try(e.current.Moved(1, 0))
	case MoveDown:
		e.moveDown()
	case Rotate:
		e.try(e.current.Rotated())
	}
}

// try accepts the candidate if it is valid; otherwise the piece stays put.
func (e *Engine) try(candidate Piece) bool {
	if !IsValid(candidate, e.grid) {
		return false
	}
	e.current = candidate
	return true
}

// moveDown descends one row or, when blocked, locks and spawns the next piece.
func (e *Engine) moveDown() {
	if e.try(e.current.Moved(0, 1)) {
		return
	}
	ev := e.lock()
	e.spawn()
	ev.GameOver = e.phase == PhaseGameOver
	if e.OnLock != nil {
		e.OnLock(ev)
	}
}

// lock merges the falling piece into the grid and leaves the engine with no
// piece. Lock, clear and scoring complete before any other command is seen.
func (e *Engine) lock() LockEvent {
	if e.phase != PhaseFalling {
		panic("blockpuzzle: lock without a falling piece")
	}
	e.phase = PhaseLocking

	grid, lines, delta := Lock(e.current, e.grid)
	e.grid = grid
	e.lines += lines
	e.score += delta

	e.current = Piece{}
	e.phase = PhaseSpawning
	return LockEvent{Lines: lines, ScoreDelta: delta}
}

// spawn draws the next piece, or ends the game when it does not fit.
func (e *Engine) spawn() {
	shape, color := RandomShape(e.rng)
	p := SpawnPiece(shape, color, e.width)
	if !IsValid(p, e.grid) {
		e.phase = PhaseGameOver
		return
	}
	e.current = p
	e.phase = PhaseFalling
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool { return e.phase == PhaseGameOver }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// Ticks returns the number of automatic descents processed since Reset.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Grid returns the committed grid, without the falling piece.
func (e *Engine) Grid() Grid { return e.grid }

// Current returns the falling piece, if any.
func (e *Engine) Current() (Piece, bool) {
	if e.phase != PhaseFalling {
		return Piece{}, false
	}
	return e.current, true
}

// VisibleGrid returns the committed grid overlaid with the falling piece's
// on-screen cells. The result is a fresh copy.
func (e *Engine) VisibleGrid() [][]core.Color {
	rows := e.grid.Rows()
	if p, ok := e.Current(); ok {
		for _, b := range p.Blocks() {
			if b.Y >= 0 {
				rows[b.Y][b.X] = b.Color
			}
		}
	}
	return rows
}
