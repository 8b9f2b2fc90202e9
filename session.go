package jigsaw

import (
	"context"
	"image"
	"sync"
	"time"
)

// Session owns the live piece collection of one active puzzle and is
// the runtime surface the interaction layer talks to. All state
// transitions (position update, placed flag, solved flag) happen
// atomically per call, so no intermediate state is observable.
//
// A Session is safe for concurrent use, although the intended model is
// a single interaction thread with generation possibly running in the
// background.
type Session struct {
	mu       sync.Mutex
	puzzle   *Puzzle
	byID     map[string]*Piece
	solved   bool
	solvedAt time.Time
	onSolved func(time.Time)

	// gen counts generation requests; a finished run is applied only
	// if no newer request has started since (last-request-wins).
	gen uint64
}

// NewSession creates a session with no puzzle. Call Regenerate before
// evaluating placements.
func NewSession() *Session {
	return &Session{}
}

// OnSolved registers a callback fired exactly once per generation run,
// when the last piece is placed. The callback runs on the goroutine
// that placed the final piece, outside the session lock.
func (s *Session) OnSolved(fn func(completedAt time.Time)) {
	s.mu.Lock()
	s.onSolved = fn
	s.mu.Unlock()
}

// Regenerate discards the current puzzle and generates a new one from
// the image and configuration. It is cancelable through ctx and
// implements last-request-wins: if another Regenerate call starts while
// this one is generating, the stale result is discarded and
// ErrStaleGeneration returned. A failed generation leaves the
// previously displayed puzzle untouched.
//
// On success it returns a snapshot of the new piece collection.
func (s *Session) Regenerate(ctx context.Context, src image.Image, cfg Config, opts ...Option) ([]*Piece, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	pz, err := Generate(ctx, src, cfg, opts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		Logger().Warn("stale generation discarded", "generation", gen)
		return nil, ErrStaleGeneration
	}
	s.puzzle = pz
	s.byID = make(map[string]*Piece, len(pz.Pieces))
	for _, p := range pz.Pieces {
		s.byID[p.ID()] = p
	}
	s.solved = false
	s.solvedAt = time.Time{}

	// An unshuffled puzzle is born solved.
	fire := s.checkSolvedLocked()
	snap := s.piecesLocked()
	s.mu.Unlock()

	if fire != nil {
		fire()
	}
	return snap, nil
}

// EvaluatePlacement applies a proposed position to the identified piece:
// within the snap threshold of its correct position the piece snaps
// onto it and is marked placed, otherwise the proposed position stands.
// Position and placed flag update together as one transition.
//
// Returns a snapshot of the updated piece.
func (s *Session) EvaluatePlacement(id string, proposed Point) (*Piece, error) {
	s.mu.Lock()
	if s.puzzle == nil {
		s.mu.Unlock()
		return nil, ErrNoPuzzle
	}
	p, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownPiece
	}

	res := EvaluatePlacement(p, proposed, s.puzzle.SnapThreshold)
	p.Current = res.Position
	p.Placed = res.Placed

	var fire func()
	if res.Placed {
		fire = s.checkSolvedLocked()
	}
	snap := p.clone()
	s.mu.Unlock()

	if fire != nil {
		fire()
	}
	return snap, nil
}

// Solved reports whether the active puzzle has been completed. The flag
// transitions forward exactly once per generation run and never
// reverts, even if a placed piece is later dragged away.
func (s *Session) Solved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved
}

// SolvedTime returns when the puzzle was completed, or the zero time if
// it has not been.
func (s *Session) SolvedTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solvedAt
}

// Pieces returns a snapshot of the active piece collection in its
// current order, or nil if no puzzle has been generated.
func (s *Session) Pieces() []*Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.piecesLocked()
}

// Piece returns a snapshot of one piece by id.
func (s *Session) Piece(id string) (*Piece, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.puzzle == nil {
		return nil, ErrNoPuzzle
	}
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrUnknownPiece
	}
	return p.clone(), nil
}

// Puzzle returns the active puzzle's geometry, or nil before the first
// successful generation. The returned value shares the live pieces;
// callers must treat it as read-only.
func (s *Session) Puzzle() *Puzzle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puzzle
}

func (s *Session) piecesLocked() []*Piece {
	if s.puzzle == nil {
		return nil
	}
	out := make([]*Piece, len(s.puzzle.Pieces))
	for i, p := range s.puzzle.Pieces {
		out[i] = p.clone()
	}
	return out
}

// checkSolvedLocked performs the completion transition if every piece
// is placed and the puzzle was not already solved. It returns the
// callback to fire after the lock is released, or nil. Idempotent: once
// solved, further checks never re-trigger.
func (s *Session) checkSolvedLocked() func() {
	if s.solved || s.puzzle == nil || len(s.puzzle.Pieces) == 0 {
		return nil
	}
	for _, p := range s.puzzle.Pieces {
		if !p.Placed {
			return nil
		}
	}
	s.solved = true
	s.solvedAt = time.Now()
	Logger().Info("puzzle solved", "pieces", len(s.puzzle.Pieces))

	if s.onSolved == nil {
		return nil
	}
	fn := s.onSolved
	at := s.solvedAt
	return func() { fn(at) }
}
