package jigsaw

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by generation and session operations.
var (
	// ErrPieceCount indicates a requested piece count outside
	// [MinPieceCount, MaxPieceCount].
	ErrPieceCount = errors.New("jigsaw: piece count out of range")

	// ErrSourceImage indicates a nil or empty source image.
	ErrSourceImage = errors.New("jigsaw: source image unusable")

	// ErrCanvasSize indicates a canvas too small to hold the largest
	// rendered piece.
	ErrCanvasSize = errors.New("jigsaw: canvas smaller than largest piece")

	// ErrUnknownPiece indicates a piece id not present in the active
	// collection.
	ErrUnknownPiece = errors.New("jigsaw: unknown piece id")

	// ErrNoPuzzle indicates a session operation before any successful
	// generation.
	ErrNoPuzzle = errors.New("jigsaw: no puzzle generated")

	// ErrStaleGeneration indicates a generation run superseded by a
	// newer request before its result could be applied.
	ErrStaleGeneration = errors.New("jigsaw: generation superseded")
)

// Difficulty selects a preset piece count.
type Difficulty int

const (
	Easy   Difficulty = iota // 12 pieces
	Medium                   // 48 pieces
	Hard                     // 120 pieces
)

// PieceCount returns the preset piece count for the difficulty.
func (d Difficulty) PieceCount() int {
	switch d {
	case Easy:
		return 12
	case Medium:
		return 48
	case Hard:
		return 120
	default:
		return 48
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("jigsaw: unknown difficulty %q", s)
	}
}

// Config describes one puzzle generation request.
type Config struct {
	// Difficulty selects a preset piece count. Ignored when PieceCount
	// is non-zero.
	Difficulty Difficulty

	// PieceCount is a custom target piece count in
	// [MinPieceCount, MaxPieceCount]. Zero means use Difficulty.
	PieceCount int

	// Shuffle scatters pieces over the canvas after generation. When
	// false every piece starts at its correct position, already placed.
	Shuffle bool
}

// TargetPieceCount returns the piece count the grid planner will aim
// for. The generated puzzle may hold more pieces (rows*cols rounds up),
// never fewer.
func (c Config) TargetPieceCount() int {
	if c.PieceCount != 0 {
		return c.PieceCount
	}
	return c.Difficulty.PieceCount()
}

// Validate rejects configurations outside the supported range. It must
// pass before Generate is invoked; generation does not re-check.
func (c Config) Validate() error {
	n := c.TargetPieceCount()
	if n < MinPieceCount || n > MaxPieceCount {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPieceCount, n, MinPieceCount, MaxPieceCount)
	}
	return nil
}
