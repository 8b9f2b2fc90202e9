// Command jigsaw-play is an interactive jigsaw demo. Pieces are
// scattered over the window; drag them with the mouse. A piece dropped
// close enough to its home snaps into place, and the title bar reports
// when the puzzle is solved.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gopuzzle/jigsaw"
)

func main() {
	var (
		input      = flag.String("image", "", "source image (PNG or JPEG)")
		difficulty = flag.String("difficulty", "easy", "easy, medium, or hard")
		pieces     = flag.Int("pieces", 0, "custom piece count (overrides difficulty)")
		seed       = flag.Int64("seed", 0, "random seed (0 = from the clock)")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", *input, err)
	}

	diff, err := jigsaw.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}

	g, err := newGame(src, jigsaw.Config{
		Difficulty: diff,
		PieceCount: *pieces,
		Shuffle:    true,
	}, *seed)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("jigsaw")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// game adapts a jigsaw.Session to the ebiten game loop. The session
// owns all placement state; the game only handles drag plumbing and
// rendering.
type game struct {
	session *jigsaw.Session
	width   int
	height  int

	sprites map[string]*ebiten.Image
	order   []string // draw order, last on top

	dragID  string
	dragPos jigsaw.Point
	grabOff jigsaw.Point
}

func newGame(src image.Image, cfg jigsaw.Config, seed int64) (*game, error) {
	opts := []jigsaw.Option{}
	if seed != 0 {
		opts = append(opts, jigsaw.WithSeed(seed))
	}

	s := jigsaw.NewSession()
	pieces, err := s.Regenerate(context.Background(), src, cfg, opts...)
	if err != nil {
		return nil, err
	}
	pz := s.Puzzle()
	g := &game{
		session: s,
		width:   pz.CanvasWidth,
		height:  pz.CanvasHeight,
		sprites: make(map[string]*ebiten.Image, len(pieces)),
	}
	for _, p := range pieces {
		g.sprites[p.ID()] = ebiten.NewImageFromImage(p.Image)
		g.order = append(g.order, p.ID())
	}
	return g, nil
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	cursor := jigsaw.Pt(float64(x), float64(y))

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.dragID == "":
		g.grab(cursor)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.dragID != "":
		g.dragPos = cursor.Sub(g.grabOff)
	case g.dragID != "":
		// Button released: hand the final position to the evaluator.
		if _, err := g.session.EvaluatePlacement(g.dragID, g.dragPos); err != nil {
			return err
		}
		g.dragID = ""
	}

	if g.session.Solved() {
		ebiten.SetWindowTitle(fmt.Sprintf("jigsaw — solved at %s",
			g.session.SolvedTime().Format("15:04:05")))
	}
	return nil
}

// grab picks the topmost piece under the cursor and starts a drag.
func (g *game) grab(cursor jigsaw.Point) {
	for i := len(g.order) - 1; i >= 0; i-- {
		id := g.order[i]
		p, err := g.session.Piece(id)
		if err != nil {
			continue
		}
		within := cursor.X >= p.Current.X && cursor.X < p.Current.X+float64(p.Width) &&
			cursor.Y >= p.Current.Y && cursor.Y < p.Current.Y+float64(p.Height)
		if !within {
			continue
		}
		g.dragID = id
		g.dragPos = p.Current
		g.grabOff = cursor.Sub(p.Current)
		// Raise the grabbed piece to the top of the draw order.
		g.order = append(append(g.order[:i:i], g.order[i+1:]...), id)
		return
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	for _, id := range g.order {
		p, err := g.session.Piece(id)
		if err != nil {
			continue
		}
		pos := p.Current
		if id == g.dragID {
			pos = g.dragPos
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(g.sprites[id], op)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
