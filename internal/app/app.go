//go:build ebiten

package app

import (
	"ca-lab/internal/input"
	"ca-lab/internal/lab"
	"ca-lab/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a lab visual to the ebiten.Game interface: keyboard to the
// decoded controller state, the lab's frame to a scaled window, and its
// overlay lines to screen text.
type Game struct {
	lab     *lab.Lab
	painter *render.GridPainter
	frame   *render.Frame

	scale int
	dt    float64
}

// New constructs a Game for the provided lab.
func New(l *lab.Lab, scale, tps int) *Game {
	size := l.Engine().Size()
	if scale <= 0 {
		scale = 1
	}
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		lab:     l,
		painter: render.NewGridPainter(size.W, size.H),
		frame:   render.NewFrame(size.W, size.H),
		scale:   scale,
		dt:      1.0 / float64(tps),
	}
}

// readInput decodes the keyboard into one frame of controller state. Arrows
// carry press edges; Z and X are the left and right action buttons.
func readInput() input.State {
	return input.State{
		UpPressed:    inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		DownPressed:  inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		LeftPressed:  inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		RightPressed: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		ActionL:      inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ActionR:      inpututil.IsKeyJustPressed(ebiten.KeyX),
		ActionLHeld:  ebiten.IsKeyPressed(ebiten.KeyZ),
		ActionRHeld:  ebiten.IsKeyPressed(ebiten.KeyX),
	}
}

// Update handles per-frame input and advances the lab.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.lab.HandleInput(readInput())
	g.lab.Update(g.dt)
	return nil
}

// Draw renders the lab frame and its overlay text.
func (g *Game) Draw(screen *ebiten.Image) {
	g.lab.Draw(g.frame)
	g.painter.Blit(screen, g.frame, g.scale)

	face := basicfont.Face7x13
	for _, line := range g.lab.Overlay() {
		x := line.X * g.scale
		y := line.Y*g.scale + face.Ascent
		text.Draw(screen, line.Text, face, x, y, line.Color)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.lab.Engine().Size()
	return s.W * g.scale, s.H * g.scale
}
