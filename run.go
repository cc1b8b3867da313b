package blit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run game loop.
type RunConfig struct {
	Title   string
	Width   int // window width; 0 means the default scene's width
	Height  int // window height; 0 means the default scene's height
	ShowFPS bool

	// OnUpdate is called once per tick before the frame is rendered.
	// Returning a non-nil error stops the loop and is returned from Run.
	OnUpdate func(dt float64) error
}

// Run opens an ebiten window and displays the world's default scene,
// rendering it every frame. It blocks until the window is closed or OnUpdate
// returns an error. This is display glue around the rasterizer core: the
// frame is produced entirely on the CPU and uploaded as a texture.
func Run(w *World, cfg RunConfig) error {
	width, height, _ := w.SceneSize(DefaultScene)
	if cfg.Width == 0 {
		cfg.Width = width
	}
	if cfg.Height == 0 {
		cfg.Height = height
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	return ebiten.RunGame(&game{world: w, cfg: cfg})
}

// game adapts a World to ebiten.Game.
type game struct {
	world   *World
	cfg     RunConfig
	frame   *ebiten.Image
	upload  []byte
	frameW  int
	frameH  int
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		dt := 1.0 / float64(ebiten.TPS())
		if err := g.cfg.OnUpdate(dt); err != nil {
			return fmt.Errorf("blit: update callback: %w", err)
		}
	}
	g.world.Render()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	width, height, ok := g.world.SceneSize(DefaultScene)
	if !ok {
		return
	}
	if g.frame == nil || g.frameW != width || g.frameH != height {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(width, height)
		g.upload = make([]byte, width*height*4)
		g.frameW = width
		g.frameH = height
	}

	// The scene buffer is straight alpha; ebiten wants premultiplied.
	src := g.world.Frame()
	for i := 0; i < len(src); i += 4 {
		a := uint32(src[i+3])
		g.upload[i] = uint8(uint32(src[i]) * a / 255)
		g.upload[i+1] = uint8(uint32(src[i+1]) * a / 255)
		g.upload[i+2] = uint8(uint32(src[i+2]) * a / 255)
		g.upload[i+3] = src[i+3]
	}
	g.frame.WritePixels(g.upload)
	screen.DrawImage(g.frame, nil)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height, _ := g.world.SceneSize(DefaultScene)
	return width, height
}
