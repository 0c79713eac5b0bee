package cmd

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
	"github.com/phanxgames/panzoom/ebitenzoom"
)

const targetID = "image"

var (
	viewWidth  int
	viewHeight int
	viewMargin float64
	viewHUD    bool
)

var viewCmd = &cobra.Command{
	Use:   "view [image]",
	Short: "Open an image in the Ebitengine viewer",
	Long: `Open a PNG or JPEG image, or a built-in checkerboard, in a resizable
window. Drag to pan, use the wheel to zoom, double click or double tap to
toggle the zoom and pinch with two fingers.

Keys: R resets the view, Esc quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	for _, c := range []*cobra.Command{viewCmd, gioCmd} {
		c.Flags().IntVar(&viewWidth, "width", 960, "window width")
		c.Flags().IntVar(&viewHeight, "height", 720, "window height")
	}
	viewCmd.Flags().Float64Var(&viewMargin, "margin", 24, "space around the image frame")
	viewCmd.Flags().BoolVar(&viewHUD, "hud", true, "show transform and FPS overlay")
}

func runView(cmd *cobra.Command, args []string) error {
	img, name, err := loadImage(args)
	if err != nil {
		return err
	}
	cfg, err := effectiveConfig(cmd, panzoom.DefaultConfig())
	if err != nil {
		return err
	}

	g := newViewGame(cfg, img)
	ebiten.SetWindowSize(viewWidth, viewHeight)
	ebiten.SetWindowTitle("panzoom - " + name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

type viewGame struct {
	engine  *panzoom.Engine
	input   *ebitenzoom.Input
	sink    *ebitenzoom.Sink
	imgSize panzoom.Size
	w, h    int

	hudText    string
	hudElapsed float64
}

func newViewGame(cfg panzoom.Config, img image.Image) *viewGame {
	g := &viewGame{sink: ebitenzoom.NewSink(), imgSize: imageSize(img)}
	g.engine = panzoom.NewEngine(cfg, g.sink)
	g.engine.SetDebugMode(verbose)
	geom := panzoom.GeometryFunc(g.measure)
	g.engine.Register(targetID, geom)
	g.sink.Add(targetID, ebiten.NewImageFromImage(img), geom)
	g.input = ebitenzoom.NewInput(g.engine)

	if verbose {
		g.engine.OnActivationChange(func(t *panzoom.Target, active bool) {
			log.Printf("panzoom: %s active=%v scale=%.2f", t.ID(), active, t.Transform().Scale)
		})
	}
	return g
}

// measure lays the frame out inside the window margin.
func (g *viewGame) measure() (panzoom.Rect, panzoom.Size) {
	c := panzoom.Rect{
		X:      viewMargin,
		Y:      viewMargin,
		Width:  max(float64(g.w)-2*viewMargin, 0),
		Height: max(float64(g.h)-2*viewMargin, 0),
	}
	return c, fitSize(g.imgSize, c.Size())
}

func (g *viewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset(targetID)
	}

	dt := 1.0 / float32(ebiten.TPS())
	g.input.Update()
	g.sink.Update(dt)

	// Refresh the overlay every ~0.5 seconds.
	g.hudElapsed += float64(dt)
	if g.hudText == "" || g.hudElapsed >= 0.5 {
		g.hudElapsed = 0
		g.hudText = g.hud()
	}
	return nil
}

func (g *viewGame) hud() string {
	t := g.sink.Shown(targetID)
	return fmt.Sprintf("scale %.2f  offset (%.0f, %.0f)  active %v  scroll locked %v\nFPS: %.1f  TPS: %.1f",
		t.Scale, t.OffsetX, t.OffsetY, g.sink.Active(targetID), g.sink.ScrollLocked(),
		ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (g *viewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	g.sink.Draw(screen)
	if viewHUD {
		ebitenutil.DebugPrint(screen, g.hudText)
	}
}

func (g *viewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	g.input.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
