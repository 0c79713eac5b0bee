package cmd

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
	"github.com/phanxgames/panzoom/giozoom"
)

var gioCmd = &cobra.Command{
	Use:   "gio [image]",
	Short: "Open an image in the Gio viewer",
	Long: `Open a PNG or JPEG image, or a built-in checkerboard, in a Gio window
that fills the whole window with the image frame.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGio,
}

func init() {
	rootCmd.AddCommand(gioCmd)
}

func runGio(cmd *cobra.Command, args []string) error {
	img, name, err := loadImage(args)
	if err != nil {
		return err
	}
	cfg, err := effectiveConfig(cmd, panzoom.DefaultConfig())
	if err != nil {
		return err
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("panzoom (Gio) - " + name))
		w.Option(app.Size(unit.Dp(float32(viewWidth)), unit.Dp(float32(viewHeight))))
		if err := runGioWindow(w, cfg, img); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runGioWindow(w *app.Window, cfg panzoom.Config, img image.Image) error {
	sink := giozoom.NewSink()
	sink.Invalidate = w.Invalidate
	engine := panzoom.NewEngine(cfg, sink)
	engine.SetDebugMode(verbose)
	tr := giozoom.NewTranslator(engine)

	var size image.Point
	imgSize := imageSize(img)
	geom := panzoom.GeometryFunc(func() (panzoom.Rect, panzoom.Size) {
		c := panzoom.Rect{Width: float64(size.X), Height: float64(size.Y)}
		return c, fitSize(imgSize, c.Size())
	})
	engine.Register(targetID, geom)

	imgOp := paint.NewImageOp(img)
	bounds := img.Bounds().Size()
	var tag int
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if e.Size != size {
				resized := size != (image.Point{})
				size = e.Size
				if resized {
					engine.Resize()
				}
			}

			for {
				ev, ok := gtx.Event(giozoom.Filter(&tag))
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok {
					tr.Handle(targetID, pe)
				}
			}

			paint.Fill(gtx.Ops, color.NRGBA{R: 24, G: 24, B: 28, A: 255})

			area := clip.Rect{Max: size}.Push(gtx.Ops)
			event.Op(gtx.Ops, &tag)

			c, el := geom.Measure()
			placed := sink.Op(targetID, c, el).Push(gtx.Ops)
			scaled := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(
				float32(el.Width)/float32(bounds.X),
				float32(el.Height)/float32(bounds.Y),
			))).Push(gtx.Ops)
			content := clip.Rect{Max: bounds}.Push(gtx.Ops)
			imgOp.Filter = paint.FilterLinear
			imgOp.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			content.Pop()
			scaled.Pop()
			placed.Pop()

			area.Pop()
			e.Frame(gtx.Ops)
		}
	}
}
