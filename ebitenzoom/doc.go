// Package ebitenzoom connects a [panzoom.Engine] to an [Ebitengine] game.
//
// [Input] polls the mouse, wheel and touch state once per tick and feeds
// normalized events to the engine. [Sink] is a render sink that animates
// transitions with gween tweens and draws each target's image clipped to its
// container.
//
//	sink := ebitenzoom.NewSink()
//	engine := panzoom.NewEngine(panzoom.DefaultConfig(), sink)
//	engine.Register("photo", geom)
//	sink.Add("photo", img, geom)
//	input := ebitenzoom.NewInput(engine)
//
//	func (g *Game) Update() error {
//		input.Update()
//		sink.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		sink.Draw(screen)
//	}
//
//	func (g *Game) Layout(w, h int) (int, int) {
//		input.Layout(w, h)
//		return w, h
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenzoom
