// Package panzoom is a pan-and-zoom gesture engine for a single visual
// element inside a bounded viewport, such as an image inside a frame.
//
// The engine turns pointer, touch and wheel input into a clamped scale and
// 2D offset per registered target and pushes the result to a [RenderSink].
// It has no platform dependencies. Adapters for [Ebitengine] and [Gio] live
// in the ebitenzoom and giozoom packages; the ecs package forwards engine
// notifications to a [Donburi] world.
//
// # Quick start
//
//	engine := panzoom.NewEngine(panzoom.DefaultConfig(), sink)
//	engine.Register("photo", panzoom.StaticGeometry{
//		Container: panzoom.Rect{X: 0, Y: 0, Width: 640, Height: 480},
//		Element:   panzoom.Size{Width: 640, Height: 480},
//	})
//	engine.OnActivationChange(func(t *panzoom.Target, active bool) {
//		log.Printf("%s zoomed: %v", t.ID(), active)
//	})
//	// For every input event:
//	engine.Handle(ev)
//
// # Gestures
//
// A mouse press or single touch starts a drag that pans the element within
// its limits. Two fingers pinch-zoom around their midpoint. The wheel steps
// the scale by [Config.ScaleDifference] around the cursor. A double click or
// double tap toggles between the identity transform and
// [Config.ScaleDefault], with a transition hint for sinks implementing
// [TransitionSink].
//
// # Offsets
//
// Offsets are measured from the centered position of the element. On an axis
// where the scaled element fits its container the offset is always 0;
// otherwise it is bounded by [LimitOffset].
//
// # Scripts
//
// [LoadScript] parses a JSON gesture script that declares targets and replays
// input on a virtual clock, with expect steps asserting the resulting
// transform. The panzoom command's replay subcommand runs such scripts.
//
// [Ebitengine]: https://ebitengine.org
// [Gio]: https://gioui.org
// [Donburi]: https://github.com/yohamta/donburi
package panzoom
