// Package corridor is a depth-navigation engine for [Ebitengine]: an
// "infinite tunnel" gallery where cards float in a simulated 3D depth field,
// navigable by pointer drag, mouse wheel, or hand-gesture tracking, with a
// pinch gesture selecting the card nearest the viewer.
//
// # Quick start
//
// Generate placements, build a scene, and drive it from an [ebiten.Game]:
//
//	items := corridor.GenerateItems(corridor.DefaultLayout, 40)
//	scene := corridor.NewScene(items)
//	scene.OnSelect(func(item *corridor.Item) { /* open overlay */ })
//
//	type Game struct{ scene *corridor.Scene }
//
//	func (g *Game) Update() error              { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Depth model
//
// Each [Item] carries an immutable [Placement] assigned once by [Layout].
// The single navigation scalar lives in [DepthCamera]: pointer drag, wheel,
// and gesture velocity all converge on it, and [Projection.Project] maps
// every item's static depth plus the current camera depth into the visual
// attributes (opacity, scale, blur) drawn each frame.
//
// # Gestures
//
// Hand tracking is pluggable through [HandSource]. A [Tracker] runs the
// capture loop on its own goroutine and publishes the latest landmark frame
// to the render loop; [Interpreter] turns frames into a vertical steering
// signal and edge-triggered pinch events. If the source fails to initialize
// the scene silently degrades to pointer and wheel input.
//
// [Ebitengine]: https://ebitengine.org
package corridor
