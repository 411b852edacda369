package corridor

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var routerStateNames = [...]string{"idle", "dragging", "modal"}

// drawHUD prints frame rate and navigation stats in the top-left corner.
// Enabled via SetDebugHUD; uses ebitenutil.DebugPrint for rendering.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	hand := "none"
	if s.gesture.Detected {
		hand = fmt.Sprintf("y=%.2f pinch=%v", s.gesture.Vertical, s.gesture.Pinching)
	} else if !s.GesturesAvailable() {
		hand = "unavailable"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nDepth: %.1f (visual %.1f)\nState: %s\nHand: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.cam.Depth(), s.cam.VisualDepth(),
		routerStateNames[s.router.State()], hand))
}
