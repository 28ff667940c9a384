package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/hillrider/internal/core"
)

// keyBindings lists the keys that hold each action. Window keyboards report
// real releases, so no hold emulation is needed here.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

// frameFrom builds the held-key frame for one tick.
func frameFrom(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if pressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}
