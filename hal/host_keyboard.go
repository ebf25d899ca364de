//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var ebitenKeys = [keyCount]ebiten.Key{
	KeyUp:        ebiten.KeyArrowUp,
	KeyDown:      ebiten.KeyArrowDown,
	KeyLeft:      ebiten.KeyArrowLeft,
	KeyRight:     ebiten.KeyArrowRight,
	KeyEnter:     ebiten.KeyEnter,
	KeyEscape:    ebiten.KeyEscape,
	KeyBackspace: ebiten.KeyBackspace,
	KeyTab:       ebiten.KeyTab,
	KeyDelete:    ebiten.KeyDelete,
	KeyHome:      ebiten.KeyHome,
	KeyEnd:       ebiten.KeyEnd,
	KeyF1:        ebiten.KeyF1,
	KeyF2:        ebiten.KeyF2,
	KeyF3:        ebiten.KeyF3,
}

type hostKeyboard struct{}

// KeyState samples every mapped key. Only valid while the game loop runs.
func (hostKeyboard) KeyState() KeyState {
	var s KeyState
	for code := KeyUp; code < keyCount; code++ {
		s[code] = ebiten.IsKeyPressed(ebitenKeys[code])
	}
	return s
}
