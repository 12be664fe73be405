package tui

import (
	"path"
	"strings"

	"github.com/vovakirdan/ball/internal/core"
)

// SpriteSheet resolves sprite paths to coloured glyphs. Lookups use the
// file name, so "sprites/star.png" and "assets/star.png" draw the same.
type SpriteSheet struct {
	glyphs   map[string]core.Sprite
	fallback core.Sprite
}

// NewSpriteSheet returns the sheet for the bundled sprite names.
func NewSpriteSheet() *SpriteSheet {
	return &SpriteSheet{
		glyphs: map[string]core.Sprite{
			"ball_blue_large": {Rune: '●', Color: core.ColorBrightBlue},
			"ball_red_large":  {Rune: '●', Color: core.ColorBrightRed},
			"star":            {Rune: '★', Color: core.ColorBrightYellow},
		},
		fallback: core.Sprite{Rune: '?', Color: core.ColorGray},
	}
}

// LoadSprite implements ball.SpriteLoader.
func (s *SpriteSheet) LoadSprite(p string) core.Sprite {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if sprite, ok := s.glyphs[name]; ok {
		return sprite
	}
	return s.fallback
}
