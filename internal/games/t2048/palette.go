package t2048

import (
	"math/bits"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tilePalette holds tile backgrounds for 2, 4, ... 2048.
var tilePalette = [...]core.Color{
	"#EEE4DA", // 2
	"#EDE0C8", // 4
	"#F2B179", // 8
	"#F59563", // 16
	"#F67C5F", // 32
	"#F65E3B", // 64
	"#EDCF72", // 128
	"#EDCC61", // 256
	"#EDC850", // 512
	"#EDC53F", // 1024
	"#EDC22E", // 2048
}

// TileColor returns the background of a tile with the given value.
// Values above 2048 share the 2048 color; non-tiles get the empty cell color.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorEmptyCell
	}
	// log2(value) - 1
	return tilePalette[core.Clamp(bits.Len(uint(value))-2, 0, len(tilePalette)-1)]
}

// TextColor returns the foreground for a tile value.
func TextColor(value int) core.Color {
	if value > 4 {
		return core.ColorTextLight
	}
	return core.ColorTextDark
}
