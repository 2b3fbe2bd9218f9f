package core

// Color is the foreground of a screen cell. The low bits select a palette
// entry; the Bold bit may be or-ed onto any of them.
type Color uint8

// Palette. ColorDefault leaves the terminal color alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	paletteSize
)

// Bold marks a color as drawn in bold.
const Bold Color = 0x80

// Base returns the palette entry without attributes.
func (c Color) Base() Color {
	return c &^ Bold
}

// IsBold reports whether the Bold bit is set.
func (c Color) IsBold() bool {
	return c&Bold != 0
}

// PaletteSize is the number of palette entries.
func PaletteSize() int {
	return int(paletteSize)
}
