package core

// Color is the foreground colour of a screen cell as a "#rrggbb" hex string.
// The zero value means the terminal's default colour.
type Color string

// Palette used by the presentation layer.
const (
	ColorDefault  Color = ""
	ColorSky      Color = "#87afd7"
	ColorGround   Color = "#af875f"
	ColorGrass    Color = "#5faf5f"
	ColorPipe     Color = "#00af00"
	ColorPipeCap  Color = "#5fd75f"
	ColorPlayer   Color = "#ffd75f"
	ColorScore    Color = "#ffffff"
	ColorLabel    Color = "#bcbcbc"
	ColorDebugOK  Color = "#00ff00"
	ColorDebugHit Color = "#ff0000"
	ColorStatus   Color = "#ffaf00"
	ColorDead     Color = "#ff5f5f"
)
