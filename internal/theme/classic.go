package theme

import "github.com/vovakirdan/copybird/internal/core"

func init() {
	Register(Theme{
		ID:    "classic",
		Title: "Classic",
		Frames: map[string]string{
			"player1": " __\n<o\\>",
			"player2": " __\n<o->",
			"player3": "\n<o/>",
		},
		PlayerColor:  core.ColorPlayer,
		DeadColor:    core.ColorDead,
		Pipe:         '█',
		PipeColor:    core.ColorPipe,
		PipeCap:      '▀',
		PipeCapColor: core.ColorPipeCap,
		Particle:     '*',
		SkyColor:     core.ColorSky,
		Ground:       "▓▒░▒",
		GroundColor:  core.ColorGround,
	})
}
