package theme

import "github.com/vovakirdan/copybird/internal/core"

// The kookaburra is a little bigger than the classic bird.
func init() {
	Register(Theme{
		ID:    "aussie",
		Title: "Aussie",
		Frames: map[string]string{
			"player1": " ,_\n(K>=",
			"player2": " ,_\n(K>-",
			"player3": "\n(K>_",
		},
		PlayerColor:  "#d7af87",
		DeadColor:    core.ColorDead,
		PlayerSize:   core.Vec(38, 28),
		Pipe:         '▒',
		PipeColor:    "#af5f00",
		PipeCap:      '▄',
		PipeCapColor: "#d78700",
		Particle:     '♦',
		SkyColor:     "#ffd787",
		Ground:       "≈~",
		GroundColor:  "#d75f00",
	})
}
