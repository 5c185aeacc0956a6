package game

import (
	"image/color"

	"github.com/vovakirdan/copybird/internal/core"
)

// Particle burst parameters. The bounds are part of the visual contract.
const (
	ParticleBurstSize = 30
	ParticleOriginY   = 60.0

	particleMinVX, particleMaxVX       = -100.0, 100.0
	particleMinVY, particleMaxVY       = -300.0, -10.0
	particleMaxRotation                = 360.0
	particleMinSpin, particleMaxSpin   = -360.0, 360.0
	particleMinScale, particleMaxScale = 0.5, 1.0
	particleMinChannel                 = 150
	particleMaxChannel                 = 255
)

// particleBurst spawns a fountain of pastel particles under the score.
// Random draws per particle, in order: vx, vy, rotation, spin, scale, r, g, b.
func (e *Engine) particleBurst(s *State) {
	origin := core.Vec(e.cfg.Screen.Width/2, ParticleOriginY)

	for i := 0; i < ParticleBurstSize; i++ {
		s.Particles = append(s.Particles, Particle{
			Pos:                origin,
			Velocity:           core.Vec(e.uniform(particleMinVX, particleMaxVX), e.uniform(particleMinVY, particleMaxVY)),
			Rotation:           e.uniform(0, particleMaxRotation),
			RotationalVelocity: e.uniform(particleMinSpin, particleMaxSpin),
			Scale:              e.uniform(particleMinScale, particleMaxScale),
			Tint: color.RGBA{
				R: e.channel(),
				G: e.channel(),
				B: e.channel(),
				A: 255,
			},
		})
	}
}

// channel returns a colour channel in [particleMinChannel, particleMaxChannel].
func (e *Engine) channel() uint8 {
	span := float64(particleMaxChannel - particleMinChannel + 1)
	v := particleMinChannel + int(e.rng.Float64()*span)
	if v > particleMaxChannel {
		v = particleMaxChannel
	}
	return uint8(v)
}

// updateParticles integrates particle motion and drops particles that fell
// below the screen.
func (e *Engine) updateParticles(s *State, dt float64) {
	gravity := e.cfg.Physics.Gravity
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Velocity = p.Velocity.Add(gravity.Scale(dt))
		p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
		p.Rotation += dt * p.RotationalVelocity
	}

	height := e.cfg.Screen.Height
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Pos.Y < height {
			kept = append(kept, p)
		}
	}
	s.Particles = kept
}
