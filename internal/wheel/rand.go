package wheel

import "github.com/osse101/ChoreWheel_Go/internal/utils"

// Rand is the randomness a spin consumes. *math/rand/v2.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// defaultRand draws from the shared goroutine-safe source
type defaultRand struct{}

func (defaultRand) Float64() float64 { return utils.RandomFloat() }

func (defaultRand) IntN(n int) int { return utils.RandomInt(0, n-1) }
