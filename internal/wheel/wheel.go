// Package wheel implements the randomized-selection engine: the random
// rotation draw and the deterministic mapping from a final rotation angle
// back to the winning segment. The two are kept as separate pure functions
// so the mapping can be tested without any randomness or timing.
package wheel

import (
	"errors"
	"math"
	"math/rand"
)

var (
	// ErrSpinInProgress is returned when a spin is requested while the
	// animation window of a previous spin is still open.
	ErrSpinInProgress = errors.New("a spin is already in progress")

	// ErrEmptyWheel is returned when a spin is requested with no items on
	// the wheel.
	ErrEmptyWheel = errors.New("the wheel has no items")
)

// Draw picks the random components of one spin: the number of full
// rotations in [5, 10) and the final resting angle in [0, 360) degrees.
func Draw(r *rand.Rand) (spins, finalAngle float64) {
	spins = r.Float64()*5 + 5
	finalAngle = r.Float64() * 360
	return spins, finalAngle
}

// ResolveWinnerIndex maps a total accumulated rotation to the index of the
// winning segment. The pointer sits at a fixed visual angle at the top of
// the circle; index 0 starts at the pointer position and segments walk
// clockwise as rotation increases.
//
// An out-of-range index (possible from floating-point edge cases at exact
// segment boundaries) falls back to index 0.
func ResolveWinnerIndex(totalRotation float64, itemCount int) int {
	if itemCount <= 1 {
		return 0
	}
	segmentAngle := 360 / float64(itemCount)
	adjustedAngle := math.Mod(360-math.Mod(totalRotation, 360), 360)
	pointerAngle := math.Mod(adjustedAngle-90+360, 360)
	winnerIndex := int(math.Floor(pointerAngle / segmentAngle))
	if winnerIndex < 0 || winnerIndex >= itemCount {
		return 0
	}
	return winnerIndex
}
