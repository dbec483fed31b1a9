package adapter

import "time"

// Clock supplies the current time. Injected so tests can pin goal creation
// timestamps and forecast horizons.
type Clock interface {
	Now() time.Time
}

// RandomSource supplies pseudo-random integers for cosmetic choices (goal
// colors, congratulatory messages). Injected so tests are deterministic.
type RandomSource interface {
	Intn(n int) int
}
