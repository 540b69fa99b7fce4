package utils

import (
	"math/rand"
	"time"
)

// RandomDelay sleeps for a random duration between min and max.
// Pass time.Duration values like: RandomDelay(1*time.Second, 3*time.Second)
// A zero or negative range is a no-op, so the delay can be disabled
// entirely from config.
//
// WHY RANDOM? Fixed delays are detectable patterns.
func RandomDelay(min, max time.Duration) {
	diff := max - min
	if diff <= 0 {
		return
	}
	sleep := min + time.Duration(rand.Int63n(int64(diff)))
	time.Sleep(sleep)
}
