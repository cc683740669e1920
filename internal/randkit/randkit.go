// Package randkit provides the randomized helpers: a blocking delay with
// uniform jitter and uniform integer point sampling inside a rectangle.
package randkit

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"powertools/internal/logging"
)

// ErrInvalidBox reports a rectangle whose truncated bounds are inverted.
var ErrInvalidBox = errors.New("invalid boundary box")

// Point is an integer coordinate pair.
type Point struct {
	X int
	Y int
}

// TimedDelay blocks the calling goroutine for wait seconds plus a uniformly
// random extra delay between the two jitter bounds. Negative inputs clamp to
// zero and the bounds are sorted, so argument order does not matter. The
// total delay is logged before sleeping. There is no cancellation; callers
// own the full duration.
func TimedDelay(log *slog.Logger, wait, jitterLo, jitterHi float64) {
	if log == nil {
		log = logging.NewNop()
	}

	wait = max(0, wait)
	lo, hi := max(0, jitterLo), max(0, jitterHi)
	if lo > hi {
		lo, hi = hi, lo
	}

	total := wait + lo + rand.Float64()*(hi-lo)
	log.Info("waiting", "seconds", fmt.Sprintf("%.2f", total))
	time.Sleep(time.Duration(total * float64(time.Second)))
}

// PointInBox returns a uniformly random integer point within the rectangle
// anchored at (x, y) with height h and width w. With centered set, (x, y) is
// the rectangle's center instead of its corner. Coordinates are truncated to
// integers first; a box whose truncated min exceeds its max on either axis
// is rejected with ErrInvalidBox.
func PointInBox(x, y, h, w float64, centered bool) (Point, error) {
	var xMin, xMax, yMin, yMax int
	if centered {
		xMin, xMax = int(x-w/2), int(x+w/2)
		yMin, yMax = int(y-h/2), int(y+h/2)
	} else {
		xMin, xMax = int(x), int(x+w)
		yMin, yMax = int(y), int(y+h)
	}

	if xMin > xMax || yMin > yMax {
		return Point{}, fmt.Errorf("%w: (%v, %v, %v, %v): height and width must be positive", ErrInvalidBox, x, y, h, w)
	}

	return Point{
		X: xMin + rand.IntN(xMax-xMin+1),
		Y: yMin + rand.IntN(yMax-yMin+1),
	}, nil
}
