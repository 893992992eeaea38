package panchangam

import "github.com/vsubramaniam/panchangam/pkg/limbs"

// rahuSlotByWeekday, yamaSlotByWeekday and kuligaiSlotByWeekday identify
// which of the 8 sunrise-sunset eighths
// (1-based) Rahu Kalam, Yama Gandam and Kuligai occupy for each weekday
// (0 = Sunday .. 6 = Saturday).
var rahuSlotByWeekday = [7]int{8, 2, 7, 5, 6, 4, 3}
var yamaSlotByWeekday = [7]int{5, 4, 3, 2, 1, 7, 6}
var kuligaiSlotByWeekday = [7]int{7, 6, 5, 4, 3, 2, 1}

// gowriGoodSegmentsFirstSet reports whether the weekday's good Gowri
// segments are {1,2,5,6}; the remaining weekdays use {3,4,7,8}.
func gowriGoodSegmentsFirstSet(weekday int) bool {
	switch weekday {
	case 0, 2, 4, 6: // Sun, Tue, Thu, Sat
		return true
	default: // Mon, Wed, Fri
		return false
	}
}

// jdSegment is an {start,end} window expressed in Julian Day, before
// zone rendering.
type jdSegment struct {
	StartJD float64
	EndJD   float64
}

// gowriJDSegment additionally carries the good/bad classification and
// planetary label.
type gowriJDSegment struct {
	jdSegment
	Good bool
	Name limbs.BilingualName
}

// eighthBounds returns the [start,end) JD window of the 1-based nth
// eighth (1..8) of the sunrise-sunset interval.
func eighthBounds(sunriseJD, sunsetJD float64, n int) jdSegment {
	step := (sunsetJD - sunriseJD) / 8.0
	start := sunriseJD + step*float64(n-1)
	end := sunriseJD + step*float64(n)
	return jdSegment{StartJD: start, EndJD: end}
}

// ComputeRahuKalam returns the Rahu Kalam window for the given weekday.
func ComputeRahuKalam(sunriseJD, sunsetJD float64, weekday int) jdSegment {
	return eighthBounds(sunriseJD, sunsetJD, rahuSlotByWeekday[weekday])
}

// ComputeYamaGandam returns the Yama Gandam window for the given weekday.
func ComputeYamaGandam(sunriseJD, sunsetJD float64, weekday int) jdSegment {
	return eighthBounds(sunriseJD, sunsetJD, yamaSlotByWeekday[weekday])
}

// ComputeKuligai returns the Kuligai window for the given weekday.
func ComputeKuligai(sunriseJD, sunsetJD float64, weekday int) jdSegment {
	return eighthBounds(sunriseJD, sunsetJD, kuligaiSlotByWeekday[weekday])
}

// ComputeGowriNeram partitions the sunrise-sunset interval into all 8
// segments, each tagged good/bad and labeled with its planetary name.
func ComputeGowriNeram(sunriseJD, sunsetJD float64, weekday int) []gowriJDSegment {
	firstSet := gowriGoodSegmentsFirstSet(weekday)
	out := make([]gowriJDSegment, 0, 8)
	for n := 1; n <= 8; n++ {
		var good bool
		switch n {
		case 1, 2, 5, 6:
			good = firstSet
		default: // 3, 4, 7, 8
			good = !firstSet
		}
		name := limbs.GowriNameAt(weekday, n)
		out = append(out, gowriJDSegment{
			jdSegment: eighthBounds(sunriseJD, sunsetJD, n),
			Good:      good,
			Name:      name,
		})
	}
	return out
}

// NallaNeram extracts the good-tagged subset of a Gowri Neram partition.
func NallaNeram(gowri []gowriJDSegment) []jdSegment {
	out := make([]jdSegment, 0, 4)
	for _, seg := range gowri {
		if seg.Good {
			out = append(out, seg.jdSegment)
		}
	}
	return out
}
