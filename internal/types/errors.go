package types

import "errors"

// ErrInvalidInput marks a malformed request: an unparsable date, an
// out-of-range latitude/longitude, an unrecognized IANA zone, or an
// unknown birth nakshatra name. Call sites wrap it with fmt.Errorf's
// %w to attach the offending field; callers check membership with
// errors.Is(err, types.ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// ErrEphemerisFailure marks a failure from the ephemeris back-end for a
// given Julian Day (e.g. an instant outside the back-end's valid
// range). Call sites wrap it with the offending JD via fmt.Errorf.
var ErrEphemerisFailure = errors.New("ephemeris failure")
