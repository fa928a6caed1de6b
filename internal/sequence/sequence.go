package sequence

import "strings"

type Mode int

const (
	ModePrimes Mode = iota
	ModeCustom
)

func (m Mode) String() string {
	switch m {
	case ModePrimes:
		return "primes"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseMode maps a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primes":
		return ModePrimes, nil
	case "custom":
		return ModeCustom, nil
	}
	return 0, &UnknownModeError{Mode: s}
}

// Sequence is an ordered run of integers. Values handed out by Generate are
// copies and may be modified by the caller without affecting anything else.
type Sequence []int

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// Generate builds the sequence for mode. In primes mode low and high bound the
// half-open candidate range and explicit is ignored; in custom mode explicit
// is returned as-is and the bounds are ignored.
func Generate(mode Mode, low, high int, explicit []int) (Sequence, error) {
	switch mode {
	case ModePrimes:
		return Primes(low, high)
	case ModeCustom:
		return Sequence(explicit).Clone(), nil
	}
	return nil, &UnknownModeError{Mode: mode.String()}
}

// Primes returns every prime in [low, high).
func Primes(low, high int) (Sequence, error) {
	if low >= high {
		return nil, &InvalidRangeError{Low: low, High: high}
	}

	primes := make(Sequence, 0)
	for i := low; i < high; i++ {
		if IsPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes, nil
}

// IsPrime reports whether n has no divisor in [2, n/2]. Integers below 2 are
// never prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for j := 2; j <= n/2; j++ {
		if n%j == 0 {
			return false
		}
	}
	return true
}
