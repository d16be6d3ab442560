package test

import (
	"math/rand"
	"sync"
	"time"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string of length
// within [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// LuhnNumber builds a digit string of the given length whose last digit
// makes the Luhn checksum pass. prefix is kept as the leading digits.
func LuhnNumber(rnd *rand.Rand, prefix string, length int) string {
	if length < len(prefix)+1 {
		length = len(prefix) + 1
	}
	digits := make([]byte, length)
	copy(digits, prefix)
	for i := len(prefix); i < length-1; i++ {
		digits[i] = byte('0' + rnd.Intn(10))
	}

	sum := 0
	double := true
	for i := length - 2; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	digits[length-1] = byte('0' + (10-sum%10)%10)
	return string(digits)
}

// RandomCardNumber returns a Luhn-valid number with the given prefix.
func RandomCardNumber(prefix string, length int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	return LuhnNumber(rng, prefix, length)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
