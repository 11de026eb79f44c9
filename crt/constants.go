package crt

import "strings"

// LinearProbing - Open addressing where a colliding key is placed in the next free slot
const LinearProbing = 1

// SeparateChaining - Closed addressing where colliding keys are chained within their home bucket
const SeparateChaining = 2

// IsValid - Returns true if technique is one of the supported collision resolution techniques
func IsValid(technique int) bool {
	return technique == LinearProbing || technique == SeparateChaining
}

// Name - Returns a human readable name of the technique
func Name(technique int) string {
	switch technique {
	case LinearProbing:
		return "Linear Probing"
	case SeparateChaining:
		return "Separate Chaining"
	}
	return "Unknown"
}

// Label - Returns a short lowercase identifier of the technique, suitable for metric labels and query parameters
func Label(technique int) string {
	switch technique {
	case LinearProbing:
		return "linear"
	case SeparateChaining:
		return "chaining"
	}
	return "unknown"
}

// Parse - Returns the technique matching a Label or a common alias of it
func Parse(s string) (technique int, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "linear-probing", "lp", "1":
		technique = LinearProbing
	case "chaining", "separate-chaining", "sc", "2":
		technique = SeparateChaining
	default:
		err = NewInvalidConfig("unknown collision resolution technique: " + s)
	}

	return
}
