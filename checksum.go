package ean13

// Checksum computes the EAN check digit for a string of digits that does not
// yet include it. Positions are weighted 3 and 1 alternately from the right.
// Returns -1 if s contains a non-digit.
func Checksum(s string) int {
	sum := 0
	for i := len(s) - 1; i >= 0; i -= 2 {
		d := int(s[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		sum += d
	}
	sum *= 3
	for i := len(s) - 2; i >= 0; i -= 2 {
		d := int(s[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		sum += d
	}
	return (1000 - sum) % 10
}

// ValidChecksum reports whether the last digit of s is the correct check
// digit for the digits before it.
func ValidChecksum(s string) bool {
	if len(s) == 0 {
		return false
	}
	return Checksum(s[:len(s)-1]) == int(s[len(s)-1]-'0')
}
