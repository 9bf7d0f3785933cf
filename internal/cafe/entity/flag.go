package entity

// Flag converts an active flag to the integer form kept in storage.
func Flag(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// IsSet reports whether a stored integer flag is on.
func IsSet(v int64) bool {
	return v != 0
}
