package v1

import "strconv"

// parseID parses an :id path parameter. Malformed ids are treated like ids
// that match no row, so callers can fall through to their no-op redirect.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}
