package listpager

const (
	// MaxLimit is the largest page a pager serves unless WithMaxLimit says otherwise.
	MaxLimit     = 1000
	DefaultLimit = 25
)

// IsNormalizedLimitMax returns limit brought into 1..maxLimit and whether it
// was already there. A missing limit becomes DefaultLimit, capped by maxLimit.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return min(DefaultLimit, maxLimit), false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// validateLimit checks the limit strictly. Unlike NormalizeLimit it never
// substitutes a default: pagers reject out-of-range limits.
func validateLimit(limit int, maxLimit int) error {
	if limit <= 0 {
		return invalidArgumentf("limit must be positive, got %d", limit)
	}

	if limit > maxLimit {
		return invalidArgumentf("limit %d exceeds maximum %d", limit, maxLimit)
	}

	return nil
}
