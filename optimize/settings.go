package optimize

import (
	"fmt"
	"math"
	"time"
)

// unknownKeys returns, in no particular order, the keys of s that are not in
// known. Unknown keys are warned about rather than rejected.
func (s Settings) unknownKeys(known ...string) []string {
	var unknown []string
	for key := range s {
		recognized := false
		for _, k := range known {
			if key == k {
				recognized = true
				break
			}
		}
		if !recognized {
			unknown = append(unknown, key)
		}
	}

	return unknown
}

// duration reads key as a time budget: a time.Duration verbatim, or an int or
// float64 number of seconds.
func (s Settings) duration(key string, def time.Duration) (time.Duration, error) {
	raw, ok := s[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("%w: %q wants a duration or seconds, got %T", ErrBadSetting, key, raw)
	}
}

// integer reads key as an int, tolerating integral float64 values.
func (s Settings) integer(key string, def int) (int, error) {
	raw, ok := s[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
		return 0, fmt.Errorf("%w: %q wants an integer, got %v", ErrBadSetting, key, v)
	default:
		return 0, fmt.Errorf("%w: %q wants an integer, got %T", ErrBadSetting, key, raw)
	}
}

// boolean reads key as a bool.
func (s Settings) boolean(key string, def bool) (bool, error) {
	raw, ok := s[key]
	if !ok {
		return def, nil
	}
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q wants a bool, got %T", ErrBadSetting, key, raw)
	}

	return v, nil
}
