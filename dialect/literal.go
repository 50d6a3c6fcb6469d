package dialect

import (
	"fmt"
	"strconv"
	"time"
)

// Literal renders a scalar value as a SQL literal using the dialect's
// quoting rules. This is the single injection boundary for literal
// values: any value of non-numeric kind passes through QuoteString. It
// is not a parameterization mechanism and offers no protection when the
// SQL structure itself is untrusted.
func Literal(d Dialect, v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return d.QuoteString(d.FormatTime(val))
	case string:
		return d.QuoteString(val)
	default:
		return d.QuoteString(fmt.Sprint(val))
	}
}
