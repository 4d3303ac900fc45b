package render

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders a byte count with base-1024 scaling. The optional
// argument sets the number of decimals (default 2); trailing zeros are
// trimmed, so 1024 renders as "1 KB" and 1536 with one decimal as "1.5 KB".
func FormatBytes(bytes float64, decimals ...int) string {
	dm := 2
	if len(decimals) > 0 {
		dm = decimals[0]
		if dm < 0 {
			dm = 0
		}
	}

	if bytes == 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(bytes) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	value := strconv.FormatFloat(bytes/math.Pow(1024, float64(i)), 'f', dm, 64)
	if strings.Contains(value, ".") {
		value = strings.TrimRight(value, "0")
		value = strings.TrimSuffix(value, ".")
	}
	return value + " " + byteUnits[i]
}

// FormatTimestamp renders a time for display.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
