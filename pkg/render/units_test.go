package render_test

import (
	"testing"
	"time"

	. "github.com/dorisops/dorisctl/pkg/render"
	"gotest.tools/v3/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatBytes(0))
	assert.Equal(t, "512 Bytes", FormatBytes(512))
	assert.Equal(t, "1 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 KB", FormatBytes(1536, 1))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2 KB", FormatBytes(1536, 0))
	assert.Equal(t, "1 MB", FormatBytes(1024*1024))
	assert.Equal(t, "1 GB", FormatBytes(1024*1024*1024))
	assert.Equal(t, "1.25 TB", FormatBytes(1.25*1024*1024*1024*1024))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-15 09:30:05", FormatTimestamp(ts))
}
