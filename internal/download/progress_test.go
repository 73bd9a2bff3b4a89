package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestProgress_Percent(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		expected int
	}{
		{"half of known total", Progress{DownloadedBytes: 500, TotalBytes: 1000}, 50},
		{"floors fractional percent", Progress{DownloadedBytes: 999, TotalBytes: 1000}, 99},
		{"falls back to estimate", Progress{DownloadedBytes: 250, TotalBytesEstimate: 1000}, 25},
		{"prefers exact total over estimate", Progress{DownloadedBytes: 250, TotalBytes: 500, TotalBytesEstimate: 1000}, 50},
		{"unknown total", Progress{DownloadedBytes: 12345}, 0},
		{"overrun estimate is capped", Progress{DownloadedBytes: 1500, TotalBytesEstimate: 1000}, 100},
		{"nothing downloaded", Progress{TotalBytes: 1000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.progress.Percent())
		})
	}
}

func TestProgress_Annotation(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		expected string
	}{
		{"empty", Progress{}, ""},
		{"speed only", Progress{Speed: 2048}, "2 KB/s"},
		{"speed truncates", Progress{Speed: 2047}, "1 KB/s"},
		{"eta only", Progress{ETA: intPtr(30)}, "ETA 30s"},
		{"zero eta is still shown", Progress{ETA: intPtr(0)}, "ETA 0s"},
		{"speed and eta", Progress{Speed: 10240, ETA: intPtr(5)}, "10 KB/s ETA 5s"},
		{"playlist prefix", Progress{PlaylistIndex: 2, PlaylistCount: 5, Speed: 1024, ETA: intPtr(3)}, "[2/5] 1 KB/s ETA 3s"},
		{"playlist prefix alone", Progress{PlaylistIndex: 2, PlaylistCount: 5}, "[2/5]"},
		{"index without count", Progress{PlaylistIndex: 2, ETA: intPtr(1)}, "ETA 1s"},
		{"unknown total keeps speed and eta", Progress{DownloadedBytes: 10, Speed: 4096, ETA: intPtr(7)}, "4 KB/s ETA 7s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.progress.Annotation())
		})
	}
}

func TestProgress_MergingAnnotation(t *testing.T) {
	assert.Equal(t, MergingLabel, Progress{Status: ProgressStatusFinished}.MergingAnnotation(""))
	assert.Equal(t, "[3/4] "+MergingLabel, Progress{PlaylistIndex: 3, PlaylistCount: 4}.MergingAnnotation(""))
	assert.Equal(t, "[3/4] 병합 중", Progress{PlaylistIndex: 3, PlaylistCount: 4}.MergingAnnotation("병합 중"))
}
