package download

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

func TestBuildOptions_WithMergeTool(t *testing.T) {
	job := model.NewJob("https://youtube.com/watch?v=test", "/downloads", true)

	opts := BuildOptions(job, DefaultPreferences())

	assert.Equal(t, filepath.Join("/downloads", DefaultOutputTemplate), opts.OutputTemplate)
	assert.True(t, opts.IgnoreErrors)
	assert.Equal(t, DefaultMergeFormat, opts.MergeOutputFormat)
	assert.Equal(t, DefaultMergedFormat, opts.Format)
}

func TestBuildOptions_WithoutMergeTool(t *testing.T) {
	job := model.NewJob("https://youtube.com/watch?v=test", "/downloads", false)

	opts := BuildOptions(job, DefaultPreferences())

	assert.True(t, opts.IgnoreErrors)
	assert.Empty(t, opts.MergeOutputFormat)
	assert.Equal(t, DefaultSingleFormat, opts.Format)
	// a "+" selector asks for separate video and audio streams
	assert.False(t, strings.Contains(opts.Format, "+"), "format %q requires merging", opts.Format)
}

func TestBuildOptions_FillsEmptyPreferences(t *testing.T) {
	job := model.NewJob("u", "/d", true)

	opts := BuildOptions(job, Preferences{MergedFormat: "bv*+ba/b"})

	assert.Equal(t, "bv*+ba/b", opts.Format)
	assert.Equal(t, DefaultMergeFormat, opts.MergeOutputFormat)
	assert.Equal(t, filepath.Join("/d", DefaultOutputTemplate), opts.OutputTemplate)
}
