package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// Timeout constants
const (
	DefaultProbeTimeout = 30 * time.Second
)

// URL parameters
const (
	PlaylistParam = "list"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistProber lists playlist items through the ytdlp library
type PlaylistProber struct {
	timeout time.Duration
}

// NewPlaylistProber creates a new prober with the default timeout
func NewPlaylistProber() *PlaylistProber {
	return &PlaylistProber{
		timeout: DefaultProbeTimeout,
	}
}

// SetTimeout sets the timeout for a single probe; zero disables it
func (p *PlaylistProber) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ProbePlaylist lists the items of source. It returns a nil playlist for
// sources that do not reference a playlist.
func (p *PlaylistProber) ProbePlaylist(ctx context.Context, source string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(source)
	if playlistID == "" {
		return nil, nil
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := &model.Playlist{
		ID:    playlistID,
		URL:   source,
		Items: make([]model.PlaylistItem, 0, len(items)),
	}
	for _, it := range items {
		playlist.Items = append(playlist.Items, model.PlaylistItem{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return playlist, nil
}

// ExtractPlaylistID returns the value of the first list= query parameter
func ExtractPlaylistID(source string) string {
	u, err := url.Parse(strings.TrimSpace(source))
	if err != nil {
		return ""
	}
	return u.Query().Get(PlaylistParam)
}

// IsPlaylistURL reports whether source references a playlist
func IsPlaylistURL(source string) bool {
	return ExtractPlaylistID(source) != ""
}
