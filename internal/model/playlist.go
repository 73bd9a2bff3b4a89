package model

// PlaylistItem is a single entry of a probed playlist
type PlaylistItem struct {
	VideoID string
	Title   string
	URL     string
}

// Playlist is what the playlist probe learned about a multi-item source
// before the engine starts downloading it
type Playlist struct {
	ID    string
	URL   string
	Title string
	Items []PlaylistItem
}

// Count returns the number of items in the playlist
func (p *Playlist) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}
