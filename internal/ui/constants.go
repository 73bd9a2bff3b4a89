package ui

// Window defaults
const (
	AppID        = "com.ytget.yt-downloader-lite"
	WindowWidth  = 720
	WindowHeight = 560
)

// Icons (emojis/symbols)
const (
	IconFolder = "📁"
	IconPlay   = "▶"
)

// FFmpegBuildsURL is shown when no merge tool is installed
const FFmpegBuildsURL = "https://www.gyan.dev/ffmpeg/builds/"

// Layout sizing
const (
	LogMinHeight   float32 = 200
	EntryMinWidth  float32 = 420
	LabelColumnMin float32 = 80
)
