package platform

// Package platform contains OS and external tooling glue: locating the
// yt-dlp and ffmpeg executables, the user's Downloads directory, opening a
// folder in the system file manager and listing playlist items.
