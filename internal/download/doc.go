package download

// Package download runs a single download job on top of the yt-dlp engine.
// The engine is reached through the Engine interface; the Runner bridges the
// engine's progress hook and logger into Observer callbacks and guarantees
// exactly one terminal callback per job.
