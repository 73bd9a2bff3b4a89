package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// AppIconFile is the application icon, looked up relative to the working directory
const AppIconFile = "yt-downloader.png"

// LoadAppIcon loads the application icon from AppIconFile
func LoadAppIcon() (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(AppIconFile)
	if err != nil {
		return nil, fmt.Errorf("load icon: %w", err)
	}
	return res, nil
}
