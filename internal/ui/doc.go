// Package ui is the Fyne desktop front-end. MainWindow implements
// controller.View: a URL and folder form, a start button, a progress bar
// with a status line, the merge tool notice and a read-only log. All UI
// strings come from Localization.
package ui
