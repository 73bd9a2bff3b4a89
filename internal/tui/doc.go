// Package tui is the terminal front-end used by the "get" command. It runs
// one job through the same controller as the desktop window and renders it
// with bubbletea, or as plain lines when the output is not a terminal.
package tui
