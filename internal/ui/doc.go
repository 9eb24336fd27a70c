// Package ui wires the desktop window: URL entry, probe and format
// selection, the download queue, progress display, and settings. All engine
// work happens on a single background goroutine; widget mutation from that
// goroutine goes through fyne.Do.
package ui
