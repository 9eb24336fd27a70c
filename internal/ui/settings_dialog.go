package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fetchtube/fetchtube/internal/config"
)

// showSettingsDialog edits the persisted settings. onSave runs after the
// values are stored, so callers can re-apply them to live services.
func showSettingsDialog(window fyne.Window, settings *config.Settings, onSave func()) {
	dirEntry := widget.NewEntry()
	dirEntry.SetText(settings.GetDownloadDirectory())

	cookiesEntry := widget.NewEntry()
	cookiesEntry.SetText(settings.GetCookiesFile())
	cookiesEntry.SetPlaceHolder("Path to cookies.txt (optional)")

	browserCheck := widget.NewCheck("Use browser cookies when no file is set", nil)
	browserCheck.SetChecked(settings.GetBrowserCookies())

	items := []*widget.FormItem{
		widget.NewFormItem("Download folder", dirEntry),
		widget.NewFormItem("Cookies file", cookiesEntry),
		widget.NewFormItem("", browserCheck),
	}

	dialog.ShowForm("Settings", "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}
		settings.SetDownloadDirectory(dirEntry.Text)
		settings.SetCookiesFile(cookiesEntry.Text)
		settings.SetBrowserCookies(browserCheck.Checked)
		if onSave != nil {
			onSave()
		}
	}, window)
}
