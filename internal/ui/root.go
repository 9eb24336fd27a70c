package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fetchtube/fetchtube/internal/config"
	"github.com/fetchtube/fetchtube/internal/download"
	"github.com/fetchtube/fetchtube/internal/engine"
	"github.com/fetchtube/fetchtube/internal/format"
	"github.com/fetchtube/fetchtube/internal/model"
	"github.com/fetchtube/fetchtube/internal/platform"
	"github.com/fetchtube/fetchtube/internal/queue"
)

// RootUI holds the main window widgets and the services behind them
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings

	service *download.Service
	queue   *queue.Queue

	urlEntry      *widget.Entry
	probeBtn      *widget.Button
	addBtn        *widget.Button
	infoLabel     *widget.Label
	qualitySelect *widget.Select
	formatSelect  *widget.Select
	audioCheck    *widget.Check
	itemsEntry    *widget.Entry

	queueList    *widget.List
	overallLabel *widget.Label

	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	rateLabel   *widget.Label

	downloadBtn *widget.Button
	cancelBtn   *widget.Button

	// codes behind the select labels, index-aligned
	qualityCodes []string
	formatCodes  []string
}

// NewRootUI builds the main window content and returns the assembled UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: config.NewSettings(app),
		queue:    queue.New(),
	}

	downloadsDir := ui.settings.GetDownloadDirectory()
	platform.EnsureDir(downloadsDir)

	eng := engine.New(engine.Options{
		CookiesFile:        ui.settings.GetCookiesFile(),
		CookiesFromBrowser: ui.settings.GetBrowserCookies(),
	})
	ui.service = download.NewService(eng, downloadsDir, ui.onProgress)

	ui.buildWidgets()
	window.SetContent(ui.layout())
	return ui
}

func (ui *RootUI) buildWidgets() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Paste a video or playlist URL…")

	ui.probeBtn = widget.NewButton("Probe", ui.onProbe)
	ui.addBtn = widget.NewButton("Add to Queue", ui.onAdd)

	ui.infoLabel = widget.NewLabel("")
	ui.infoLabel.Wrapping = fyne.TextWrapWord

	ui.setQualityChoices(format.QualityOptions())
	ui.setFormatChoices(false)

	ui.audioCheck = widget.NewCheck("Audio only", func(audioOnly bool) {
		ui.setFormatChoices(audioOnly)
	})

	ui.itemsEntry = widget.NewEntry()
	ui.itemsEntry.SetPlaceHolder("Playlist items, e.g. 1-5,7")

	ui.queueList = widget.NewList(
		func() int { return ui.queue.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			items := ui.queue.Items()
			if id >= len(items) {
				return
			}
			item := items[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("[%s] %s", item.Status, item.URL))
		},
	)
	ui.overallLabel = widget.NewLabel("Queue empty")

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("Idle")
	ui.rateLabel = widget.NewLabel("")

	ui.downloadBtn = widget.NewButton("Download", ui.onDownload)
	ui.cancelBtn = widget.NewButton("Cancel", ui.onCancel)
	ui.cancelBtn.Disable()
}

func (ui *RootUI) layout() fyne.CanvasObject {
	urlRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.probeBtn, ui.addBtn), ui.urlEntry)

	optionsRow := container.NewHBox(
		widget.NewLabel("Quality:"), ui.qualitySelect,
		widget.NewLabel("Format:"), ui.formatSelect,
		ui.audioCheck,
	)

	controls := container.NewHBox(
		ui.downloadBtn,
		ui.cancelBtn,
		widget.NewButton("Open Folder", ui.onOpenFolder),
		widget.NewButton("Settings", ui.onSettings),
	)

	progressBox := container.NewVBox(
		ui.progressBar,
		container.NewHBox(ui.statusLabel, ui.rateLabel),
	)

	top := container.NewVBox(
		urlRow,
		ui.infoLabel,
		optionsRow,
		ui.itemsEntry,
		controls,
		progressBox,
		ui.overallLabel,
	)
	return container.NewBorder(top, nil, nil, nil, ui.queueList)
}

// setQualityChoices replaces the quality dropdown, keeping codes aligned
func (ui *RootUI) setQualityChoices(choices []format.QualityChoice) {
	labels := make([]string, len(choices))
	ui.qualityCodes = make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
		ui.qualityCodes[i] = c.Code
	}
	if ui.qualitySelect == nil {
		ui.qualitySelect = widget.NewSelect(labels, nil)
	} else {
		ui.qualitySelect.Options = labels
		ui.qualitySelect.Refresh()
	}
	ui.qualitySelect.SetSelectedIndex(0)
}

// setFormatChoices swaps the container dropdown between video and audio lists
func (ui *RootUI) setFormatChoices(audioOnly bool) {
	choices := format.OutputFormats(audioOnly)
	labels := make([]string, len(choices))
	ui.formatCodes = make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
		ui.formatCodes[i] = c.Code
	}
	if ui.formatSelect == nil {
		ui.formatSelect = widget.NewSelect(labels, nil)
	} else {
		ui.formatSelect.Options = labels
		ui.formatSelect.Refresh()
	}
	ui.formatSelect.SetSelectedIndex(0)
}

func (ui *RootUI) selectedQuality() string {
	idx := ui.qualitySelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.qualityCodes) {
		return format.QualityBest
	}
	return ui.qualityCodes[idx]
}

func (ui *RootUI) selectedFormat() string {
	idx := ui.formatSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.formatCodes) {
		return config.DefaultContainer
	}
	return ui.formatCodes[idx]
}

// onProbe fetches metadata on a background goroutine and fills the info
// label and quality dropdown.
func (ui *RootUI) onProbe() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		return
	}
	ui.statusLabel.SetText("Probing…")

	go func() {
		info, err := ui.service.Probe(context.Background(), url)
		fyne.Do(func() {
			if err != nil {
				ui.statusLabel.SetText("Idle")
				dialog.ShowError(err, ui.window)
				return
			}
			ui.statusLabel.SetText("Idle")
			ui.infoLabel.SetText(fmt.Sprintf("%s | %s (%s, %s)",
				info.Title, info.Uploader, model.FormatETA(info.Duration), info.Type))
			ui.setQualityChoices(format.AvailableQualities(info.Streams))
		})
	}()
}

// onAdd enqueues the current URL with the currently selected options
func (ui *RootUI) onAdd() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		return
	}
	ui.queue.Enqueue(url, queue.Overrides{
		Quality:       ui.selectedQuality(),
		Container:     ui.selectedFormat(),
		AudioOnly:     ui.audioCheck.Checked,
		PlaylistItems: strings.TrimSpace(ui.itemsEntry.Text),
	})
	ui.urlEntry.SetText("")
	ui.refreshQueue()
}

// onDownload drains the queue on a single background worker. The URL entry
// content, if any, is enqueued first so "paste and click Download" works
// without an explicit Add.
func (ui *RootUI) onDownload() {
	if url := strings.TrimSpace(ui.urlEntry.Text); url != "" {
		ui.onAdd()
	}
	if !ui.queue.HasPending() {
		return
	}

	ui.downloadBtn.Disable()
	ui.cancelBtn.Enable()

	defaults := download.Request{
		Quality:      ui.settings.GetQuality(),
		Container:    ui.settings.GetContainer(),
		AudioQuality: ui.settings.GetAudioQuality(),
	}

	go func() {
		ui.service.RunQueue(context.Background(), ui.queue, defaults,
			func(item *queue.Item, outcome download.Outcome, err error) {
				fyne.Do(func() {
					ui.statusLabel.SetText(outcome.Message)
					ui.refreshQueue()
				})
			})
		fyne.Do(func() {
			ui.downloadBtn.Enable()
			ui.cancelBtn.Disable()
			ui.refreshQueue()
		})
	}()
}

func (ui *RootUI) onCancel() {
	ui.service.Cancel()
	ui.statusLabel.SetText("Cancelling after current step…")
}

func (ui *RootUI) onOpenFolder() {
	if err := platform.OpenFolder(ui.settings.GetDownloadDirectory()); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onSettings() {
	showSettingsDialog(ui.window, ui.settings, func() {
		ui.service.SetOutputDirectory(ui.settings.GetDownloadDirectory())
	})
}

// onProgress receives normalized records from the worker goroutine
func (ui *RootUI) onProgress(rec model.ProgressRecord) {
	fyne.Do(func() {
		ui.progressBar.SetValue(rec.Percent / 100)
		switch rec.Status {
		case model.StatusDownloading:
			ui.statusLabel.SetText(fmt.Sprintf("Downloading %.1f%%", rec.Percent))
			ui.rateLabel.SetText(fmt.Sprintf("%s  ETA %s  %s",
				rec.SpeedString(), rec.ETAString(), rec.SizeString()))
		case model.StatusProcessing:
			ui.statusLabel.SetText("Processing…")
			ui.rateLabel.SetText("")
		case model.StatusFinished:
			ui.statusLabel.SetText("Finished")
			ui.rateLabel.SetText("")
		case model.StatusError:
			ui.statusLabel.SetText("Error")
			ui.rateLabel.SetText("")
		}
	})
}

func (ui *RootUI) refreshQueue() {
	ui.queueList.Refresh()
	if ui.queue.Len() == 0 {
		ui.overallLabel.SetText("Queue empty")
		return
	}
	ui.overallLabel.SetText(fmt.Sprintf("Queue %s, %.0f%% done",
		ui.queue.ProgressText(), ui.queue.OverallProgress()))
}
