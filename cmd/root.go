package cmd

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/fetchtube/fetchtube/internal/logging"
	"github.com/fetchtube/fetchtube/internal/ui"
)

const (
	appID        = "com.fetchtube.fetchtube"
	appName      = "FetchTube"
	windowWidth  = 800
	windowHeight = 600
)

// Version is set during build via -ldflags "-X github.com/fetchtube/fetchtube/cmd.Version=X.Y.Z"
var Version = "dev"

var (
	debug     bool
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:     "fetchtube",
	Short:   "FetchTube downloads video and audio from sharing sites",
	Long:    "FetchTube is a desktop and command-line downloader for video sharing sites.\nRun without a subcommand to open the desktop window.",
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		fyneApp := app.NewWithID(appID)
		window := fyneApp.NewWindow(appName + " v" + Version)
		window.Resize(fyne.NewSize(windowWidth, windowHeight))
		ui.NewRootUI(window, fyneApp)
		window.ShowAndRun()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		logging.Init(debug)
	})
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "download directory (defaults to ~/Downloads)")
}
