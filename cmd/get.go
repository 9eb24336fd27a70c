package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fetchtube/fetchtube/internal/download"
	"github.com/fetchtube/fetchtube/internal/engine"
	"github.com/fetchtube/fetchtube/internal/format"
	"github.com/fetchtube/fetchtube/internal/logging"
	"github.com/fetchtube/fetchtube/internal/model"
	"github.com/fetchtube/fetchtube/internal/platform"
	"github.com/fetchtube/fetchtube/internal/queue"
)

var (
	getQuality        string
	getContainer      string
	getAudioOnly      bool
	getAudioQuality   string
	getPlaylistItems  string
	getBatchFile      string
	getCookiesFile    string
	getBrowserCookies bool
)

var getCmd = &cobra.Command{
	Use:   "get [urls...]",
	Short: "Download one or more URLs without the GUI",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.Component("get")

		q := queue.New()
		if getBatchFile != "" {
			added, err := q.LoadBatch(getBatchFile)
			if err != nil {
				return err
			}
			log.Info().Int("items", added).Str("file", getBatchFile).Msg("loaded batch file")
		}
		for _, url := range args {
			q.Enqueue(url, queue.Overrides{})
		}
		if q.Len() == 0 {
			return fmt.Errorf("no URLs given: pass them as arguments or via --batch")
		}

		outDir, err := resolveOutputDir()
		if err != nil {
			return err
		}
		if err := platform.EnsureDir(outDir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := engine.EnsureInstalled(ctx); err != nil {
			log.Warn().Err(err).Msg("could not verify engine install, relying on PATH")
		}

		eng := engine.New(engine.Options{
			CookiesFile:        getCookiesFile,
			CookiesFromBrowser: getBrowserCookies,
		})
		svc := download.NewService(eng, outDir, printProgress)

		// Ctrl-C requests an orderly stop at the next checkpoint
		go func() {
			<-ctx.Done()
			svc.Cancel()
		}()

		defaults := download.Request{
			Quality:       getQuality,
			Container:     getContainer,
			AudioOnly:     getAudioOnly,
			AudioQuality:  getAudioQuality,
			PlaylistItems: getPlaylistItems,
		}

		failed := 0
		svc.RunQueue(ctx, q, defaults, func(item *queue.Item, outcome download.Outcome, err error) {
			fmt.Println()
			if err != nil {
				failed++
				log.Error().Err(err).Str("url", item.URL).Msg("item failed")
				return
			}
			log.Info().Str("url", item.URL).Str("status", outcome.Status.String()).Msg(outcome.Message)
		})

		fmt.Printf("done: %s items, %.0f%% finished\n", q.ProgressText(), q.OverallProgress())
		if failed > 0 {
			return fmt.Errorf("%d of %d items failed", failed, q.Len())
		}
		return nil
	},
}

// printProgress renders a single updating progress line
func printProgress(rec model.ProgressRecord) {
	switch rec.Status {
	case model.StatusDownloading:
		fmt.Printf("\r%6.1f%%  %-12s ETA %-8s %s",
			rec.Percent, rec.SpeedString(), rec.ETAString(), rec.SizeString())
	case model.StatusProcessing:
		fmt.Printf("\rprocessing…%30s", "")
	case model.StatusFinished:
		fmt.Printf("\r100.0%%  finished in %.1fs%20s", rec.Elapsed, "")
	}
}

// resolveOutputDir picks the --output flag or the user's Downloads folder
func resolveOutputDir() (string, error) {
	if outputDir != "" {
		return outputDir, nil
	}
	return platform.HomeDownloadsDir()
}

func init() {
	getCmd.Flags().StringVarP(&getQuality, "quality", "q", format.QualityBest, "quality label: best, 2160p, 1440p, 1080p, 720p, 480p, 360p, 240p, 144p")
	getCmd.Flags().StringVarP(&getContainer, "format", "f", "mp4", "output container (video) or codec (audio)")
	getCmd.Flags().BoolVarP(&getAudioOnly, "audio", "a", false, "extract audio only")
	getCmd.Flags().StringVar(&getAudioQuality, "audio-quality", download.DefaultAudioQuality, "audio bitrate in kbps")
	getCmd.Flags().StringVar(&getPlaylistItems, "items", "", "playlist item range, e.g. 1-5,7,9-10")
	getCmd.Flags().StringVar(&getBatchFile, "batch", "", "YAML batch file of URLs with per-item overrides")
	getCmd.Flags().StringVar(&getCookiesFile, "cookies", "", "path to a cookies.txt file")
	getCmd.Flags().BoolVar(&getBrowserCookies, "browser-cookies", false, "read cookies from a detected local browser")
	rootCmd.AddCommand(getCmd)
}
