package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fetchtube/fetchtube/internal/download"
	"github.com/fetchtube/fetchtube/internal/engine"
	"github.com/fetchtube/fetchtube/internal/format"
	"github.com/fetchtube/fetchtube/internal/model"
)

var (
	probeCookiesFile    string
	probeBrowserCookies bool
)

var probeCmd = &cobra.Command{
	Use:   "probe <url>",
	Short: "Inspect metadata and available formats without downloading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := engine.New(engine.Options{
			CookiesFile:        probeCookiesFile,
			CookiesFromBrowser: probeBrowserCookies,
		})
		svc := download.NewService(eng, ".", nil)

		info, err := svc.Probe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Title:    %s\n", info.Title)
		fmt.Printf("Uploader: %s\n", info.Uploader)
		fmt.Printf("Duration: %s\n", model.FormatETA(info.Duration))
		fmt.Printf("Type:     %s\n", info.Type)
		if info.IsLive {
			fmt.Println("Live:     yes")
		}
		if info.AgeLimit > 0 {
			fmt.Printf("Age limit: %d\n", info.AgeLimit)
		}

		fmt.Print("\nQualities: ")
		for i, choice := range format.AvailableQualities(info.Streams) {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(choice.Code)
		}
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\nID\tKIND\tQUALITY\tDESCRIPTION")
		for _, opt := range format.Classify(info.Streams) {
			kind := "audio"
			switch {
			case opt.IsVideo && opt.IsAudio:
				kind = "muxed"
			case opt.IsVideo:
				kind = "video"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", opt.FormatID, kind, opt.Quality, opt.Description)
		}
		return w.Flush()
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeCookiesFile, "cookies", "", "path to a cookies.txt file")
	probeCmd.Flags().BoolVar(&probeBrowserCookies, "browser-cookies", false, "read cookies from a detected local browser")
	rootCmd.AddCommand(probeCmd)
}
