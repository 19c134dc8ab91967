package cmd

import (
	"fmt"
	"io"
	"os"

	"modchem-backend/internal/chrono"
	configlibsql "modchem-backend/lib/configutil/libsql"
	"modchem-backend/lib/scrapers/wikidict"
	"modchem-backend/lib/scrapers/wikidict/db"
	"modchem-backend/lib/telemetry"
	"modchem-backend/services/modchem"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	cacheFile string

	service modchem.Service
	closers []io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "modchem",
	Short: "modchem builds chemical formulas from element clicks and looks them up on the wiki.",
	// Execute prints the error once the open handles are closed
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCloser, err := telemetry.InitSlog(verbose, "")
		if err != nil {
			return err
		}
		closers = append(closers, logCloser)

		clock := chrono.NewStandardTime()
		opts := wikidict.Options{Time: clock}
		if cacheFile != "" {
			conn, err := configlibsql.Struct{File: cacheFile}.OpenDB(db.Schema)
			if err != nil {
				return fmt.Errorf("open page cache: %w", err)
			}
			closers = append(closers, conn)
			opts.Cache = wikidict.NewCache(conn, clock)
		}
		service = modchem.NewService(wikidict.NewClient(opts))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache", os.Getenv("MODCHEM_CACHE"), "Sqlite file to cache fetched wiki pages in.")
}

func closeAll() {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i].Close()
	}
	closers = nil
}

// run executes the command line and closes everything the commands opened,
// whether or not they failed.
func run(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	closeAll()
	return err
}

func Execute() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
