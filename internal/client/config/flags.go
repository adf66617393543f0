package config

import (
	"flag"
	"os"

	"siteproof/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the attendance sync server (default from Config)
//	-d string   local data directory (default from Config)
//	-u int      server-side user id for synced records (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the sync server")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	fs.IntVar(&cfg.UserID, "u", cfg.UserID, "user id for synced records")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
