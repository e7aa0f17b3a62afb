package config

import (
	"flag"
	"os"

	"github.com/csyeteam03/trace-console/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the trace-survey API
//	-s string   path of the credential store file
//	-d string   download subdirectory for saved PDFs
//
// Only the flags handled here are parsed, via flagx.FilterArgs, so flags
// owned by other packages pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the trace-survey API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the credential store file")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download subdirectory for saved PDFs")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
