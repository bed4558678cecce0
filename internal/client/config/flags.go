package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpetrovs/brewclub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   base URL of the backend
//	-d string   path of the local credentials database
//	-m string   media host upload URL
//	-p string   media host upload preset
//	-u string   uploader kind: host | s3
//	-t int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-m", "-p", "-u", "-t"})

	if err := applyFlags(cfg, args); err != nil {
		panic(err)
	}
}

func applyFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendBaseURL, "b", cfg.BackendBaseURL, "base URL of the backend")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local credentials database")
	fs.StringVar(&cfg.MediaUploadURL, "m", cfg.MediaUploadURL, "media host upload URL")
	fs.StringVar(&cfg.MediaUploadPreset, "p", cfg.MediaUploadPreset, "media host upload preset")
	uploader := fs.String("u", string(cfg.Uploader), "uploader kind: host | s3")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Uploader = UploaderKind(*uploader)
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
