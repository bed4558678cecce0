// Package config holds runtime settings for the BrewClub CLI, assembled from
// defaults, an optional JSON file, and command-line flags, in that order.
package config

import "time"

// UploaderKind selects which media host implementation uploads avatars.
type UploaderKind string

const (
	// UploaderHost posts multipart form data tagged with an upload preset.
	UploaderHost UploaderKind = "host"
	// UploaderS3 puts objects into an S3-compatible bucket.
	UploaderS3 UploaderKind = "s3"
)

// Config holds runtime settings for the BrewClub CLI.
type Config struct {
	// BackendBaseURL is the base URL of the BrewClub REST backend.
	BackendBaseURL string

	// DatabaseDSN locates the local SQLite database holding the credentials.
	DatabaseDSN string

	// RequestTimeout bounds every backend and media-host call.
	RequestTimeout time.Duration

	// Uploader selects the media host implementation.
	Uploader UploaderKind

	// MediaUploadURL and MediaUploadPreset configure the multipart host.
	MediaUploadURL    string
	MediaUploadPreset string

	// S3 settings, used when Uploader is "s3".
	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3KeyPrefix     string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://localhost:8000"
	c.DatabaseDSN = "brewclub.db"
	c.RequestTimeout = 10 * time.Second
	c.Uploader = UploaderHost
	c.MediaUploadURL = "https://api.cloudinary.com/v1_1/brewclub/image/upload"
	c.MediaUploadPreset = "brewclub-avatars"
	c.S3Region = "us-east-1"
	c.S3Bucket = "brewclub-avatars"
	c.S3KeyPrefix = "avatars"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
