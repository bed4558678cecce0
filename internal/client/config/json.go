package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dpetrovs/brewclub/internal/flagx"
	"github.com/dpetrovs/brewclub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. Empty fields leave the current value
// untouched, so a config file only needs the settings it changes.
type JsonConfig struct {
	BackendBaseURL    string         `json:"backend_base_url"`
	DatabaseDSN       string         `json:"database_dsn"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	Uploader          string         `json:"uploader"`
	MediaUploadURL    string         `json:"media_upload_url"`
	MediaUploadPreset string         `json:"media_upload_preset"`
	S3Endpoint        string         `json:"s3_endpoint"`
	S3Region          string         `json:"s3_region"`
	S3Bucket          string         `json:"s3_bucket"`
	S3KeyPrefix       string         `json:"s3_key_prefix"`
	S3AccessKey       string         `json:"s3_access_key"`
	S3SecretKey       string         `json:"s3_secret_key"`
	S3PublicBaseURL   string         `json:"s3_public_base_url"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Absent flag means no JSON is loaded.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	if err := applyJsonFile(cfg, jsonConfigFile); err != nil {
		panic(err)
	}
}

func applyJsonFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.Uploader != "" {
		cfg.Uploader = UploaderKind(jc.Uploader)
	}
	if jc.MediaUploadURL != "" {
		cfg.MediaUploadURL = jc.MediaUploadURL
	}
	if jc.MediaUploadPreset != "" {
		cfg.MediaUploadPreset = jc.MediaUploadPreset
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3KeyPrefix != "" {
		cfg.S3KeyPrefix = jc.S3KeyPrefix
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3PublicBaseURL != "" {
		cfg.S3PublicBaseURL = jc.S3PublicBaseURL
	}

	return nil
}
