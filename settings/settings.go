package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

type Settings struct {
	DataSource          string `json:"dataSource"`          // URL or local folder holding the missing-* files
	ImageServiceURL     string `json:"imageServiceUrl"`     // Base of the icon/banner image service
	InfoServiceURL      string `json:"infoServiceUrl"`      // Base of the per title info service
	CacheFolder         string `json:"cacheFolder"`         // Downloads are kept here and revalidated by ETag, empty disables
	FetchTimeoutSeconds int    `json:"fetchTimeoutSeconds"` // Timeout for each outbound request
	HTTPPort            int    `json:"httpPort"`            // Port used for HTTP
	EnableFTP           bool   `json:"enableFtp"`           // Serve the read only FTP mirror
	FTPPort             int    `json:"ftpPort"`             // Port used for FTP
	AllowAnonFTP        bool   `json:"allowAnonFtp"`        // Anyone can log into the FTP mirror
	FTPUsername         string `json:"ftpUsername"`         // Used when anon FTP is off
	FTPPassword         string `json:"ftpPassword"`
	DefaultPageSize     int    `json:"defaultPageSize"`     // Rows per page unless the URL asks otherwise, -1 is all
	DefaultLanguage     string `json:"defaultLanguage"`     // Used when the browser doesnt ask for one we have
	NameCharacterBudget int    `json:"nameCharacterBudget"` // Long names are cut to this many characters, 0 to disable
	LogLevel            string `json:"logLevel"`            // zerolog level name
	SiteTitle           string `json:"siteTitle"`           // Shown in the page header
	// Private
	filePath string
}

// NewSettings creates settings with sane defaults
// And then loads any settings from the provided path (overwriting defaults)
// Environment variables (and a .env file) override both, but are not saved back
func NewSettings(path string) *Settings {
	settings := &Settings{
		filePath:            path,
		DataSource:          "https://raw.githubusercontent.com/ghost-land/NX-Missing/master/data/",
		ImageServiceURL:     "https://api.nlib.cc/nx/",
		InfoServiceURL:      "https://api.nlib.cc/nx/",
		CacheFolder:         filepath.Join(xdg.CacheHome, "nxmissing"),
		FetchTimeoutSeconds: 30,
		HTTPPort:            8080,
		EnableFTP:           false,
		FTPPort:             2121,
		AllowAnonFTP:        true,
		FTPUsername:         "switch",
		FTPPassword:         "switch",
		DefaultPageSize:     10,
		DefaultLanguage:     "en",
		NameCharacterBudget: 0,
		LogLevel:            "info",
		SiteTitle:           "NX Missing Content Tracker",
	}
	//Load the settings file if it exsts, which will override the defaults above if specified
	//Save to preserve if we have added anything to the file, and drop no-longer used settings for clarity
	if settings.Load() {
		settings.Save()
	}

	// Missing .env is the normal case
	_ = godotenv.Load()
	settings.applyEnv()
	return settings
}

// Load reads the settings file over the current values, and reports if saving would lose nothing
// A file that did not parse, or one with comments or trailing commas, is left as the user wrote it
func (s *Settings) Load() bool {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return errors.Is(err, fs.ErrNotExist)
	}
	if err := s.LoadFrom(bytes.NewReader(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't load settings - %v\n", err)
		return false
	}
	return len(bytes.TrimSpace(data)) == 0 || json.Valid(data)
}

// LoadFrom reads settings over the current values, comments and trailing commas are allowed
func (s *Settings) LoadFrom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("invalid JSONC - %w", err)
	}
	return json.Unmarshal(standardized, s)
}

func (s *Settings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't save settings - %v\n", err)
		return
	}
	if err := atomic.WriteFile(s.filePath, bytes.NewReader(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't save settings - %v\n", err)
	}
}

func (s *Settings) FetchTimeout() time.Duration {
	if s.FetchTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}
