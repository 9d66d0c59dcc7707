package settings_test

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/ralim/nxmissing/settings"
	"github.com/rs/zerolog/log"
)

func TestNewSettings(t *testing.T) {
	//Test that settings will init
	tempFile := path.Join(t.TempDir(), "settings.json")
	newSettings := settings.NewSettings(tempFile)
	if newSettings.DefaultPageSize != 10 || newSettings.HTTPPort != 8080 {
		t.Errorf("should setup defaults, got %+v", newSettings)
	}
	// Defaults are saved out so users can see them
	data, err := os.ReadFile(tempFile)
	if err != nil || !strings.Contains(string(data), `"dataSource"`) {
		t.Errorf("settings should be saved, got %q %v", data, err)
	}
}

func TestLoadFrom(t *testing.T) {
	newSettings := settings.NewSettings(path.Join(t.TempDir(), "settings.json"))
	demoStr := `{
		// comments are fine
		"cacheFolder": "testessetsteset",
		"defaultPageSize": 50,
	}`
	if err := newSettings.LoadFrom(strings.NewReader(demoStr)); err != nil {
		t.Fatal(err)
	}
	if newSettings.CacheFolder != "testessetsteset" || newSettings.DefaultPageSize != 50 {
		t.Error("should setup cache folder and page size as demo overwrite")
	}
	if newSettings.SiteTitle == "" {
		t.Error("fields not in the file should keep their defaults")
	}
	if err := newSettings.LoadFrom(strings.NewReader(`{NotJson`)); err == nil {
		t.Error("broken file should fail")
	}
}

func TestLoadExistingFile(t *testing.T) {
	tempFile := path.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(tempFile, []byte(`{"httpPort": 9999, "siteTitle": "Mine"}`), 0644); err != nil {
		t.Fatal(err)
	}
	loaded := settings.NewSettings(tempFile)
	if loaded.HTTPPort != 9999 || loaded.SiteTitle != "Mine" {
		t.Errorf("file values should override defaults, got %d %s", loaded.HTTPPort, loaded.SiteTitle)
	}
}

func TestHandWrittenFilesAreKept(t *testing.T) {
	tests := []struct {
		name    string
		content string
		port    int
	}{
		{"comments", "{\n\t// my port\n\t\"httpPort\": 9090,\n}\n", 9090},
		{"broken", `{"httpPort": 9090`, 8080},
	}
	for _, test := range tests {
		tempFile := path.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(tempFile, []byte(test.content), 0644); err != nil {
			t.Fatal(err)
		}
		loaded := settings.NewSettings(tempFile)
		if loaded.HTTPPort != test.port {
			t.Errorf("%s: port should be %d, got %d", test.name, test.port, loaded.HTTPPort)
		}
		data, _ := os.ReadFile(tempFile)
		if string(data) != test.content {
			t.Errorf("%s: file should not be rewritten, got %q", test.name, data)
		}
	}
}

func TestPlainFileGetsNewDefaults(t *testing.T) {
	tempFile := path.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(tempFile, []byte(`{"httpPort": 9090}`), 0644); err != nil {
		t.Fatal(err)
	}
	settings.NewSettings(tempFile)
	data, _ := os.ReadFile(tempFile)
	if !strings.Contains(string(data), `"siteTitle"`) || !strings.Contains(string(data), "9090") {
		t.Errorf("plain JSON should be saved back with the defaults filled in, got %q", data)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NXMISSING_DATA_SOURCE", "/srv/data")
	t.Setenv("NXMISSING_HTTP_PORT", "1234")
	t.Setenv("NXMISSING_ENABLE_FTP", "true")
	tempFile := path.Join(t.TempDir(), "settings.json")
	loaded := settings.NewSettings(tempFile)
	if loaded.DataSource != "/srv/data" || loaded.HTTPPort != 1234 || !loaded.EnableFTP {
		t.Errorf("env should override, got %+v", loaded)
	}
	// Env values are not written back to the file
	data, _ := os.ReadFile(tempFile)
	if strings.Contains(string(data), "/srv/data") {
		t.Error("env overrides should not be saved")
	}
}

func TestSetupLogging(t *testing.T) {
	s := settings.NewSettings(path.Join(t.TempDir(), "settings.json"))
	var buf bytes.Buffer
	s.SetupLogging(&buf)
	log.Info().Str("source", "test").Msg("hello")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "source=") {
		t.Errorf("log line should reach the writer, got %q", buf.String())
	}
	s.SetupLogging(os.Stderr)
}
