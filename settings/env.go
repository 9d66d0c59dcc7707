package settings

import (
	"os"
	"strconv"
	"strings"
)

const envPrefix = "NXMISSING_"

func getenv(k string) (string, bool) {
	v := os.Getenv(envPrefix + k)
	return v, v != ""
}

func (s *Settings) applyEnv() {
	if v, ok := getenv("DATA_SOURCE"); ok {
		s.DataSource = v
	}
	if v, ok := getenv("IMAGE_SERVICE_URL"); ok {
		s.ImageServiceURL = v
	}
	if v, ok := getenv("INFO_SERVICE_URL"); ok {
		s.InfoServiceURL = v
	}
	if v, ok := getenv("CACHE_FOLDER"); ok {
		s.CacheFolder = v
	}
	if v, ok := getenv("HTTP_PORT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.HTTPPort = n
		}
	}
	if v, ok := getenv("FTP_PORT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.FTPPort = n
		}
	}
	if v, ok := getenv("ENABLE_FTP"); ok {
		s.EnableFTP = strings.EqualFold(v, "true") || v == "1"
	}
	if v, ok := getenv("LOG_LEVEL"); ok {
		s.LogLevel = v
	}
	if v, ok := getenv("DEFAULT_LANGUAGE"); ok {
		s.DefaultLanguage = v
	}
}
