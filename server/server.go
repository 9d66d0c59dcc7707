package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/server/virtualftp"
	"github.com/ralim/nxmissing/settings"
	"github.com/ralim/nxmissing/titledb"
	"github.com/ralim/nxmissing/webui"
	"github.com/rs/zerolog/log"
)

// Server is the main server that renders out the loaded dataset over HTTP (and optionally FTP)
type Server struct {
	store      *dataset.Store
	webui      *webui.WebUI
	titledb    *titledb.Client
	tracker    *titledb.Tracker
	settings   *settings.Settings
	httpServer *http.Server
	ftpServer  *virtualftp.FTPServer
}

func NewServer(store *dataset.Store, titleDB *titledb.Client, settings *settings.Settings) (*Server, error) {
	web, err := webui.NewWebUI(webui.Options{
		SiteTitle:           settings.SiteTitle,
		ImageServiceURL:     settings.ImageServiceURL,
		DefaultPageSize:     settings.DefaultPageSize,
		DefaultLanguage:     settings.DefaultLanguage,
		NameCharacterBudget: settings.NameCharacterBudget,
	})
	if err != nil {
		return nil, err
	}
	return &Server{
		store:    store,
		webui:    web,
		titledb:  titleDB,
		tracker:  titledb.NewTracker(),
		settings: settings,
	}, nil
}

// StartHTTP blocks serving HTTP until Shutdown is called
func (server *Server) StartHTTP() error {
	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", server.settings.HTTPPort),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Int("port", server.settings.HTTPPort).Msg("Starting HTTP server")
	err := server.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed - %w", err)
	}
	return nil
}

// StartFTP blocks serving the FTP mirror, it returns straight away if FTP is turned off
func (server *Server) StartFTP() error {
	if !server.settings.EnableFTP {
		return nil
	}
	ftpServer, err := virtualftp.CreateVirtualFTP(server.store, server.settings)
	if err != nil {
		return err
	}
	server.ftpServer = ftpServer
	log.Info().Int("port", server.settings.FTPPort).Msg("Starting FTP server")
	return ftpServer.Start()
}

func (server *Server) Shutdown(ctx context.Context) error {
	if server.ftpServer != nil {
		server.ftpServer.Stop()
	}
	if server.httpServer != nil {
		return server.httpServer.Shutdown(ctx)
	}
	return nil
}
