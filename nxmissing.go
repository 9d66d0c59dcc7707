package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/server"
	"github.com/ralim/nxmissing/settings"
	"github.com/ralim/nxmissing/termui"
	"github.com/ralim/nxmissing/titledb"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

type MissingHost struct {
	ConfigFilePath string `flag:"config" help:"Path to config file"`
	NoCUI          bool   `flag:"noCUI" help:"Disable the Console UI"`
	Print          string `flag:"print" help:"Print one kind (missing-titles, missing-dlcs, missing-updates, missing-old-updates) as a table and exit"`
	Search         string `flag:"search" help:"Only print rows matching this text"`
	Sort           string `flag:"sort" help:"Column to sort printed rows by"`
	Desc           bool   `flag:"desc" help:"Sort printed rows descending"`

	ui       *termui.TermUI     `flag:"-"`
	settings *settings.Settings `flag:"-"`
	store    *dataset.Store     `flag:"-"`
	titleDB  *titledb.Client    `flag:"-"`
}

func NewMissingHost() *MissingHost {
	return &MissingHost{}
}

func (m *MissingHost) Run() error {
	uiExit := make(chan bool, 1)

	settingsPath := "./config.json"
	if m.ConfigFilePath != "" {
		settingsPath = m.ConfigFilePath
	}
	m.settings = settings.NewSettings(settingsPath)

	client := &http.Client{Timeout: m.settings.FetchTimeout()}
	source := dataset.NewSource(m.settings.DataSource, client, m.settings.CacheFolder)

	if m.Print != "" {
		m.settings.SetupLogging(os.Stderr)
		return printTable(context.Background(), os.Stdout, source, printOptions{
			Kind:   m.Print,
			Search: m.Search,
			Sort:   m.Sort,
			Desc:   m.Desc,
		})
	}

	if !m.NoCUI {
		m.ui = termui.NewTermUI()
		m.settings.SetupLogging(tview.ANSIWriter(m.ui.LogsView))
		go func() {
			if err := m.ui.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			m.ui.Stop()
			uiExit <- true
		}()
	} else {
		m.settings.SetupLogging(os.Stdout)
		//Run hook listener for ctrl-c
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				// sig is a ^C, handle it
				log.Warn().Msg("Control-C received, shutting down")
				uiExit <- true
			}
		}()
	}

	m.store = dataset.NewStore(source)
	if m.ui != nil {
		// Covers the first load and any later reload asked for from the web ui
		m.ui.Statistics.Follow(m.store)
	}
	m.titleDB = titledb.NewClient(m.settings.InfoServiceURL, client)

	// A failed first load is not fatal, the pages offer a retry
	m.loadDataset()

	server, err := server.NewServer(m.store, m.titleDB, m.settings)
	if err != nil {
		return err
	}
	m.startServers(server, uiExit)

	//Wait for exit
	<-uiExit

	//Rediect logs back to terminal since UI has exited
	m.settings.SetupLogging(os.Stdout)
	log.Warn().Msg("Closing up")
	fmt.Println("Waiting for servers to stop")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func (m *MissingHost) loadDataset() {
	var task *termui.TaskState
	if m.ui != nil {
		task = m.ui.RegisterTask(termui.TaskDataset)
		task.UpdateStatus("Downloading")
	}

	err := m.store.Reload(context.Background())
	if err != nil {
		log.Error().Err(err).Str("source", m.settings.DataSource).Msg("Loading data failed")
	}
	if m.ui == nil {
		return
	}
	if err != nil {
		task.UpdateStatus("Failed")
		return
	}
	task.UpdateStatus("Done")
}

func (m *MissingHost) startServers(server *server.Server, uiExit chan bool) {
	var httpTask, ftpTask *termui.TaskState
	if m.ui != nil {
		httpTask = m.ui.RegisterTask(termui.TaskHTTP)
		httpTask.UpdateStatus(fmt.Sprintf("Listening on :%d", m.settings.HTTPPort))
		if m.settings.EnableFTP {
			ftpTask = m.ui.RegisterTask(termui.TaskFTP)
			ftpTask.UpdateStatus(fmt.Sprintf("Listening on :%d", m.settings.FTPPort))
		}
	}
	go func() {
		if err := server.StartHTTP(); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
			if httpTask != nil {
				httpTask.UpdateStatus("Failed")
			}
			if m.ui == nil {
				uiExit <- true
			}
		}
	}()
	go func() {
		if err := server.StartFTP(); err != nil {
			log.Error().Err(err).Msg("FTP server stopped")
			if ftpTask != nil {
				ftpTask.UpdateStatus("Failed")
			}
		}
	}()
}
