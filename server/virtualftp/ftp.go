package virtualftp

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/settings"
	"github.com/rs/zerolog/log"
	ftpserver "goftp.io/server/v2"
)

var (
	ErrNotAllowed = errors.New("not allowed")
	ErrNotFound   = errors.New("no such file")
)

// Snapshots is where the FTP mirror reads the current data from
type Snapshots interface {
	Snapshot() (*dataset.Dataset, error)
	LoadedAt() time.Time
}

type FTPServer struct {
	server *ftpserver.Server
}

func CreateVirtualFTP(store Snapshots, settings *settings.Settings) (*FTPServer, error) {
	driver := NewDriver(store, settings)
	perm := ftpserver.NewSimplePerm("nxmissing", "nxmissing")
	opt := &ftpserver.Options{
		Name:           "nxmissing",
		Driver:         driver,
		Port:           settings.FTPPort,
		Auth:           driver,
		Perm:           perm,
		WelcomeMessage: settings.SiteTitle,
	}
	ftpServer, err := ftpserver.NewServer(opt)
	if err != nil {
		return nil, fmt.Errorf("FTP server creation failed - %w", err)
	}
	return &FTPServer{server: ftpServer}, nil
}

func (ftp *FTPServer) Start() error {
	err := ftp.server.ListenAndServe()
	if err != nil && !errors.Is(err, ftpserver.ErrServerClosed) {
		log.Error().Err(err).Msg("FTP server start failed")
		return err
	}
	return nil
}

func (ftp *FTPServer) Stop() {
	if ftp.server != nil {
		_ = ftp.server.Shutdown()
	}
}

// FTPDriver presents the loaded snapshot as a single read only folder
type FTPDriver struct {
	store    Snapshots
	settings *settings.Settings
}

/*

Virtual FTP server
There is nothing on disk behind this, each file is rendered from the current snapshot
when it is listed or downloaded, in the same format as the source it was loaded from

	/missing-titles.txt
	/missing-dlcs.txt
	/missing-updates.txt
	/missing-old-updates.json

*/

func NewDriver(store Snapshots, settings *settings.Settings) *FTPDriver {
	return &FTPDriver{store: store, settings: settings}
}

func kindForPath(filePath string) (dataset.Kind, bool) {
	cleaned := path.Clean("/" + filePath)
	for _, kind := range dataset.Kinds {
		if cleaned == "/"+kind.FileName() {
			return kind, true
		}
	}
	return "", false
}

func (driver *FTPDriver) render(kind dataset.Kind) ([]byte, error) {
	ds, err := driver.store.Snapshot()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ds.Encode(&buf, kind); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (driver *FTPDriver) fileInfo(kind dataset.Kind) (os.FileInfo, error) {
	data, err := driver.render(kind)
	if err != nil {
		return nil, err
	}
	info := NewFakeFile(kind.FileName(), int64(len(data)), driver.store.LoadedAt())
	return &info, nil
}

func isRoot(p string) bool {
	return path.Clean("/"+p) == "/"
}

// ListDir implements Driver
func (driver *FTPDriver) ListDir(ctx *ftpserver.Context, path string, callback func(os.FileInfo) error) error {
	if !isRoot(path) {
		return ErrNotFound
	}
	for _, kind := range dataset.Kinds {
		info, err := driver.fileInfo(kind)
		if err != nil {
			// Nothing loaded yet, so the folder is empty
			return nil
		}
		if err := callback(info); err != nil {
			return err
		}
	}
	return nil
}

func (driver *FTPDriver) Stat(ctx *ftpserver.Context, path string) (os.FileInfo, error) {
	if isRoot(path) {
		info := NewFakeFolder("/", driver.store.LoadedAt())
		return &info, nil
	}
	kind, ok := kindForPath(path)
	if !ok {
		return nil, ErrNotFound
	}
	return driver.fileInfo(kind)
}

func (driver *FTPDriver) GetFile(ctx *ftpserver.Context, path string, offset int64) (int64, io.ReadCloser, error) {
	kind, ok := kindForPath(path)
	if !ok {
		return 0, nil, ErrNotFound
	}
	data, err := driver.render(kind)
	if err != nil {
		return 0, nil, fmt.Errorf("rendering %s failed - %w", path, err)
	}
	if offset < 0 || offset > int64(len(data)) {
		return 0, nil, fmt.Errorf("reading file from offset %d failed - %w", offset, io.ErrUnexpectedEOF)
	}
	username := "unknown"
	if ctx != nil && ctx.Sess != nil {
		if name, ok := ctx.Sess.Data["username"].(string); ok {
			username = name
		}
	}
	log.Info().Str("user", username).Str("path", path).Msg("Started FTP stream")
	return int64(len(data)) - offset, io.NopCloser(bytes.NewReader(data[offset:])), nil
}

func (driver *FTPDriver) PutFile(ctx *ftpserver.Context, destPath string, data io.Reader, offset int64) (int64, error) {
	return 0, ErrNotAllowed
}

func (driver *FTPDriver) DeleteDir(ctx *ftpserver.Context, path string) error {
	return ErrNotAllowed
}

func (driver *FTPDriver) DeleteFile(ctx *ftpserver.Context, path string) error {
	return ErrNotAllowed
}

func (driver *FTPDriver) Rename(ctx *ftpserver.Context, fromPath string, toPath string) error {
	return ErrNotAllowed
}

func (driver *FTPDriver) MakeDir(ctx *ftpserver.Context, path string) error {
	return ErrNotAllowed
}

func (driver *FTPDriver) CheckPasswd(ctx *ftpserver.Context, username string, password string) (bool, error) {
	if driver.settings.AllowAnonFTP {
		ctx.Sess.Data["username"] = username
		return true, nil
	}
	userOK := subtle.ConstantTimeCompare([]byte(driver.settings.FTPUsername), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(driver.settings.FTPPassword), []byte(password)) == 1
	if userOK && passOK {
		ctx.Sess.Data["username"] = username
		return true, nil
	}
	return false, nil
}
