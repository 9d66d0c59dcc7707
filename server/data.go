package server

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ralim/nxmissing/dataset"
	"github.com/rs/zerolog/hlog"
)

var ErrInvalidHeader = errors.New("invalid request header")

// Data mirror
// Serves the loaded snapshot back out in the same file formats it was loaded from,
// with a basic "index page" listing the files. Just like we do for FTP

func (server *Server) httpHandleData(respWriter http.ResponseWriter, req *http.Request) {
	ds, err := server.store.Snapshot()
	if err != nil {
		http.Error(respWriter, err.Error(), http.StatusServiceUnavailable)
		return
	}
	name := strings.Trim(req.URL.Path, "/")
	if name == "" {
		server.renderDataIndex(ds, respWriter, req)
		return
	}
	for _, kind := range dataset.Kinds {
		if kind.FileName() == name {
			server.serveDataFile(ds, kind, respWriter, req)
			return
		}
	}
	http.Error(respWriter, "Path not found", http.StatusNotFound)
}

func (server *Server) renderDataIndex(ds *dataset.Dataset, respWriter http.ResponseWriter, req *http.Request) {
	respWriter.Header().Set("Content-Type", "text/html; charset=UTF-8")
	_, _ = respWriter.Write([]byte("<!DOCTYPE HTML PUBLIC \"-//W3C//DTD HTML 3.2 Final//EN\">\n<html>\n <head>\n  <title>Index of /data/</title>\n </head>\n <body>\n<h1>Index of /data/</h1>\n<ul><li><a href=\"/\"> Parent Directory</a></li>\n"))
	for _, kind := range dataset.Kinds {
		var buf bytes.Buffer
		if err := ds.Encode(&buf, kind); err != nil {
			hlog.FromRequest(req).Error().Err(err).Str("kind", string(kind)).Msg("Encoding snapshot failed")
			continue
		}
		name := html.EscapeString(kind.FileName())
		_, _ = fmt.Fprintf(respWriter, "<li><a href=\"%s\"> %s</a> (%s)</li>\n", name, name, humanize.IBytes(uint64(buf.Len())))
	}
	_, _ = respWriter.Write([]byte("</ul>\n</body></html>"))
}

func (server *Server) serveDataFile(ds *dataset.Dataset, kind dataset.Kind, respWriter http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := ds.Encode(&buf, kind); err != nil {
		hlog.FromRequest(req).Error().Err(err).Str("kind", string(kind)).Msg("Encoding snapshot failed")
		http.Error(respWriter, "Encoding snapshot failed", http.StatusInternalServerError)
		return
	}
	reader := bytes.NewReader(buf.Bytes())
	size := reader.Size()

	contentType := "text/plain; charset=UTF-8"
	if kind == dataset.KindOldUpdates {
		contentType = "application/json"
	}
	respWriter.Header().Set("Content-Type", contentType)
	respWriter.Header().Add("Accept-Ranges", "bytes")
	rangeHeader, ok := req.Header["Range"]
	if !ok {
		respWriter.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		_, _ = io.Copy(respWriter, reader)
		return
	}
	startb, endb, err := parseRangeHeader(rangeHeader[0], size)
	if err != nil {
		respWriter.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		http.Error(respWriter, "Invalid range bytes", http.StatusRequestedRangeNotSatisfiable)
		return
	}
	if _, err := reader.Seek(startb, io.SeekStart); err != nil {
		http.Error(respWriter, "Invalid range bytes", http.StatusRequestedRangeNotSatisfiable)
		return
	}
	//Now safe to send final headers and push the payload out
	respWriter.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", startb, endb, size))
	respWriter.Header().Set("Content-Length", strconv.FormatInt(endb-startb+1, 10))
	respWriter.WriteHeader(http.StatusPartialContent)
	_, _ = io.CopyN(respWriter, reader, endb-startb+1)
}

// parseRangeHeader reads a single "bytes=start-end" range, an open end runs to the end of the file
func parseRangeHeader(rangeHeader string, size int64) (int64, int64, error) {
	rangeHeader = strings.TrimPrefix(strings.TrimSpace(rangeHeader), "bytes=")
	rangeSplit := strings.Split(rangeHeader, "-")
	if len(rangeSplit) != 2 {
		return 0, 0, ErrInvalidHeader
	}
	startB, err := strconv.ParseInt(rangeSplit[0], 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidHeader
	}
	endB := size - 1
	if rangeSplit[1] != "" {
		endB, err = strconv.ParseInt(rangeSplit[1], 10, 64)
		if err != nil {
			return 0, 0, ErrInvalidHeader
		}
	}
	if endB >= size {
		endB = size - 1
	}
	if startB < 0 || startB > endB {
		return 0, 0, ErrInvalidHeader
	}
	return startB, endB, nil
}
