package server

import (
	"bytes"
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/ralim/nxmissing/viewstate"
	"github.com/ralim/nxmissing/webui"
	"github.com/rs/zerolog/hlog"
)

func (server *Server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		res.Header().Set("Allow", "GET, HEAD")
		http.Error(res, "Only GET and HEAD are allowed", http.StatusMethodNotAllowed)
		return
	}

	var head string
	head, req.URL.Path = ShiftPath(req.URL.Path)

	switch head {
	case "", "index.html":
		server.httpHandleIndex(res, req)
	case "reload":
		server.httpHandleReload(res, req)
	case "api":
		server.httpHandleAPI(res, req)
	case "data":
		server.httpHandleData(res, req)
	case "titledb.json":
		server.httpHandleTitlesDB(res, req)
	case "style.css":
		server.httpHandleCSS(res, req)
	default:
		http.NotFound(res, req)
	}
}

func (server *Server) viewFor(req *http.Request) (viewstate.State, webui.Language) {
	state := viewstate.Parse(req.URL.Query(), server.settings.DefaultPageSize)
	lang := webui.MatchLanguage(state.Lang, req.Header.Get("Accept-Language"), server.settings.DefaultLanguage)
	return state, lang
}

func (server *Server) httpHandleIndex(respWriter http.ResponseWriter, r *http.Request) {
	state, lang := server.viewFor(r)
	// Render to a buffer so a template failure can still become a clean 500
	var page bytes.Buffer
	status := http.StatusOK
	ds, err := server.store.Snapshot()
	switch {
	case err != nil:
		status = http.StatusServiceUnavailable
		err = server.webui.RenderError(&page, state, lang, err)
	case state.IsTable():
		err = server.webui.RenderTable(&page, ds, state, lang)
	default:
		err = server.webui.RenderHome(&page, ds, state, lang)
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Rendering page failed")
		http.Error(respWriter, "Rendering page failed", http.StatusInternalServerError)
		return
	}
	respWriter.Header().Set("Content-Type", "text/html; charset=UTF-8")
	respWriter.WriteHeader(status)
	_, _ = page.WriteTo(respWriter)
}

// httpHandleReload is the retry button, it loads the data again and goes back to the page it came from
func (server *Server) httpHandleReload(respWriter http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if timeout := server.settings.FetchTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := server.store.Reload(ctx); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("Reload failed")
	}
	http.Redirect(respWriter, r, safeRedirect(r.URL.Query().Get("next")), http.StatusSeeOther)
}

// safeRedirect only allows going back to a page on this server
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}

func (server *Server) httpHandleCSS(respWriter http.ResponseWriter, r *http.Request) {
	respWriter.Header().Set("Content-Type", "text/css; charset=UTF-8")
	respWriter.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := respWriter.Write(webui.StyleCSS); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("Sending stylesheet failed")
	}
}

// ShiftPath splits off the front portion of the provided path into head and then returns the remainder in tail
func ShiftPath(pathIn string) (head, tail string) {
	pathIn = path.Clean("/" + pathIn)
	i := strings.Index(pathIn[1:], "/") + 1
	if i <= 0 {
		return pathIn[1:], "/"
	}
	return pathIn[1:i], pathIn[i:]
}
