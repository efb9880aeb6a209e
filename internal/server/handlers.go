package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/conneroisu/shelfpage/internal/dom"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
	"github.com/conneroisu/shelfpage/internal/page"
	"github.com/conneroisu/shelfpage/internal/version"
)

// reloadScript reloads the page on a hub reload message. It does not
// reconnect after the server stops.
const reloadScript = `<script>(function(){` +
	`var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/ws");` +
	`ws.onmessage=function(e){try{if(JSON.parse(e.data).type==="reload"){location.reload();}}catch(_){}};` +
	`})();</script>`

var errHostMissing = shelferrors.NewIOError(shelferrors.ErrCodeFileNotFound, "host page missing", nil)

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := s.renderPage(r)
	if err != nil {
		shelferrors.Report(ctx, s.logger, err)
		status := http.StatusInternalServerError
		if errors.Is(err, errHostMissing) {
			status = http.StatusNotFound
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(body); err != nil {
		s.logger.Debug(ctx, "Client went away during write", "error", err.Error())
	}
}

// renderPage builds a fresh document for one request.
func (s *PreviewServer) renderPage(r *http.Request) ([]byte, error) {
	ctx := r.Context()

	src, err := page.OpenHost(s.config.Page.Source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	opts := s.config.PageOptions(s.logger, page.LogNotifier{Logger: s.logger})
	doc, err := page.Load(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	if s.config.Development.HotReload {
		injectReload(doc)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, shelferrors.Wrap(err, shelferrors.ErrorTypeInternal, shelferrors.ErrCodeRenderFailed, "cannot serialize page")
	}
	return buf.Bytes(), nil
}

func injectReload(doc *dom.Document) {
	if body, ok := doc.Find("body"); ok {
		body.AppendHTML(reloadScript)
	}
}

func (s *PreviewServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *PreviewServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.GetBuildInfo()); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode version response")
	}
}
