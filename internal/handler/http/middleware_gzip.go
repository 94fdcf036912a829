// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decodes gzip request bodies and compresses responses for clients
// that advertise gzip in Accept-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		supportsGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
		isGzipRequest := strings.Contains(req.Header.Get("Content-Encoding"), "gzip")

		if isGzipRequest && req.Body != nil && req.Body != http.NoBody {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)
		defer gzipWriterPool.Put(gzipWriter)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		next.ServeHTTP(gzipRW, req)

		gzipRW.finish()
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter holds the status back until the first non-empty Write,
// so responses without a body (404, 204, bare WriteHeader) go out unencoded.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	status      int
	wroteHeader bool
	compress    bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader || w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		if len(data) == 0 {
			return 0, nil
		}
		w.sendHeader(true)
	}
	if !w.compress {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) sendHeader(hasBody bool) {
	w.wroteHeader = true
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if hasBody && bodyAllowed(w.status) {
		w.compress = true
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(w.status)
}

// finish flushes a status that was never followed by a body and closes the
// gzip stream when one was started.
func (w *gzipResponseWriter) finish() {
	if !w.wroteHeader {
		w.sendHeader(false)
	}
	if w.compress {
		w.gzipWriter.Close()
	}
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
