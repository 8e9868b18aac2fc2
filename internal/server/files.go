package server

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
)

// serveFile serves rel from under root. The resolved path must stay inside
// root; anything escaping it is forbidden. Error responses never include
// internal filesystem paths.
func serveFile(w http.ResponseWriter, root, rel string) {
	if rel == "" {
		http.Error(w, "Missing file", http.StatusNotFound)
		return
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	target := filepath.Join(rootAbs, filepath.FromSlash(rel))
	if target != rootAbs && !strings.HasPrefix(target, rootAbs+string(os.PathSeparator)) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	data, err := os.ReadFile(target)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFs).Errorf("failed to read artifact: %v", err)
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(target))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func contentTypeFor(path string) string {
	ctype := mime.TypeByExtension(filepath.Ext(path))
	if ctype == "" {
		return "application/octet-stream"
	}
	if (strings.HasPrefix(ctype, "text/") || strings.HasPrefix(ctype, "application/json")) &&
		!strings.Contains(ctype, "charset") {
		ctype += "; charset=utf-8"
	}
	return ctype
}
