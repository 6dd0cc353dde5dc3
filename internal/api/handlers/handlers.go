// Package handlers exposes the planning services over HTTP.
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/ingest"
	"github.com/freshbites/planner/backend-go/internal/storage"
)

// Uploads receives dataset files, keeps a copy under the upload dir and
// archives them to object storage when that is enabled.
type Uploads struct {
	Dir     string
	Archive storage.ObjectStorage
}

func NewUploads(dir string, archive storage.ObjectStorage) *Uploads {
	if archive == nil {
		archive = storage.NewNoopStorage()
	}
	return &Uploads{Dir: dir, Archive: archive}
}

// ReadTable pulls the "file" part out of a multipart request and parses it
// as a CSV or XLSX table. The saved copy and the archive are best-effort.
func (u *Uploads) ReadTable(c *gin.Context) (*ingest.Table, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, &domain.ValidationError{Dataset: "upload", Reason: "no file provided"}
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", header.Filename, err)
	}

	name := filepath.Base(header.Filename)
	if u.Dir != "" {
		path := filepath.Join(u.Dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("could not save upload")
		}
	}

	key := time.Now().UTC().Format("2006/01/02") + "/" + name
	if err := u.Archive.Put(c.Request.Context(), key, bytes.NewReader(data), int64(len(data)), contentTypeFor(name)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not archive upload")
	}

	return ingest.ReadTable(bytes.NewReader(data), name)
}

func contentTypeFor(name string) string {
	if filepath.Ext(name) == ".xlsx" {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// respondError maps error kinds to HTTP statuses. Bad datasets and bad
// parameters are the caller's fault; everything else is ours.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSolverFailed):
		log.Error().Err(err).Msg("optimization failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
