// internal/app/system/storage/storage.go

// Package storage persists uploaded files to the local upload directory.
// The upload middleware delivers a multipart stream; Save writes it under a
// uuid-derived name (original names are untrusted and may collide) and
// returns the metadata the documents collection records.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTooLarge reports an upload above the configured size limit. It is
// the only Save failure the client caused; handlers map it to a 400 and
// treat everything else as a server fault.
var ErrTooLarge = errors.New("file exceeds the upload size limit")

// Local stores files beneath a single root directory.
type Local struct {
	root string
	max  int64
	log  *zap.Logger
}

// StoredFile describes a file after it has been written to disk.
type StoredFile struct {
	FileName string // original client-supplied name
	Path     string // path on disk relative to the process working dir
	Type     string // MIME type as declared by the client
	Size     int64  // bytes written
}

// NewLocal creates the upload root if needed and returns a Local store.
func NewLocal(root string, maxBytes int64, logger *zap.Logger) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("upload directory is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Local{root: root, max: maxBytes, log: logger}, nil
}

// Save streams one multipart file part to disk. The stored name is a uuid
// with the original extension so repeated uploads of "notes.pdf" never
// clobber each other.
func (l *Local) Save(file multipart.File, header *multipart.FileHeader) (StoredFile, error) {
	if l.max > 0 && header.Size > l.max {
		return StoredFile{}, fmt.Errorf("%w (%d byte limit)", ErrTooLarge, l.max)
	}

	stored := uuid.NewString() + filepath.Ext(header.Filename)
	path := filepath.Join(l.root, stored)

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(path)
		return StoredFile{}, fmt.Errorf("write stored file: %w", err)
	}

	l.log.Debug("stored upload",
		zap.String("original", header.Filename),
		zap.String("path", path),
		zap.Int64("bytes", n))

	return StoredFile{
		FileName: header.Filename,
		Path:     path,
		Type:     header.Header.Get("Content-Type"),
		Size:     n,
	}, nil
}

// Remove deletes a stored file. Used when the document record fails to
// persist after the bytes already hit disk.
func (l *Local) Remove(path string) error {
	return os.Remove(path)
}
