package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campusplacement/portal/internal/pkg/logger"
)

// LocalStorage saves uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // base URL prepended to returned paths
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// optional; when set it is prepended to the relative paths FileURL returns.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stores an uploaded file under the given subdirectory with a
// uuid-based name and returns the storage-relative path.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("file header is nil")
	}

	dir := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		// Best effort cleanup of the partial file
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write file %s: %w", dst, err)
	}

	relPath := filepath.ToSlash(filepath.Join(subPath, name))
	logger.Info().Str("path", relPath).Int64("size", fileHeader.Size).Msg("File stored")
	return relPath, nil
}

// DeleteFile removes a previously stored file by its storage-relative path.
// A missing file is not an error.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}

	full := filepath.Join(ls.basePath, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", relPath, err)
	}
	return nil
}

// FileURL returns the externally visible URL for a storage-relative path.
func (ls *LocalStorage) FileURL(relPath string) string {
	if relPath == "" || ls.baseURL == "" {
		return relPath
	}
	return strings.TrimSuffix(ls.baseURL, "/") + "/" + relPath
}
