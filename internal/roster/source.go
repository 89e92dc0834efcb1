package roster

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JaimeStill/studize/pkg/storage"
)

// Stamp identifies one version of a workbook. Two stamps with the same
// Identity describe the same content.
type Stamp struct {
	Identity string
	Size     int64
	Modified time.Time
}

// Source is where the workbook lives.
type Source interface {
	// Name describes the source for logs and API responses.
	Name() string
	// Format returns FormatXLSX or FormatCSV.
	Format() string
	// Stat returns the current version stamp without reading content.
	Stat(ctx context.Context) (Stamp, error)
	// Open streams the workbook content. The caller closes the reader.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the workbook from the local filesystem. Its identity is
// the path plus size and modification time.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Format() string { return DetectFormat(s.Path) }

func (s FileSource) Stat(ctx context.Context) (Stamp, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return Stamp{}, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if info.IsDir() {
		return Stamp{}, fmt.Errorf("%w: %s is a directory", ErrDataSource, s.Path)
	}
	return Stamp{
		Identity: fmt.Sprintf("%s@%d:%d", s.Path, info.Size(), info.ModTime().UnixNano()),
		Size:     info.Size(),
		Modified: info.ModTime(),
	}, nil
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return f, nil
}

// BlobSource reads the workbook from blob storage. Its identity is the key
// plus the blob ETag.
type BlobSource struct {
	Store storage.System
	Key   string
}

func (s BlobSource) Name() string { return "blob:" + s.Key }

func (s BlobSource) Format() string { return DetectFormat(s.Key) }

func (s BlobSource) Stat(ctx context.Context) (Stamp, error) {
	info, err := s.Store.Properties(ctx, s.Key)
	if err != nil {
		return Stamp{}, blobError(err)
	}
	return Stamp{
		Identity: s.Key + "@" + info.ETag,
		Size:     info.Size,
		Modified: info.LastModified,
	}, nil
}

func (s BlobSource) Open(ctx context.Context) (io.ReadCloser, error) {
	body, err := s.Store.Download(ctx, s.Key)
	if err != nil {
		return nil, blobError(err)
	}
	return body, nil
}

func blobError(err error) error {
	return fmt.Errorf("%w: %w", ErrDataSource, err)
}
