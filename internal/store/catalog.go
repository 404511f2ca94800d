package store

import (
	"context"
	"path"
)

// listPrefix enumerates every object under "{prefix}/", or the whole
// bucket when prefix is empty, and maps each to a FileInfo.
func (s *Service) listPrefix(ctx context.Context, prefix string) ([]FileInfo, error) {
	if prefix != "" {
		prefix += "/"
	}

	attrs, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(attrs))
	for _, a := range attrs {
		infos = append(infos, s.fileInfo(a))
	}
	return infos, nil
}

func (s *Service) fileInfo(a ObjectAttrs) FileInfo {
	// Custom metadata wins over the backend-reported content type.
	fileType := a.Metadata["type"]
	if fileType == "" {
		fileType = a.ContentType
	}
	if fileType == "" {
		fileType = defaultContentType
	}

	return FileInfo{
		URL:  EncodeURL(s.bucket, a.Key),
		Name: path.Base(a.Key),
		Type: fileType,
		Path: a.Key,
	}
}
