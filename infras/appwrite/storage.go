package appwrite

import (
	"net/url"
	"strings"

	"restate/config"
)

// Storage builds URLs for files held in the configured bucket. Asset
// upload and transformation stay on the backend; the client only needs
// stable view URLs for image references.
type Storage struct {
	client   *Client
	bucketID string
}

func NewStorage(client *Client, cfg *config.Config) *Storage {
	return &Storage{
		client:   client,
		bucketID: cfg.Appwrite.BucketID,
	}
}

// GetFileView returns the URL serving the raw content of a stored file.
func (s *Storage) GetFileView(fileID string) string {
	query := url.Values{}
	query.Set("project", s.client.Project())

	return s.client.Endpoint() + "/storage/buckets/" + url.PathEscape(s.bucketID) + "/files/" + url.PathEscape(fileID) + "/view?" + query.Encode()
}

// ResolveURL expands a bare file id into its view URL. References that
// are already absolute URLs pass through unchanged.
func (s *Storage) ResolveURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	return s.GetFileView(ref)
}
