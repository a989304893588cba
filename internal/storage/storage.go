// Package storage wraps the object store that holds portfolio images.
package storage

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tenthouse_backend/pkg/utils"

	"github.com/google/uuid"
)

// ErrBucketNotFound signals that the configured bucket does not exist.
// Handlers surface this with an operator-facing diagnostic, since the fix
// (create the bucket) lives outside the application.
var ErrBucketNotFound = errors.New("storage bucket not found")

// ObjectStorage is the boundary to the object store. Key uniqueness is the
// uploader's responsibility; use MakeObjectKey.
type ObjectStorage interface {
	// Upload stores the object under key and returns its publicly resolvable URL.
	Upload(key string, r io.Reader) (string, error)
	// Remove deletes the object. Removing an already-missing object is not an error.
	Remove(key string) error
	// KeyFromURL derives the object key from a public URL previously returned
	// by Upload. The second return is false when the URL does not belong to
	// this store.
	KeyFromURL(publicURL string) (string, bool)
}

// MakeObjectKey builds a collision-resistant object key from an uploaded
// file's original name: millisecond timestamp, a random token, and the
// sanitized name.
func MakeObjectKey(fileName string) string {
	clean := utils.SanitizeFileName(fileName)
	if clean == "" {
		clean = "upload"
	}
	token := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), token, clean)
}
