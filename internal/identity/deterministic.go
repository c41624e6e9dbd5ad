package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// FileUUID identifies a source file within the manifest store.
func FileUUID(path string) uuid.UUID {
	return UUID("go-docgen:file:" + strings.TrimSpace(path))
}

// RunUUID identifies a generation run by its inputs so identical runs report
// identical identifiers.
func RunUUID(dir, pattern string, files []string) uuid.UUID {
	return UUID("go-docgen:run:" + strings.TrimSpace(dir) + ":" + strings.TrimSpace(pattern) + ":" + strings.Join(files, ","))
}
