package demodb

import "github.com/gofrs/uuid"

// GenerateID returns a fresh UUID string for caller-generated record
// IDs. The store trusts whatever IDs it is handed; nothing checks
// uniqueness.
func GenerateID() string {
	return uuid.Must(uuid.NewV4()).String()
}
