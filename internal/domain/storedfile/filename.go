package storedfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bank-docs-api/internal/domain/user"
)

// Stored filenames follow the wire contract "{ownerId}-{epochMillis}{ext}".
// Clients parse the owner by taking the substring before the first '-',
// so the format cannot change without a migration. Generation and parsing
// live together here so they cannot diverge.

var ErrMalformedFilename = errors.New("malformed stored filename")

// NewFilename builds the external identifier for a file owned by ownerID.
// ext must include the leading dot (".jpg") or be empty.
func NewFilename(ownerID user.ID, now time.Time, ext string) string {
	return fmt.Sprintf("%d-%d%s", ownerID, now.UnixMilli(), strings.ToLower(ext))
}

// ParseOwnerID extracts the owning user id from a stored filename.
func ParseOwnerID(filename string) (user.ID, error) {
	prefix, rest, found := strings.Cut(filename, "-")
	if !found || rest == "" {
		return 0, ErrMalformedFilename
	}
	id, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrMalformedFilename
	}
	return user.ID(id), nil
}
