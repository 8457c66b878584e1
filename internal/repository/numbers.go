// filepath: internal/repository/numbers.go
package repository

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// newNumber generates a prefixed, sortable business number such as
// "PAT-01J8ZK...". ULIDs keep numbers unique without a counter table.
func newNumber(prefix string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	return fmt.Sprintf("%s-%s", prefix, id.String())
}
