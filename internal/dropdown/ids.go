package dropdown

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh identifier for each overlay instance. The
// identifier keys the instance's style scope and highlight class.
type IDGenerator func() string

// UUIDs draws identifiers from random UUIDs.
func UUIDs() string {
	return uuid.NewString()
}

// Sequential returns a generator yielding prefix1, prefix2, and so on.
func Sequential(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}
