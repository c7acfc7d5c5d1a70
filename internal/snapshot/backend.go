package snapshot

import (
	"context"
	"errors"
)

// ErrNoSnapshot means the named document has never been written.
var ErrNoSnapshot = errors.New("snapshot does not exist")

// Backend stores whole documents by name. Write replaces the previous
// document; no partial or atomic update is promised.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}
