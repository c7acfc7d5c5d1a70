package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"skill-manager/internal/domain"
	"skill-manager/internal/store"

	"go.uber.org/zap"
)

type Policy string

const (
	// PolicyCommand loads once, runs one command and saves once on success.
	PolicyCommand Policy = "command"
	// PolicySession saves only when the session is released.
	PolicySession Policy = "session"
	// PolicyMutation is PolicySession plus a save after every mutation.
	PolicyMutation Policy = "mutation"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyCommand, PolicySession, PolicyMutation:
		return p, nil
	default:
		return "", fmt.Errorf("unknown checkpoint policy %q", s)
	}
}

type document interface {
	name() string
	revision() uint64
	load(ctx context.Context, b Backend) error
	save(ctx context.Context, b Backend) (int, error)
}

type storeDocument[K Key, V Record[K]] struct {
	docName string
	store   *store.Memory[K, V]
	parse   func(string) (K, error)
}

func (d *storeDocument[K, V]) name() string { return d.docName }

func (d *storeDocument[K, V]) revision() uint64 { return d.store.Revision() }

func (d *storeDocument[K, V]) load(ctx context.Context, b Backend) error {
	data, err := b.Read(ctx, d.docName)
	if errors.Is(err, ErrNoSnapshot) {
		d.store.Replace(nil)
		return nil
	}
	if err != nil {
		return &domain.PersistenceError{Op: "read", Document: d.docName, Err: err}
	}

	entries, err := Decode[K, V](d.docName, data, d.parse)
	if err != nil {
		return err
	}
	d.store.Replace(entries)
	return nil
}

func (d *storeDocument[K, V]) save(ctx context.Context, b Backend) (int, error) {
	data, err := Encode(d.docName, d.store.Entries())
	if err != nil {
		return 0, err
	}
	if err := b.Write(ctx, d.docName, data); err != nil {
		return 0, &domain.PersistenceError{Op: "write", Document: d.docName, Err: err}
	}
	return len(data), nil
}

// Checkpointer ties stores to snapshot documents and decides when they are
// written back.
type Checkpointer struct {
	mu      sync.Mutex
	backend Backend
	policy  Policy
	logger  *zap.Logger
	docs    []document
	saved   map[string]uint64
}

func NewCheckpointer(backend Backend, policy Policy, logger *zap.Logger) *Checkpointer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checkpointer{
		backend: backend,
		policy:  policy,
		logger:  logger,
		saved:   map[string]uint64{},
	}
}

// Register adds s as the document called name. parse turns a document key
// back into a store key.
func Register[K Key, V Record[K]](c *Checkpointer, name string, s *store.Memory[K, V], parse func(string) (K, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, &storeDocument[K, V]{docName: name, store: s, parse: parse})
}

func (c *Checkpointer) Policy() Policy {
	if c == nil {
		return ""
	}
	return c.policy
}

// LoadAll replaces every registered store with its document. A missing
// document loads as an empty store; any other failure is fatal.
func (c *Checkpointer) LoadAll(ctx context.Context) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		if err := d.load(ctx, c.backend); err != nil {
			return err
		}
		c.saved[d.name()] = d.revision()
		c.logger.Debug("snapshot loaded", zap.String("document", d.name()))
	}
	return nil
}

// Flush writes every document whose store changed since it was last
// loaded or saved.
func (c *Checkpointer) Flush(ctx context.Context) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		rev := d.revision()
		if last, ok := c.saved[d.name()]; ok && last == rev {
			continue
		}
		n, err := d.save(ctx, c.backend)
		if err != nil {
			return err
		}
		c.saved[d.name()] = rev
		c.logger.Debug("snapshot saved",
			zap.String("document", d.name()),
			zap.Int("bytes", n),
			zap.Uint64("revision", rev),
		)
	}
	return nil
}

// Dirty lists the documents Flush would write.
func (c *Checkpointer) Dirty() []string {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string
	for _, d := range c.docs {
		if last, ok := c.saved[d.name()]; !ok || last != d.revision() {
			out = append(out, d.name())
		}
	}
	return out
}

// Mutated is called after each successful mutation.
func (c *Checkpointer) Mutated(ctx context.Context) error {
	if c == nil || c.policy != PolicyMutation {
		return nil
	}
	return c.Flush(ctx)
}
