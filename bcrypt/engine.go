package bcrypt

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configures an [Engine]. The zero value is valid and equivalent to
// [DefaultOptions].
type Options struct {
	// Version is the tag written into new hashes. Empty means DefaultVersion.
	Version Version

	// Rand is the salt source. Nil means crypto/rand.Reader. A custom reader
	// must be safe for concurrent use if the Engine is shared.
	Rand io.Reader
}

// DefaultOptions returns Options producing "2b" hashes salted from
// crypto/rand.
func DefaultOptions() Options {
	return Options{Version: DefaultVersion, Rand: rand.Reader}
}

// Engine produces bcrypt hashes with a fixed version tag and salt source.
//
// An Engine is immutable after construction and safe for concurrent use; each
// call allocates its own cipher state.
type Engine struct {
	version Version
	rand    io.Reader
}

// NewEngine constructs an Engine. Returns [ErrUnsupportedVersion] for
// unknown version tags.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if !opts.Version.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, opts.Version)
	}
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	return &Engine{version: opts.Version, rand: opts.Rand}, nil
}

var std = &Engine{version: DefaultVersion, rand: rand.Reader}

// Version returns the tag written into hashes made by e.
func (e *Engine) Version() Version { return e.version }

// Hash hashes password at the given cost with a fresh 16-byte salt.
//
// Cost and password length are validated before the salt is drawn.
func (e *Engine) Hash(password []byte, cost int) (string, error) {
	c, err := newComputation(e.version, cost)
	if err != nil {
		return "", err
	}
	if err := checkPassword(password); err != nil {
		return "", err
	}
	if err := c.generateSalt(e.rand); err != nil {
		return "", err
	}
	return finish(c, password)
}

// HashWithSalt hashes password with an explicit salt. The output is fully
// determined by its inputs; use it for test vectors and reproducible
// fixtures, never to store real passwords.
func (e *Engine) HashWithSalt(password []byte, cost int, salt []byte) (string, error) {
	c, err := newComputation(e.version, cost)
	if err != nil {
		return "", err
	}
	if err := checkPassword(password); err != nil {
		return "", err
	}
	if err := c.useSalt(salt); err != nil {
		return "", err
	}
	return finish(c, password)
}

func finish(c *computation, password []byte) (string, error) {
	if err := c.scheduleKey(password); err != nil {
		return "", err
	}
	c.computeDigest()
	return c.encode(), nil
}

// HashContext is [Engine.Hash] for callers that must stop waiting. The cost
// loop itself cannot be interrupted, so it runs on a separate goroutine; if
// ctx ends first HashContext returns ctx.Err() and the eventual hash is
// discarded.
func (e *Engine) HashContext(ctx context.Context, password []byte, cost int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		hash string
		err  error
	}
	done := make(chan result, 1)

	// The worker may outlive this call; give it a private copy.
	pw := bytes.Clone(password)
	go func() {
		h, err := e.Hash(pw, cost)
		clear(pw)
		done <- result{h, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.hash, r.err
	}
}

// HashAll hashes every password at cost, running up to GOMAXPROCS hashes at
// once. The result has the same order as passwords. The first failure
// stops items that have not started yet and is returned along with its
// index.
func (e *Engine) HashAll(ctx context.Context, passwords [][]byte, cost int) ([]string, error) {
	if err := checkCost(cost); err != nil {
		return nil, err
	}

	hashes := make([]string, len(passwords))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pw := range passwords {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := e.Hash(pw, cost)
			if err != nil {
				return fmt.Errorf("bcrypt: password %d: %w", i, err)
			}
			hashes[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}

// Hash hashes password at cost with a fresh salt using the default engine
// ("2b" tag, crypto/rand salt).
func Hash(password []byte, cost int) (string, error) {
	return std.Hash(password, cost)
}

// HashWithSalt hashes password with an explicit salt using the default
// engine. See [Engine.HashWithSalt].
func HashWithSalt(password []byte, cost int, salt []byte) (string, error) {
	return std.HashWithSalt(password, cost, salt)
}

// HashContext is [Engine.HashContext] on the default engine.
func HashContext(ctx context.Context, password []byte, cost int) (string, error) {
	return std.HashContext(ctx, password, cost)
}

// HashAll is [Engine.HashAll] on the default engine.
func HashAll(ctx context.Context, passwords [][]byte, cost int) ([]string, error) {
	return std.HashAll(ctx, passwords, cost)
}
