// Package executor defines the contract between a generated plan and
// whatever applies it to a host.
//
// The plan generator knows nothing about transports. A Target may run
// commands over SSH, in a local shell, or record them for inspection —
// the plan is identical either way.
package executor

import (
	"context"
	"fmt"

	"github.com/isabella232/flocker/internal/effect"
)

// Target applies individual effects to a host.
type Target interface {
	// Run executes a shell command on the host and returns an error if
	// it exits non-zero.
	Run(ctx context.Context, command string) error

	// Put writes content to an absolute path on the host, creating
	// parent directories as needed and overwriting existing content.
	Put(ctx context.Context, content, path string) error
}

// Apply applies every effect of a sequence to the target in order,
// stopping at the first error.
func Apply(ctx context.Context, target Target, seq effect.Sequence) error {
	for _, e := range seq {
		var err error
		switch e := e.(type) {
		case effect.Run:
			err = target.Run(ctx, e.Command)
		case effect.Put:
			err = target.Put(ctx, e.Content, e.Path)
		case effect.Sequence:
			err = Apply(ctx, target, e)
		default:
			err = fmt.Errorf("unknown effect type %T", e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Recorder is an in-memory Target that records applied effects in
// order. Useful for tests and dry-run output.
type Recorder struct {
	Applied effect.Sequence
}

func (r *Recorder) Run(ctx context.Context, command string) error {
	r.Applied = append(r.Applied, effect.Run{Command: command})
	return nil
}

func (r *Recorder) Put(ctx context.Context, content, path string) error {
	r.Applied = append(r.Applied, effect.Put{Content: content, Path: path})
	return nil
}
