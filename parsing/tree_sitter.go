// Package parsing turns source code into the declaration events that build a
// symbol table
//
// Source is parsed with tree-sitter's Java grammar, and the tree is walked in
// document order
package parsing

import (
	"context"
	"fmt"

	"github.com/NickyBoy89/classcheck/collector"
	"github.com/NickyBoy89/classcheck/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Parse parses the source code into a tree-sitter tree
func Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	return tree, nil
}

// Emitter receives each event as it is found. Returning an error stops the walk
type Emitter func(ev collector.Event) error

// Option configures a walk
type Option func(w *walker)

// WithLogger sends warnings about the source to the given logger, instead of
// the standard logger
func WithLogger(logger log.FieldLogger) Option {
	return func(w *walker) {
		w.logger = logger
	}
}

// Stream parses the source code, and hands every event to `emit` while the
// tree is being walked
func Stream(ctx context.Context, source []byte, emit Emitter, options ...Option) error {
	tree, err := Parse(ctx, source)
	if err != nil {
		return err
	}
	root := tree.RootNode()
	if err := nodeutil.AssertTypeIs(root, "program"); err != nil {
		return err
	}
	return Walk(root, source, emit, options...)
}

// Events parses the source code and returns all of its events, in order
func Events(ctx context.Context, source []byte, options ...Option) ([]collector.Event, error) {
	var events []collector.Event
	err := Stream(ctx, source, func(ev collector.Event) error {
		events = append(events, ev)
		return nil
	}, options...)
	if err != nil {
		return nil, err
	}
	return events, nil
}
