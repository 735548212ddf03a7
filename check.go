package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NickyBoy89/classcheck/collector"
	"github.com/NickyBoy89/classcheck/diagnostic"
	"github.com/NickyBoy89/classcheck/parsing"
	"github.com/NickyBoy89/classcheck/symbol"
	"github.com/NickyBoy89/classcheck/validate"
	log "github.com/sirupsen/logrus"
)

// Report is everything found while checking a single program
type Report struct {
	Table *symbol.Table
	// Classes and interfaces that were declared more than once
	Redefinitions []diagnostic.Diagnostic
	Result        validate.Result
}

// Sections lists the declaration findings first, then the output of every
// validation pass in the order they ran
func (r Report) Sections() []diagnostic.Section {
	return append([]diagnostic.Section{
		{Name: "declarations", Diagnostics: r.Redefinitions},
	}, r.Result.Sections()...)
}

// Check parses the source, collects its declarations while the tree is being
// walked, and then validates the finished symbol table
//
// A malformed program stops before anything is validated
func Check(ctx context.Context, source []byte, logger log.FieldLogger) (*Report, error) {
	table := symbol.NewTable()
	c := collector.New(table, collector.WithLogger(logger))

	if err := parsing.Stream(ctx, source, c.Apply, parsing.WithLogger(logger)); err != nil {
		return nil, err
	}

	return &Report{
		Table:         table,
		Redefinitions: c.Redefinitions(),
		Result:        validate.Validate(table),
	}, nil
}

// CheckFile reads a source file and checks it
func CheckFile(ctx context.Context, path string, logger log.FieldLogger) (*Report, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	logger.WithField("file", path).Debug("Started checking file")
	report, err := Check(ctx, source, logger)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return report, nil
}
