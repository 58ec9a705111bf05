package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"inflect/internal/config"
	"inflect/internal/logging"
	"inflect/pkg/inflection"
)

type operation struct {
	name    string
	aliases []string
	apply   func(inf *inflection.Inflector, opts config.TransformConfig, s string) string
}

var operations = []operation{
	{name: "plural", aliases: []string{"pluralize"}, apply: func(inf *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inf.Plural(s)
	}},
	{name: "singular", aliases: []string{"singularize"}, apply: func(inf *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inf.Singular(s)
	}},
	{name: "camel", apply: func(_ *inflection.Inflector, opts config.TransformConfig, s string) string {
		return inflection.CamelCase(s, opts.Upper)
	}},
	{name: "pascal", apply: func(_ *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inflection.PascalCase(s)
	}},
	{name: "title", apply: func(inf *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inf.TitleCase(s)
	}},
	{name: "underscore", aliases: []string{"snake"}, apply: func(_ *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inflection.Underscore(s)
	}},
	{name: "dash", aliases: []string{"dasherize"}, apply: func(_ *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inflection.Dasherize(s)
	}},
	{name: "humanize", apply: func(_ *inflection.Inflector, opts config.TransformConfig, s string) string {
		return inflection.Humanize(s, opts.StartLowercase)
	}},
	{name: "capitalize", apply: func(_ *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inflection.Capitalize(s)
	}},
	{name: "table", apply: func(inf *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inf.TableName(s)
	}},
	{name: "class", apply: func(inf *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inf.ClassName(s)
	}},
	{name: "foreign-key", aliases: []string{"fk"}, apply: func(inf *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inf.ForeignKey(s)
	}},
	{name: "ordinals", aliases: []string{"ordinalize"}, apply: func(_ *inflection.Inflector, _ config.TransformConfig, s string) string {
		return inflection.Ordinalize(s)
	}},
}

func lookupOperation(name string) (operation, bool) {
	name = strings.ToLower(name)
	for _, op := range operations {
		if op.name == name {
			return op, true
		}
		for _, alias := range op.aliases {
			if alias == name {
				return op, true
			}
		}
	}
	return operation{}, false
}

func operationNames() string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.name
	}
	return strings.Join(names, ", ")
}

// transformer applies one operation to each input and writes one result
// per line.
type transformer struct {
	op   operation
	inf  *inflection.Inflector
	opts config.TransformConfig
}

func (t transformer) transform(ctx context.Context, in string) string {
	out := t.op.apply(t.inf, t.opts, in)
	logging.FromContext(ctx).Debug("transformed",
		slog.String("input", in),
		slog.String("output", out),
	)
	return out
}

func (t transformer) words(ctx context.Context, words []string, w io.Writer) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, t.transform(ctx, word)); err != nil {
			return err
		}
	}
	return nil
}

func (t transformer) lines(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, t.transform(ctx, scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
