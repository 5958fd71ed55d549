package pdfgen

import (
	"fmt"
	"strings"
)

// DefaultDelimiter joins multi-value options that do not declare their own.
const DefaultDelimiter = ","

// OptionSpec describes one entry of an option schema.
type OptionSpec struct {
	// AliasFor names another entry this one resolves to. Resolution follows
	// chains until an entry without AliasFor is reached. Chains must
	// terminate; cycles are a programmer error and are not checked.
	AliasFor string

	// Delimiter joins multiple values for this option.
	// Empty means DefaultDelimiter.
	Delimiter string
}

// Schema maps option names to their specs. A Schema is static
// configuration: built once, never mutated afterwards.
type Schema map[string]OptionSpec

// DefaultSchema lists every option the pdfgen converter accepts. Entries
// without an explicit delimiter join multi-values with a comma.
var DefaultSchema = Schema{
	"maxpages":              {},
	"underlay":              {Delimiter: " "},
	"overlay":               {Delimiter: " "},
	"import":                {},
	"zoom-factor":           {},
	"dump-static-html":      {},
	"use-system-proxy":      {},
	"remote-content":        {},
	"licenseserver":         {},
	"lsmessage":             {},
	"timeout-licenseserver": {},
	"licensetype":           {},
}

// Option is one named option with its values. Nil Values means a bare flag
// emitted without a value; an explicit empty slice encodes as an empty
// quoted value.
type Option struct {
	Name   string
	Values []string
}

// Options is an ordered option list. Encoding preserves this order, so
// identical inputs always produce byte-identical command lines.
type Options []Option

// Opt builds a valued option.
func Opt(name string, values ...string) Option {
	return Option{Name: name, Values: values}
}

// Flag builds a bare flag with no value.
func Flag(name string) Option {
	return Option{Name: name}
}

// resolve follows alias links to the terminal entry.
//
// Only validation and the delimiter come from the terminal entry; the
// requested name is what gets emitted. Surprising, but compatibility
// depends on it: a schema that aliases options with differing delimiters
// relies on the emitted name staying as requested.
func (s Schema) resolve(name string) (OptionSpec, error) {
	spec, ok := s[name]
	if !ok {
		return OptionSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedOption, name)
	}
	for spec.AliasFor != "" {
		next, ok := s[spec.AliasFor]
		if !ok {
			return OptionSpec{}, fmt.Errorf("%w: %q (alias target %q)", ErrUnsupportedOption, name, spec.AliasFor)
		}
		spec = next
	}
	return spec, nil
}

// Encode renders one option as a single argument-vector token.
//
// Names of exactly one character use the short form ("-n", `-n "v"`); all
// other names use the long form ("--name", `--name="v"`). Multi-values are
// joined with the option's delimiter. The token shapes match what the
// converter's own argument parser expects; tokens are handed to the process
// directly and never pass through a shell. Embedded double quotes in values
// are not escaped — a known limitation kept for compatibility with the
// converter's parser.
func (s Schema) Encode(name string, values []string) (string, error) {
	spec, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	short := len(name) == 1
	prefix := "--"
	if short {
		prefix = "-"
	}

	if values == nil {
		return prefix + name, nil
	}

	delim := spec.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}
	joined := strings.Join(values, delim)

	if short {
		return fmt.Sprintf(`%s%s "%s"`, prefix, name, joined), nil
	}
	return fmt.Sprintf(`%s%s="%s"`, prefix, name, joined), nil
}

// EncodeAll renders every option, in order, as argument-vector tokens.
func (s Schema) EncodeAll(opts Options) ([]string, error) {
	tokens := make([]string, 0, len(opts))
	for _, o := range opts {
		tok, err := s.Encode(o.Name, o.Values)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
