package insurer

import (
	"fmt"

	"polisched/internal/pdftext"
)

// Parser names used for registration and reported in parse metadata.
const (
	NameDiscovery = "DiscoveryParser"
	NameHollard   = "HollardParser"
	NameSantam    = "SantamParser"
	NameGeneric   = "GenericParser"
)

var factories = map[string]func() Parser{}

// displayNames maps parser names to the insurer names their output reports.
var displayNames = map[string]string{
	NameDiscovery: "Discovery Insure",
	NameHollard:   "Hollard Insurance",
	NameSantam:    "Santam",
}

// DisplayName returns the insurer name a parser reports in its output, or
// "Unknown" for the generic fallback and unregistered names.
func DisplayName(name string) string {
	if display, ok := displayNames[name]; ok {
		return display
	}
	return "Unknown"
}

// detectOrder fixes the order auto-detection probes insurer parsers,
// independent of package init order. The generic fallback is not probed; it
// accepts everything and only applies when nothing else matched.
var detectOrder = []string{NameDiscovery, NameHollard, NameSantam}

// Register makes a parser constructor available under name. It is called from
// the init function of each parser package and panics on duplicates.
func Register(name string, factory func() Parser) {
	if _, dup := factories[name]; dup {
		panic(fmt.Sprintf("insurer: Register called twice for %s", name))
	}
	factories[name] = factory
}

// New returns a fresh parser instance for name.
func New(name string) (Parser, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("insurer: unknown parser %q", name)
	}
	return factory(), nil
}

// Registered reports whether a parser is registered under name.
func Registered(name string) bool {
	_, ok := factories[name]
	return ok
}

// Detect probes the registered insurer parsers in a fixed order and returns
// the first whose Identify accepts the document together with its registered
// name, falling back to the generic parser. Returns nil only when no parser
// at all is registered.
func Detect(doc *pdftext.Document) (Parser, string) {
	for _, name := range detectOrder {
		factory, ok := factories[name]
		if !ok {
			continue
		}
		p := factory()
		if p.Identify(doc) {
			return p, name
		}
	}
	if factory, ok := factories[NameGeneric]; ok {
		return factory(), NameGeneric
	}
	return nil, ""
}
