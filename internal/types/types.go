// Package types provides domain models shared across translit components.
//
// Rule kinds, directions, the Rule capability interfaces, the build-time
// symbol table and the resource-store contract live here so that the per-kind
// parsers under internal/rules/... and the compiler in internal/rules can
// depend on them without depending on each other.
package types

import "strings"

// RuleKind classifies a single line of rule text.
type RuleKind int

const (
	KindVariable RuleKind = iota
	KindFilter
	KindTransform
	KindConversion
)

func (k RuleKind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFilter:
		return "filter"
	case KindTransform:
		return "transform"
	case KindConversion:
		return "conversion"
	}
	return "unknown"
}

// Direction tells whether a transform may be inverted.
type Direction int

const (
	Forward Direction = iota
	Bidirectional
)

func (d Direction) String() string {
	if d == Bidirectional {
		return "both"
	}
	return "forward"
}

// ParseDirection maps resource metadata to a Direction.
// Only "both" yields Bidirectional; anything else is Forward.
func ParseDirection(s string) Direction {
	if strings.TrimSpace(s) == "both" {
		return Bidirectional
	}
	return Forward
}

// Resource location of compiled transforms in the data store.
const (
	NamespaceShared    = "shared"
	CategoryTransforms = "transforms"
)

// TransformSource is one transform definition inside a resource.
type TransformSource struct {
	Source    string   `yaml:"source" json:"source" db:"source"`
	Target    string   `yaml:"target" json:"target" db:"target"`
	Variant   string   `yaml:"variant" json:"variant" db:"variant"`
	Direction string   `yaml:"direction" json:"direction" db:"direction"`
	Rules     []string `yaml:"rules" json:"rules" db:"-"`
}

// Resource is the data store's view of a named transform resource.
// Only the first entry of Transforms is compiled.
type Resource struct {
	Transforms []TransformSource `yaml:"transforms" json:"transforms"`
}
