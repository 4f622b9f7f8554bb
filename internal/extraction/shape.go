package extraction

import "slices"

type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	default:
		return "string"
	}
}

const (
	Unknown     = "N/A"
	ZeroCounter = "0"
)

// Field declares one output field. Labels holds canonical label keys, primary
// first and fallbacks after it, in resolution order. A field without labels
// resolves by its own name.
type Field struct {
	Name    string
	Kind    Kind
	Labels  []string
	Default string
}

func (f Field) candidates() []string {
	if len(f.Labels) == 0 {
		return []string{f.Name}
	}
	return f.Labels
}

// Shape is the ordered, declared set of fields for one record kind.
type Shape struct {
	Name   string
	Fields []Field
}

func (s *Shape) FieldNames() []string {
	out := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		out = append(out, field.Name)
	}
	return out
}

func (s *Shape) Defaults() Record {
	rec := Record{shape: s, values: make([]string, len(s.Fields))}
	for i, field := range s.Fields {
		rec.values[i] = field.Default
	}
	return rec
}

// Record holds one value per shape field, in declared order.
type Record struct {
	shape  *Shape
	values []string
}

func (r Record) Shape() *Shape {
	return r.shape
}

func (r Record) Get(name string) string {
	if r.shape == nil {
		return ""
	}
	idx := slices.IndexFunc(r.shape.Fields, func(f Field) bool { return f.Name == name })
	if idx < 0 {
		return ""
	}
	return r.values[idx]
}

func (r Record) Values() []string {
	return slices.Clone(r.values)
}

// Map returns the record as field name to value.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	if r.shape == nil {
		return out
	}
	for i, field := range r.shape.Fields {
		out[field.Name] = r.values[i]
	}
	return out
}

// IsDefault reports whether every field still holds its declared default.
func (r Record) IsDefault() bool {
	if r.shape == nil {
		return true
	}
	for i, field := range r.shape.Fields {
		if r.values[i] != field.Default {
			return false
		}
	}
	return true
}
