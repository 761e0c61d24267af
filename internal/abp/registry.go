package abp

import "strings"

// RecordShape is the ordered field schema behind one discriminator code.
// Shapes are immutable once constructed.
type RecordShape struct {
	Code   string
	Name   string
	Table  string
	Ignore bool
	Fields []FieldSpec
}

// Columns returns the database column names for the shape's fields, in
// field order.
func (s *RecordShape) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = strings.ToLower(f.Name)
	}
	return cols
}

// Registry is the static catalog of record shapes keyed by discriminator
// code. It is built once at startup and safe for concurrent readers.
type Registry struct {
	byCode map[string]*RecordShape
	order  []*RecordShape
}

func NewRegistry(shapes ...*RecordShape) *Registry {
	r := &Registry{
		byCode: make(map[string]*RecordShape, len(shapes)),
		order:  make([]*RecordShape, 0, len(shapes)),
	}
	for _, s := range shapes {
		r.byCode[s.Code] = s
		r.order = append(r.order, s)
	}
	return r
}

// Lookup resolves a discriminator code. Unknown codes are a normal outcome,
// reported through ok, not an error.
func (r *Registry) Lookup(code string) (shape *RecordShape, ok bool) {
	shape, ok = r.byCode[code]
	return shape, ok
}

// Shapes returns the catalog in registration order.
func (r *Registry) Shapes() []*RecordShape {
	return r.order
}
