package abp

// Record is one mapped source line: the shape it belongs to plus its typed
// field values in shape order. Values hold int64, string, time.Time,
// pgtype.Time or float64; nil marks an absent field.
type Record struct {
	Shape  *RecordShape
	Values []any
}

// FieldError reports one field whose raw text could not be coerced. The
// field is nulled and the record is still produced.
type FieldError struct {
	Field string
	Raw   string
	Err   error
}

// BuildReport carries the diagnostics of one Build call.
type BuildReport struct {
	FieldCountMismatch bool
	ExpectedFields     int
	ActualFields       int
	FieldErrors        []FieldError
}

// Build maps raw positional fields onto a shape. Raw fields pair with the
// shape's fields by position; when the counts differ only the overlapping
// prefix is mapped, extras are dropped, missing trail as nil, and the
// mismatch is surfaced in the report.
func Build(shape *RecordShape, rawFields []string) (*Record, BuildReport) {
	report := BuildReport{
		ExpectedFields: len(shape.Fields),
		ActualFields:   len(rawFields),
	}
	if len(rawFields) != len(shape.Fields) {
		report.FieldCountMismatch = true
	}

	values := make([]any, len(shape.Fields))
	for i, spec := range shape.Fields {
		if i >= len(rawFields) {
			break
		}

		v, err := spec.Coerce(rawFields[i])
		if err != nil {
			report.FieldErrors = append(report.FieldErrors, FieldError{
				Field: spec.Name,
				Raw:   rawFields[i],
				Err:   err,
			})
			continue
		}
		values[i] = v
	}

	return &Record{Shape: shape, Values: values}, report
}
