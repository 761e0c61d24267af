package abp

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type FieldType int

const (
	TypeInteger FieldType = iota
	TypeWideInteger
	TypeText
	TypeDate
	TypeTime
	TypeTimestamp
	TypeDecimal
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

// FieldSpec describes one positional field of a record shape. Field order is
// fixed by the AddressBase Premium technical specification, never derived
// from a runtime structure.
type FieldSpec struct {
	Name      string
	Type      FieldType
	MaxLen    int // text width, 0 means unbounded
	Precision int // decimal only
	Scale     int // decimal only
	Indexed   bool
}

// Coerce converts raw source text into the field's typed value. The empty
// string always maps to nil regardless of type.
func (f FieldSpec) Coerce(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}

	switch f.Type {
	case TypeInteger, TypeWideInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return v, nil

	case TypeText:
		if f.MaxLen > 0 && len(raw) > f.MaxLen {
			return nil, fmt.Errorf("%q exceeds width %d", raw, f.MaxLen)
		}
		return raw, nil

	case TypeDate:
		v, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a date", raw)
		}
		return v, nil

	case TypeTime:
		v, err := time.Parse(timeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a time", raw)
		}
		micros := int64(v.Hour())*int64(time.Hour/time.Microsecond) +
			int64(v.Minute())*int64(time.Minute/time.Microsecond) +
			int64(v.Second())*int64(time.Second/time.Microsecond)
		return pgtype.Time{Microseconds: micros, Valid: true}, nil

	case TypeTimestamp:
		v, err := time.Parse(timestampLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a timestamp", raw)
		}
		return v, nil

	case TypeDecimal:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a decimal", raw)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("unsupported field type %d", f.Type)
	}
}

func integer(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeInteger}
}

func wideInteger(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeWideInteger}
}

func text(name string, maxLen int) FieldSpec {
	return FieldSpec{Name: name, Type: TypeText, MaxLen: maxLen}
}

func date(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeDate}
}

func timeOfDay(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeTime}
}

func decimal(name string, precision, scale int) FieldSpec {
	return FieldSpec{Name: name, Type: TypeDecimal, Precision: precision, Scale: scale}
}

func indexed(f FieldSpec) FieldSpec {
	f.Indexed = true
	return f
}
