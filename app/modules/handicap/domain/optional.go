package handicapdomain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NoData is how a missing value is rendered. It is never the same thing as zero.
const NoData = "—"

var jsonNull = []byte("null")

// Optional is a whole-stroke value (course handicap, net score, best score)
// that may be absent.
type Optional struct {
	Value int
	Valid bool
}

// Some wraps a present value.
func Some(v int) Optional {
	return Optional{Value: v, Valid: true}
}

// None returns the no-data value.
func None() Optional {
	return Optional{}
}

func (o Optional) String() string {
	if !o.Valid {
		return NoData
	}
	return strconv.Itoa(o.Value)
}

// Less orders present values ascending and sorts absent values after every
// present one, so no-data behaves like +Inf in rankings.
func (o Optional) Less(other Optional) bool {
	switch {
	case o.Valid && other.Valid:
		return o.Value < other.Value
	case o.Valid:
		return true
	default:
		return false
	}
}

// Min keeps the smaller of two values, ignoring absent ones.
func (o Optional) Min(other Optional) Optional {
	if !other.Valid {
		return o
	}
	if !o.Valid || other.Value < o.Value {
		return other
	}
	return o
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Index is a handicap index with one decimal of precision that may be absent.
// An absent index means "derive it from history".
type Index struct {
	Value float64
	Valid bool
}

// IndexOf wraps a present handicap index.
func IndexOf(v float64) Index {
	return Index{Value: v, Valid: true}
}

// NoIndex returns the absent handicap index.
func NoIndex() Index {
	return Index{}
}

// Ptr returns the index as a nullable float for callers that prefer pointers.
func (i Index) Ptr() *float64 {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

func (i Index) String() string {
	if !i.Valid {
		return NoData
	}
	return strconv.FormatFloat(i.Value, 'f', 1, 64)
}

func (i Index) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return jsonNull, nil
	}
	return json.Marshal(i.Value)
}

func (i *Index) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*i = NoIndex()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = IndexOf(v)
	return nil
}
