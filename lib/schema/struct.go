package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"
)

var emptyMetadata = json.RawMessage("{}")

// StructField is one named, typed slot of a StructType. It is not a DataType
// itself. Metadata is carried verbatim and never interpreted.
type StructField struct {
	Name     string
	DataType DataType
	Nullable bool
	Metadata json.RawMessage
}

// NewStructField builds a nullable field with empty metadata. Construct the
// struct directly to override either.
func NewStructField(name string, dataType DataType) StructField {
	return StructField{Name: name, DataType: dataType, Nullable: true, Metadata: emptyMetadata}
}

func (f StructField) String() string {
	return fmt.Sprintf("StructField(%s,%s)", f.Name, f.DataType.SimpleString())
}

func (f StructField) Equal(other StructField) bool {
	return f.Name == other.Name && f.Nullable == other.Nullable &&
		f.DataType.Equal(other.DataType) && metadataEqual(f.Metadata, other.Metadata)
}

// metadataEqual compares structurally so that formatting differences between a
// parsed and a hand built metadata blob don't matter.
func metadataEqual(a, b json.RawMessage) bool {
	if len(a) == 0 {
		a = emptyMetadata
	}
	if len(b) == 0 {
		b = emptyMetadata
	}
	var av, bv interface{}
	if json.Unmarshal(a, &av) != nil || json.Unmarshal(b, &bv) != nil {
		return bytes.Equal(a, b)
	}
	return reflect.DeepEqual(av, bv)
}

// StructType describes an ordered collection of named fields. Field order is
// the column order of the described schema and is always preserved. A struct
// with zero fields is legal.
type StructType struct {
	Fields []StructField
}

// NewStructType copies the given fields, so the caller's slice is not aliased.
func NewStructType(fields []StructField) StructType {
	copied := make([]StructField, len(fields))
	copy(copied, fields)
	return StructType{Fields: copied}
}

func (s StructType) isDataType() {}

func (s StructType) TypeName() string {
	return "struct"
}

func (s StructType) SimpleString() string {
	parts := lo.Map(s.Fields, func(f StructField, _ int) string {
		return f.Name + ":" + f.DataType.SimpleString()
	})
	return "struct<" + strings.Join(parts, ",") + ">"
}

func (s StructType) Equal(other DataType) bool {
	o, ok := other.(StructType)
	if !ok || len(o.Fields) != len(s.Fields) {
		return false
	}
	for i, f := range s.Fields {
		if !f.Equal(o.Fields[i]) {
			return false
		}
	}
	return true
}

// Handle is a reference to a live tabular object inside the engine. The only
// thing the schema layer ever asks of it is its own schema, as json text.
type Handle interface {
	JSON() (string, error)
}

// StructTypeFromHandle fetches the schema of a live engine object and parses
// it. Handle and malformed-payload failures surface as *HandleError; a payload
// that is valid json but not a valid schema fails the same way ParseStructType
// does.
func StructTypeFromHandle(h Handle) (StructType, error) {
	text, err := h.JSON()
	if err != nil {
		return StructType{}, &HandleError{Err: err}
	}
	data := []byte(text)
	if !json.Valid(data) {
		return StructType{}, &HandleError{Err: fmt.Errorf("engine returned invalid json: %.100s", text)}
	}
	return ParseStructType(data)
}
