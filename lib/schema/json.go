package schema

import (
	"encoding/json"

	"github.com/buger/jsonparser"
)

// ParseDataType parses the engine's json representation of a type. Primitives
// appear as shorthand strings ("bigint" is written "long"), composites as
// objects carrying a "type" discriminator. All required properties must be
// present; nothing is defaulted on this path.
func ParseDataType(data []byte) (DataType, error) {
	value, vtype, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	return parseDataType(value, vtype)
}

// ParseStructType parses json whose root carries a "fields" array, i.e. the
// form the engine reports for any tabular object.
func ParseStructType(data []byte) (StructType, error) {
	return parseStructType(data)
}

// ToJSON renders the canonical interchange form, the exact shape ParseDataType
// accepts back.
func ToJSON(dt DataType) ([]byte, error) {
	return json.Marshal(dt)
}

func parseDataType(data []byte, vtype jsonparser.ValueType) (DataType, error) {
	switch vtype {
	case jsonparser.String:
		tag, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return primitiveFor(tag)
	case jsonparser.Object:
		tag, err := getString(data, "type")
		if err != nil {
			return nil, err
		}
		switch tag {
		case "array":
			return parseArrayType(data)
		case "map":
			return parseMapType(data)
		case "struct":
			return parseStructType(data)
		default:
			return primitiveFor(tag)
		}
	default:
		return nil, &TypeMismatchError{Field: "type", Want: "string or object", Got: vtype.String()}
	}
}

func primitiveFor(tag string) (DataType, error) {
	p, ok := primitives[tag]
	if !ok {
		return nil, &UnknownTypeTagError{Tag: tag}
	}
	return p, nil
}

func parseArrayType(data []byte) (DataType, error) {
	elem, err := getType(data, "elementType")
	if err != nil {
		return nil, err
	}
	containsNull, err := getBool(data, "containsNull")
	if err != nil {
		return nil, err
	}
	return ArrayType{ElementType: elem, ContainsNull: containsNull}, nil
}

func parseMapType(data []byte) (DataType, error) {
	keyType, err := getType(data, "keyType")
	if err != nil {
		return nil, err
	}
	valueType, err := getType(data, "valueType")
	if err != nil {
		return nil, err
	}
	valueContainsNull, err := getBool(data, "valueContainsNull")
	if err != nil {
		return nil, err
	}
	return MapType{KeyType: keyType, ValueType: valueType, ValueContainsNull: valueContainsNull}, nil
}

func parseStructType(data []byte) (StructType, error) {
	fieldsData, err := getValue(data, "fields", jsonparser.Array)
	if err != nil {
		return StructType{}, err
	}
	fields := make([]StructField, 0)
	var parseErr error
	_, err = jsonparser.ArrayEach(fieldsData, func(value []byte, vtype jsonparser.ValueType, _ int, _ error) {
		if parseErr != nil {
			return
		}
		if vtype != jsonparser.Object {
			parseErr = &TypeMismatchError{Field: "fields", Want: "array of objects", Got: "array of " + vtype.String()}
			return
		}
		f, err := parseStructField(value)
		if err != nil {
			parseErr = err
			return
		}
		fields = append(fields, f)
	})
	if err != nil {
		return StructType{}, err
	}
	if parseErr != nil {
		return StructType{}, parseErr
	}
	return StructType{Fields: fields}, nil
}

func parseStructField(data []byte) (StructField, error) {
	name, err := getString(data, "name")
	if err != nil {
		return StructField{}, err
	}
	dataType, err := getType(data, "type")
	if err != nil {
		return StructField{}, err
	}
	nullable, err := getBool(data, "nullable")
	if err != nil {
		return StructField{}, err
	}
	metadata, err := getRaw(data, "metadata")
	if err != nil {
		return StructField{}, err
	}
	return StructField{Name: name, DataType: dataType, Nullable: nullable, Metadata: metadata}, nil
}

func getValue(data []byte, key string, want jsonparser.ValueType) ([]byte, error) {
	value, vtype, _, err := jsonparser.Get(data, key)
	if err == jsonparser.KeyPathNotFoundError {
		return nil, &MissingFieldError{Field: key}
	}
	if err != nil {
		return nil, err
	}
	if vtype != want {
		return nil, &TypeMismatchError{Field: key, Want: want.String(), Got: vtype.String()}
	}
	return value, nil
}

func getString(data []byte, key string) (string, error) {
	value, err := getValue(data, key, jsonparser.String)
	if err != nil {
		return "", err
	}
	return jsonparser.ParseString(value)
}

func getBool(data []byte, key string) (bool, error) {
	value, err := getValue(data, key, jsonparser.Boolean)
	if err != nil {
		return false, err
	}
	return jsonparser.ParseBoolean(value)
}

func getType(data []byte, key string) (DataType, error) {
	value, vtype, _, err := jsonparser.Get(data, key)
	if err == jsonparser.KeyPathNotFoundError {
		return nil, &MissingFieldError{Field: key}
	}
	if err != nil {
		return nil, err
	}
	if vtype != jsonparser.String && vtype != jsonparser.Object {
		return nil, &TypeMismatchError{Field: key, Want: "string or object", Got: vtype.String()}
	}
	return parseDataType(value, vtype)
}

// getRaw returns the property verbatim as a standalone json value. jsonparser
// strips quotes from strings and hands back subslices of the input, so both
// are undone here.
func getRaw(data []byte, key string) (json.RawMessage, error) {
	value, vtype, _, err := jsonparser.Get(data, key)
	if err == jsonparser.KeyPathNotFoundError {
		return nil, &MissingFieldError{Field: key}
	}
	if err != nil {
		return nil, err
	}
	switch vtype {
	case jsonparser.String:
		raw := make(json.RawMessage, 0, len(value)+2)
		raw = append(raw, '"')
		raw = append(raw, value...)
		return append(raw, '"'), nil
	case jsonparser.Null:
		return json.RawMessage("null"), nil
	default:
		return append(json.RawMessage(nil), value...), nil
	}
}

func (p PrimitiveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.name)
}

func (a ArrayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         string   `json:"type"`
		ElementType  DataType `json:"elementType"`
		ContainsNull bool     `json:"containsNull"`
	}{a.TypeName(), a.ElementType, a.ContainsNull})
}

func (m MapType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type              string   `json:"type"`
		KeyType           DataType `json:"keyType"`
		ValueType         DataType `json:"valueType"`
		ValueContainsNull bool     `json:"valueContainsNull"`
	}{m.TypeName(), m.KeyType, m.ValueType, m.ValueContainsNull})
}

func (f StructField) MarshalJSON() ([]byte, error) {
	metadata := f.Metadata
	if len(metadata) == 0 {
		metadata = emptyMetadata
	}
	return json.Marshal(struct {
		Name     string          `json:"name"`
		Type     DataType        `json:"type"`
		Nullable bool            `json:"nullable"`
		Metadata json.RawMessage `json:"metadata"`
	}{f.Name, f.DataType, f.Nullable, metadata})
}

func (s StructType) MarshalJSON() ([]byte, error) {
	fields := s.Fields
	if fields == nil {
		fields = []StructField{}
	}
	return json.Marshal(struct {
		Type   string        `json:"type"`
		Fields []StructField `json:"fields"`
	}{s.TypeName(), fields})
}
