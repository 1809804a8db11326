package schema

// ArrayType describes a sequence of values of a single element type.
type ArrayType struct {
	ElementType  DataType
	ContainsNull bool
}

// NewArrayType builds an array type that may contain nulls. Construct the
// struct directly to set ContainsNull to false.
func NewArrayType(elementType DataType) ArrayType {
	return ArrayType{ElementType: elementType, ContainsNull: true}
}

func (a ArrayType) isDataType() {}

func (a ArrayType) TypeName() string {
	return "array"
}

func (a ArrayType) SimpleString() string {
	return "array<" + a.ElementType.SimpleString() + ">"
}

func (a ArrayType) Equal(other DataType) bool {
	o, ok := other.(ArrayType)
	return ok && o.ContainsNull == a.ContainsNull && a.ElementType.Equal(o.ElementType)
}

// MapType describes a mapping from a key type to a value type.
type MapType struct {
	KeyType           DataType
	ValueType         DataType
	ValueContainsNull bool
}

// NewMapType builds a map type whose values may be null.
func NewMapType(keyType, valueType DataType) MapType {
	return MapType{KeyType: keyType, ValueType: valueType, ValueContainsNull: true}
}

func (m MapType) isDataType() {}

func (m MapType) TypeName() string {
	return "map"
}

func (m MapType) SimpleString() string {
	return "map<" + m.KeyType.SimpleString() + "," + m.ValueType.SimpleString() + ">"
}

func (m MapType) Equal(other DataType) bool {
	o, ok := other.(MapType)
	return ok && o.ValueContainsNull == m.ValueContainsNull &&
		m.KeyType.Equal(o.KeyType) && m.ValueType.Equal(o.ValueType)
}
