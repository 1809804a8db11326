package schema

// DataType describes the shape of a column or nested value exchanged with the
// engine. It is a closed set: the primitives below plus ArrayType, MapType and
// StructType. Instances are immutable after construction and safe to share.
type DataType interface {
	isDataType()
	// TypeName is the discriminator used in the json interchange form.
	TypeName() string
	// SimpleString is the canonical human readable rendering, e.g. "array<int>".
	SimpleString() string
	Equal(other DataType) bool
}

var _ DataType = PrimitiveType{}
var _ DataType = ArrayType{}
var _ DataType = MapType{}
var _ DataType = StructType{}

// PrimitiveType is a leaf type with no nested structure. Only the package
// level singletons below exist; the engine does not understand other tags.
type PrimitiveType struct {
	name   string
	simple string
}

var (
	NullType      = PrimitiveType{"null", "null"}
	BooleanType   = PrimitiveType{"boolean", "boolean"}
	ByteType      = PrimitiveType{"byte", "tinyint"}
	ShortType     = PrimitiveType{"short", "smallint"}
	IntegerType   = PrimitiveType{"integer", "int"}
	LongType      = PrimitiveType{"long", "bigint"}
	FloatType     = PrimitiveType{"float", "float"}
	DoubleType    = PrimitiveType{"double", "double"}
	StringType    = PrimitiveType{"string", "string"}
	BinaryType    = PrimitiveType{"binary", "binary"}
	DateType      = PrimitiveType{"date", "date"}
	TimestampType = PrimitiveType{"timestamp", "timestamp"}
)

var primitives = map[string]PrimitiveType{}

func init() {
	for _, p := range []PrimitiveType{
		NullType, BooleanType, ByteType, ShortType, IntegerType, LongType,
		FloatType, DoubleType, StringType, BinaryType, DateType, TimestampType,
	} {
		primitives[p.name] = p
	}
}

func (p PrimitiveType) isDataType() {}

func (p PrimitiveType) TypeName() string {
	return p.name
}

func (p PrimitiveType) SimpleString() string {
	return p.simple
}

func (p PrimitiveType) Equal(other DataType) bool {
	o, ok := other.(PrimitiveType)
	return ok && o.name == p.name
}
