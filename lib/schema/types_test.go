package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleString(t *testing.T) {
	assert.Equal(t, "int", IntegerType.SimpleString())
	assert.Equal(t, "bigint", LongType.SimpleString())
	assert.Equal(t, "tinyint", ByteType.SimpleString())
	assert.Equal(t, "string", StringType.SimpleString())

	assert.Equal(t, "array<int>", NewArrayType(IntegerType).SimpleString())
	assert.Equal(t, "array<array<int>>", NewArrayType(NewArrayType(IntegerType)).SimpleString())
	assert.Equal(t, "map<string,double>", NewMapType(StringType, DoubleType).SimpleString())
	assert.Equal(
		t,
		"map<string,array<boolean>>",
		NewMapType(StringType, NewArrayType(BooleanType)).SimpleString(),
	)

	s := NewStructType([]StructField{
		NewStructField("id", LongType),
		NewStructField("tags", NewArrayType(StringType)),
	})
	assert.Equal(t, "struct<id:bigint,tags:array<string>>", s.SimpleString())
	assert.Equal(t, "struct<>", NewStructType(nil).SimpleString())
	assert.Equal(t, "struct<>", StructType{}.SimpleString())
}

func TestStructFieldString(t *testing.T) {
	f := NewStructField("uid", NewArrayType(IntegerType))
	assert.Equal(t, "StructField(uid,array<int>)", f.String())
}

func TestConstructionDefaults(t *testing.T) {
	a := NewArrayType(StringType)
	assert.True(t, a.ContainsNull)
	assert.True(t, StringType.Equal(a.ElementType))

	m := NewMapType(StringType, LongType)
	assert.True(t, m.ValueContainsNull)

	f := NewStructField("x", DoubleType)
	assert.True(t, f.Nullable)
	assert.Equal(t, json.RawMessage("{}"), f.Metadata)
}

func TestNewStructTypeCopiesFields(t *testing.T) {
	fields := []StructField{NewStructField("a", IntegerType), NewStructField("b", StringType)}
	s := NewStructType(fields)
	fields[0] = NewStructField("mutated", BooleanType)
	assert.Equal(t, "a", s.Fields[0].Name)
	assert.Equal(t, []string{"a", "b"}, []string{s.Fields[0].Name, s.Fields[1].Name})
}

func TestEqual(t *testing.T) {
	assert.True(t, IntegerType.Equal(IntegerType))
	assert.False(t, IntegerType.Equal(LongType))
	assert.False(t, IntegerType.Equal(NewArrayType(IntegerType)))

	assert.True(t, NewArrayType(IntegerType).Equal(NewArrayType(IntegerType)))
	assert.False(t, NewArrayType(IntegerType).Equal(ArrayType{ElementType: IntegerType, ContainsNull: false}))
	assert.False(t, NewArrayType(IntegerType).Equal(NewArrayType(LongType)))

	assert.True(t, NewMapType(StringType, LongType).Equal(NewMapType(StringType, LongType)))
	assert.False(t, NewMapType(StringType, LongType).Equal(NewMapType(LongType, StringType)))

	s1 := NewStructType([]StructField{NewStructField("a", IntegerType), NewStructField("b", StringType)})
	s2 := NewStructType([]StructField{NewStructField("a", IntegerType), NewStructField("b", StringType)})
	s3 := NewStructType([]StructField{NewStructField("b", StringType), NewStructField("a", IntegerType)})
	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.Equal(s3))
	assert.False(t, s1.Equal(NewStructType(nil)))

	// metadata is compared structurally, not byte for byte
	f1 := StructField{Name: "a", DataType: IntegerType, Nullable: true, Metadata: json.RawMessage(`{"k": 1}`)}
	f2 := StructField{Name: "a", DataType: IntegerType, Nullable: true, Metadata: json.RawMessage(`{"k":1}`)}
	assert.True(t, f1.Equal(f2))
	f3 := StructField{Name: "a", DataType: IntegerType, Nullable: true, Metadata: json.RawMessage(`{"k":2}`)}
	assert.False(t, f1.Equal(f3))
}
