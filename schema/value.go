package schema

// PredicateValue is a typed comparison operand. The zero value carries
// UnknownFieldType and is rejected by the serializer, so values are only
// built through the typed constructors below.
type PredicateValue struct {
	typ  FieldType
	data any
}

func BoolValue(v bool) PredicateValue {
	return PredicateValue{typ: BoolFieldType, data: v}
}

func Int16Value(v int16) PredicateValue {
	return PredicateValue{typ: Int16FieldType, data: v}
}

func Int32Value(v int32) PredicateValue {
	return PredicateValue{typ: Int32FieldType, data: v}
}

func Int64Value(v int64) PredicateValue {
	return PredicateValue{typ: Int64FieldType, data: v}
}

func Float32Value(v float32) PredicateValue {
	return PredicateValue{typ: Float32FieldType, data: v}
}

func Float64Value(v float64) PredicateValue {
	return PredicateValue{typ: Float64FieldType, data: v}
}

func StringValue(v string) PredicateValue {
	return PredicateValue{typ: StringFieldType, data: v}
}

func BytesValue(v []byte) PredicateValue {
	return PredicateValue{typ: BytesFieldType, data: v}
}

func (v PredicateValue) Type() FieldType {
	return v.typ
}

// Data returns the raw operand. Callers assert the concrete type after
// switching on Type(): constructors guarantee the two always agree.
func (v PredicateValue) Data() any {
	return v.data
}
