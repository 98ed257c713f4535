package schema

type FieldType uint8

const (
	UnknownFieldType FieldType = iota

	BoolFieldType
	Int16FieldType
	Int32FieldType
	Int64FieldType

	Float32FieldType
	Float64FieldType

	StringFieldType
	BytesFieldType
)

func (f FieldType) String() string {
	switch f {
	case UnknownFieldType:
		return "Unknown"
	case BoolFieldType:
		return "Bool"
	case Int16FieldType:
		return "Int16"
	case Int32FieldType:
		return "Int32"
	case Int64FieldType:
		return "Int64"
	case Float32FieldType:
		return "Float32"
	case Float64FieldType:
		return "Float64"
	case StringFieldType:
		return "String"
	case BytesFieldType:
		return "Bytes"
	default:
		return ""

	}
}
