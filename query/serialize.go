package query

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/davecgh/go-spew/spew"
	"github.com/dot5enko/simple-scan-query/bits"
	"github.com/dot5enko/simple-scan-query/schema"
	btree "github.com/tidwall/btree"
)

// WireByteOrder is the byte order of every multi byte field in the scan
// buffer, the consuming engine is little endian.
var WireByteOrder binary.ByteOrder = binary.LittleEndian

// u64 distinct column count + i32 partition key + i32 partition value
const ScanHeaderSize = 8 + 4 + 4

// u16 column id + u16 predicate count + 4 bytes padding
const ColumnBlockSize = 2 + 2 + 4

// u8 comparison tag + u8 clause index + 6 bytes of inline payload or padding
const PredicateBaseSize = 8

var (
	ErrUnsupportedFieldType    = errors.New("unsupported field type in predicate value")
	ErrTooManyColumnPredicates = errors.New("column predicate count does not fit uint16")
	ErrValueTooLarge           = errors.New("variable sized value does not fit uint32 length field")
)

func pad8(n int) int {
	return (8 - n%8) % 8
}

// predicateWireSize returns the full wire footprint of one predicate
// record. Both the size pass and the write pass consult it, so the two
// can not drift apart.
func predicateWireSize(value schema.PredicateValue) (int, error) {
	switch value.Type() {

	case schema.BoolFieldType, schema.Int16FieldType, schema.Int32FieldType, schema.Float32FieldType:
		// payload fits into the base record
		return PredicateBaseSize, nil

	case schema.Int64FieldType, schema.Float64FieldType:
		return PredicateBaseSize + 8, nil

	case schema.StringFieldType:
		return variableWireSize(len(value.Data().(string)))
	case schema.BytesFieldType:
		return variableWireSize(len(value.Data().([]byte)))

	default:
		return 0, ErrUnsupportedFieldType
	}
}

func variableWireSize(payloadLen int) (int, error) {
	if uint64(payloadLen) > math.MaxUint32 {
		return 0, ErrValueTooLarge
	}

	return PredicateBaseSize + payloadLen + pad8(payloadLen), nil
}

// serializedSize walks the regrouped tree and computes the exact buffer
// length the writer will produce.
func serializedSize(grouped *btree.BTreeG[columnPredicates]) (int, error) {

	size := ScanHeaderSize + ColumnBlockSize*grouped.Len()

	var walkErr error
	grouped.Scan(func(node columnPredicates) bool {

		if len(node.preds) > math.MaxUint16 {
			walkErr = ErrTooManyColumnPredicates
			return false
		}

		for _, cp := range node.preds {
			predSize, err := predicateWireSize(cp.pred.Value)
			if err != nil {
				walkErr = err
				return false
			}

			size += predSize
		}

		return true
	})

	if walkErr != nil {
		return 0, walkErr
	}

	return size, nil
}

// Serialize encodes the query into a freshly allocated buffer laid out
// for the scan engine: header, then column blocks in ascending column id
// order, each followed by its 8 byte aligned predicate records. On any
// failure only the error escapes, a partial buffer is never returned.
func (sq *ScanQuery) Serialize() ([]byte, error) {

	// AddSelection guards this already, recheck before clause indices
	// get narrowed to a single byte
	if len(sq.selections) > MaxSelections {
		return nil, ErrTooManySelections
	}

	grouped := regroupByColumn(sq.selections)

	size, err := serializedSize(grouped)
	if err != nil {
		return nil, err
	}

	bw := bits.NewEncodeBuffer(make([]byte, size), WireByteOrder)

	writeErr := writeQuery(&bw, grouped, sq.partitionKey, sq.partitionValue)
	if writeErr != nil {
		return nil, writeErr
	}

	if bw.Position() != size {
		showSize := bw.Position()
		if showSize > 256 {
			showSize = 256
		}

		spew.Dump("encoded scan buffer ", bw.Bytes()[:showSize])

		return nil, fmt.Errorf("encoded %d bytes, computed size was %d", bw.Position(), size)
	}

	slog.Debug("scan query serialized",
		"query_uid", sq.Uid.String(),
		"distinct_columns", grouped.Len(),
		"buffer_size", size)

	return bw.Bytes(), nil
}

func writeQuery(bw *bits.BitWriter, grouped *btree.BTreeG[columnPredicates], partitionKey int32, partitionValue int32) error {

	bw.PutUint64(uint64(grouped.Len()))
	bw.PutInt32(partitionKey)
	bw.PutInt32(partitionValue)

	var walkErr error
	grouped.Scan(func(node columnPredicates) bool {

		bw.PutUint16(node.column)
		bw.PutUint16(uint16(len(node.preds)))
		bw.Pad(4)

		for _, cp := range node.preds {

			// every record starts on an 8 byte boundary, the engine
			// relies on it and the per field padding math assumes it
			if bw.Position()%8 != 0 {
				walkErr = fmt.Errorf("predicate record starts misaligned at %d", bw.Position())
				return false
			}

			bw.WriteByte(byte(cp.pred.Cmp))
			bw.WriteByte(cp.clauseIdx)

			err := writeValue(bw, cp.pred.Value)
			if err != nil {
				walkErr = err
				return false
			}
		}

		return true
	})

	return walkErr
}

func writeValue(bw *bits.BitWriter, value schema.PredicateValue) error {
	switch value.Type() {

	case schema.BoolFieldType:
		v := uint16(0)
		if value.Data().(bool) {
			v = 1
		}
		bw.PutUint16(v)
		bw.Pad(4)

	case schema.Int16FieldType:
		bw.PutInt16(value.Data().(int16))
		bw.Pad(4)

	case schema.Int32FieldType:
		bw.Pad(2)
		bw.PutInt32(value.Data().(int32))

	case schema.Float32FieldType:
		bw.Pad(2)
		bw.PutFloat32(value.Data().(float32))

	case schema.Int64FieldType:
		bw.Pad(6)
		bw.PutInt64(value.Data().(int64))

	case schema.Float64FieldType:
		bw.Pad(6)
		bw.PutFloat64(value.Data().(float64))

	case schema.StringFieldType:
		return writeVariable(bw, []byte(value.Data().(string)))
	case schema.BytesFieldType:
		return writeVariable(bw, value.Data().([]byte))

	default:
		return ErrUnsupportedFieldType
	}

	return nil
}

func writeVariable(bw *bits.BitWriter, data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return ErrValueTooLarge
	}

	bw.Pad(2)
	bw.PutUint32(uint32(len(data)))

	_, err := bw.Write(data)
	if err != nil {
		return err
	}

	bw.Align(8)

	return nil
}
