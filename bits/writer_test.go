package bits

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriterReaderRoundtrip(t *testing.T) {

	bw := NewEncodeBuffer(make([]byte, 64), binary.LittleEndian)

	bw.PutUint64(12345678901234)
	bw.PutInt64(-987654321)
	bw.PutUint32(777777)
	bw.PutInt32(-42)
	bw.PutUint16(65535)
	bw.PutInt16(-32768)
	bw.PutFloat32(3.5)
	bw.PutFloat64(-1234.25)
	bw.WriteByte(0xAB)

	expectedSize := 8 + 8 + 4 + 4 + 2 + 2 + 4 + 8 + 1
	if bw.Position() != expectedSize {
		t.Errorf("Expected %d but got %d", expectedSize, bw.Position())
	}

	r := NewReader(bytes.NewReader(bw.Bytes()), binary.LittleEndian)

	u64, _ := r.ReadU64()
	if u64 != 12345678901234 {
		t.Errorf("Expected %d but got %d", 12345678901234, u64)
	}

	i64, _ := r.ReadI64()
	if i64 != -987654321 {
		t.Errorf("Expected %d but got %d", -987654321, i64)
	}

	u32, _ := r.ReadU32()
	if u32 != 777777 {
		t.Errorf("Expected %d but got %d", 777777, u32)
	}

	i32, _ := r.ReadI32()
	if i32 != -42 {
		t.Errorf("Expected %d but got %d", -42, i32)
	}

	u16, _ := r.ReadU16()
	if u16 != 65535 {
		t.Errorf("Expected %d but got %d", 65535, u16)
	}

	i16, _ := r.ReadI16()
	if i16 != -32768 {
		t.Errorf("Expected %d but got %d", -32768, i16)
	}

	f32, _ := r.ReadF32()
	if f32 != 3.5 {
		t.Errorf("Expected %f but got %f", 3.5, f32)
	}

	f64, _ := r.ReadF64()
	if f64 != -1234.25 {
		t.Errorf("Expected %f but got %f", -1234.25, f64)
	}

	u8, _ := r.ReadU8()
	if u8 != 0xAB {
		t.Errorf("Expected %d but got %d", 0xAB, u8)
	}
}

func TestWriterPadAndAlign(t *testing.T) {

	bw := NewEncodeBuffer(make([]byte, 16), binary.LittleEndian)

	bw.WriteByte(1)
	bw.Align(8)

	if bw.Position() != 8 {
		t.Errorf("Expected %d but got %d", 8, bw.Position())
	}

	// already aligned, no move
	bw.Align(8)
	if bw.Position() != 8 {
		t.Errorf("Expected %d but got %d", 8, bw.Position())
	}

	bw.Pad(3)
	if bw.Position() != 11 {
		t.Errorf("Expected %d but got %d", 11, bw.Position())
	}

	// padded bytes stay zero
	data := bw.Bytes()
	for i := 1; i < 8; i++ {
		if data[i] != 0 {
			t.Errorf("Expected zero pad byte at %d but got %d", i, data[i])
		}
	}
}

func TestWriterOverflowPanics(t *testing.T) {

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected overflow panic but got none")
		}
	}()

	bw := NewEncodeBuffer(make([]byte, 4), binary.LittleEndian)
	bw.PutUint64(1)
}

func TestWriterGrowing(t *testing.T) {

	bw := NewEncodeBuffer(make([]byte, 2), binary.LittleEndian)
	bw.EnableGrowing()

	for i := 0; i < 100; i++ {
		bw.PutUint64(uint64(i))
	}

	if bw.Position() != 800 {
		t.Errorf("Expected %d but got %d", 800, bw.Position())
	}

	r := NewReader(bytes.NewReader(bw.Bytes()), binary.LittleEndian)
	for i := 0; i < 100; i++ {
		v := r.MustReadU64()
		if v != uint64(i) {
			t.Errorf("Expected %d but got %d", i, v)
		}
	}
}

func TestReaderSkip(t *testing.T) {

	bw := NewEncodeBuffer(make([]byte, 16), binary.LittleEndian)

	bw.PutUint16(9)
	bw.Pad(6)
	bw.PutUint64(77)

	r := NewReader(bytes.NewReader(bw.Bytes()), binary.LittleEndian)

	skipErr := r.Skip(8)
	if skipErr != nil {
		t.Errorf("Expected no error but got %v", skipErr)
	}

	v := r.MustReadU64()
	if v != 77 {
		t.Errorf("Expected %d but got %d", 77, v)
	}
}
