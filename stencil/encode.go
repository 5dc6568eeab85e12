package stencil

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire layout (protobuf wire format, no generated code):
//
//	1: control vertex count   varint
//	2: sizes                  packed varint
//	3: indices                packed varint
//	4: weights                packed fixed64 (IEEE-754 bits)
//
// Offsets are not stored; they are the prefix sums of sizes.
const (
	fieldControlVertices protowire.Number = 1
	fieldSizes           protowire.Number = 2
	fieldIndices         protowire.Number = 3
	fieldWeights         protowire.Number = 4
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Table) MarshalBinary() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, fieldControlVertices, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(t.nc))

	b = appendPackedInts(b, fieldSizes, t.sizes)
	b = appendPackedInts(b, fieldIndices, t.indices)

	if len(t.weights) > 0 {
		packed := make([]byte, 0, 8*len(t.weights))
		for _, w := range t.weights {
			packed = protowire.AppendFixed64(packed, math.Float64bits(w))
		}
		b = protowire.AppendTag(b, fieldWeights, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}

	return b, nil
}

func appendPackedInts(b []byte, num protowire.Number, vals []int) []byte {
	if len(vals) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vals {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)

	return protowire.AppendBytes(b, packed)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded table
// is validated; on error the receiver is left unchanged.
// Unknown fields are skipped.
func (t *Table) UnmarshalBinary(data []byte) error {
	var dec Table
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("Table.UnmarshalBinary: %v: %w", protowire.ParseError(n), ErrMalformed)
		}
		data = data[n:]

		switch {
		case num == fieldControlVertices && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 || v > MaxEntries {
				return fmt.Errorf("Table.UnmarshalBinary: control vertices: %w", ErrMalformed)
			}
			dec.nc = int(v)
			n = m
		case (num == fieldSizes || num == fieldIndices) && typ == protowire.BytesType:
			packed, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return fmt.Errorf("Table.UnmarshalBinary: field %d: %w", num, ErrMalformed)
			}
			vals, err := consumePackedInts(packed)
			if err != nil {
				return fmt.Errorf("Table.UnmarshalBinary: field %d: %w", num, err)
			}
			if num == fieldSizes {
				dec.sizes = append(dec.sizes, vals...)
			} else {
				dec.indices = append(dec.indices, vals...)
			}
			n = m
		case num == fieldWeights && typ == protowire.BytesType:
			packed, m := protowire.ConsumeBytes(data)
			if m < 0 || len(packed)%8 != 0 {
				return fmt.Errorf("Table.UnmarshalBinary: weights: %w", ErrMalformed)
			}
			for len(packed) > 0 {
				bits, k := protowire.ConsumeFixed64(packed)
				if k < 0 {
					return fmt.Errorf("Table.UnmarshalBinary: weights: %w", ErrMalformed)
				}
				dec.weights = append(dec.weights, math.Float64frombits(bits))
				packed = packed[k:]
			}
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("Table.UnmarshalBinary: field %d: %w", num, ErrMalformed)
			}
		}
		data = data[n:]
	}

	dec.offsets = make([]int, len(dec.sizes))
	next := 0
	for k, size := range dec.sizes {
		dec.offsets[k] = next
		next += size
	}
	if err := dec.Validate(); err != nil {
		return fmt.Errorf("Table.UnmarshalBinary: %w", err)
	}
	*t = dec

	return nil
}

func consumePackedInts(b []byte) ([]int, error) {
	var out []int
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 || v > MaxEntries {
			return nil, ErrMalformed
		}
		out = append(out, int(v))
		b = b[n:]
	}

	return out, nil
}
