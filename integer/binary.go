package integer

import "github.com/calebcase/oops"

var (
	two  = New(2)
	b256 = New(256)
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign is stored in the lowest
// bit. The result is written big-endian with no leading zero bytes. Zero is
// the single byte 0x00.
func (x *Int) MarshalBinary() (data []byte, err error) {
	m := x.Abs().Mul(two)
	if x.Sign() < 0 {
		m = m.Add(New(1))
	}

	for !m.IsZero() {
		q, r, err := QuoRemNative(m, 256)
		if err != nil {
			return nil, err
		}

		v, _ := r.Uint64()
		data = append(data, byte(v))
		m = q
	}

	if len(data) == 0 {
		return []byte{0}, nil
	}

	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Leading zero bytes
// are accepted. A set sign bit on a zero magnitude decodes as 0.
func (z *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return oops.Trace(ErrInvalidEncoding)
	}

	m := zero()
	for _, b := range data {
		m = m.Mul(b256).Add(New(b))
	}

	q, r, err := QuoRemNative(m, 2)
	if err != nil {
		return err
	}

	q.neg = !r.IsZero()
	q.normalize()

	*z = *q

	return nil
}
