package control

import (
	"encoding/binary"
	"io"
	"math"
)

type Encoder interface {
	Data(data []byte) (err error)
	Unbound(fn func(Encoder) error) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

// write writes the blocks to the underlying writer.
func (e *encoder) write(blocks ...[]byte) (err error) {
	for _, b := range blocks {
		_, err = e.w.Write(b)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Data writes data in the smallest block that can hold it. Leading bits of
// the first byte are packed into the control byte when they fit.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(
			[]byte{DataSize.Prefix | byte(size-1)},
			data,
		)
	case uint64(size) <= math.MaxUint32+1:
		sb := sizeBytes(uint64(size - 1))

		return e.write(
			[]byte{DataSizeSize.Prefix | byte(len(sb)-1)},
			sb,
			data,
		)
	}

	return Error.New("unimplemented: size>2^32")
}

// sizeBytes returns the minimal big-endian encoding of n. Zero is a single
// zero byte.
func sizeBytes(n uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)

	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}

	return buf[i:]
}

// Unbound writes the fields produced by fn inside an unbounded container.
func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	err = e.write([]byte{ContainerUnbounded.Prefix})
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	return e.write([]byte{ContainerEnd.Prefix})
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
