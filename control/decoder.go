package control

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Stack() Stack
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	stack *Stack

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r:     r,
		stack: &Stack{},
	}

	d.s, _ = r.(io.Seeker)

	return d
}

// read fills buf from the input stream.
func (d *decoder) read(buf []byte) (err error) {
	_, err = io.ReadFull(d.r, buf)
	if err != nil {
		return Error.Wrap(err)
	}

	d.consumed += uint64(len(buf))

	return nil
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("unimplemented: seek >= 2^63")
	}

	if d.s != nil {
		_, err := d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.consumed == 0 || d.finished {
		return nil
	}

	switch d.t {
	case Unknown, Data, ContainerEnd, Empty, Null:
		// No additional bytes need to be read.
	case Data1, Data2:
		// Small enough to just read directly.
		_, err := d.Data()
		if err != nil {
			return err
		}
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	case ContainerUnbounded:
		// Read fields until the matching ContainerEnd is found. Depth
		// will be one less than our current.
		target := d.Depth() - 1
		d.finished = true

		for d.Next() {
			if d.Type() == ContainerEnd && target == d.Depth() {
				break
			}
		}

		return d.Err()
	default:
		return Error.New("unknown field %q: %0b", d.t.Abbr, d.value[0])
	}

	d.finished = true

	return nil
}

// Next advances to the next field. It returns false at the end of the input
// or on error (see Err).
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.Seek()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = d.data[:0]
	d.finished = true

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if d.Depth() != 0 {
				d.err = Error.New("unexpected end of input: depth=%d", d.Depth())
			}

			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %0b", d.value[0])

		return false
	}

	switch t {
	case ContainerEnd:
		top := d.stack.Top()
		if top == nil {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.err = d.stack.Pop()
		if d.err != nil {
			return false
		}
	default:
		d.stack.Count(1)
	}

	switch t {
	case ContainerUnbounded:
		d.stack.Push(&Frame{
			Type: t,
		})
		d.finished = false
	case Data1, Data2, DataSize, DataSizeSize:
		d.finished = false
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return *d.stack
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the field. If the field does not
// contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := int(d.value[0]&d.t.Mask) + 1

		var buf [8]byte
		err = d.read(buf[8-sizeSize:])
		if err != nil {
			return 0, err
		}

		size := binary.BigEndian.Uint64(buf[:])
		if size == math.MaxUint64 {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("data already consumed")
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		d.data = make([]byte, d.size)
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	case DataSize, DataSizeSize:
		d.data = make([]byte, d.size)

		err = d.read(d.data)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}

// Enter informs decoder that the ContainerUnbounded field should be entered.
// If the current field type is not ContainerUnbounded, then it returns
// ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.t != ContainerUnbounded {
		return oops.Trace(ErrInvalidOperation)
	}

	d.finished = true

	return nil
}
