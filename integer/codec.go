package integer

import (
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/bigdec/control"
)

// Schema for an integer stream.
type Schema struct {
	// Nullable permits nil values, written as Null blocks.
	Nullable bool
}

// Encoder writes integers as control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x in the smallest data block that holds its binary form.
func (e *Encoder) Encode(x *Int) (err error) {
	defer Error.WrapP(&err)

	return e.encode(e.ce, x)
}

// EncodeAll writes xs inside an unbounded container.
func (e *Encoder) EncodeAll(xs []*Int) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Unbound(func(ce control.Encoder) (err error) {
		for _, x := range xs {
			err = e.encode(ce, x)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (e *Encoder) encode(ce control.Encoder, x *Int) (err error) {
	if x == nil {
		if !e.schema.Nullable {
			return oops.Trace(ErrNotNullable)
		}

		return ce.Null()
	}

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return ce.Data(data)
}

// Decoder reads integers from control blocks.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer. A Null block decodes as nil when the schema
// is nullable. At the end of the input it returns io.EOF.
func (d *Decoder) Decode() (x *Int, err error) {
	if !d.cd.Next() {
		return nil, d.end()
	}

	defer Error.WrapP(&err)

	return d.field()
}

// DecodeAll reads an unbounded container of integers.
func (d *Decoder) DecodeAll() (xs []*Int, err error) {
	if !d.cd.Next() {
		return nil, d.end()
	}

	defer Error.WrapP(&err)

	if d.cd.Type() != control.ContainerUnbounded {
		return nil, Error.New("expected %q, found %q", control.ContainerUnbounded, d.cd.Type())
	}

	err = d.cd.Enter()
	if err != nil {
		return nil, err
	}

	outer := d.cd.Depth() - 1
	xs = []*Int{}

	for d.cd.Next() {
		if d.cd.Type() == control.ContainerEnd && d.cd.Depth() == outer {
			return xs, nil
		}

		x, err := d.field()
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	err = d.cd.Err()
	if err != nil {
		return nil, err
	}

	return nil, Error.New("unterminated container")
}

// end reports why the control decoder stopped.
func (d *Decoder) end() error {
	err := d.cd.Err()
	if err != nil {
		return Error.Wrap(err)
	}

	return io.EOF
}

// field decodes the current block.
func (d *Decoder) field() (x *Int, err error) {
	t := d.cd.Type()

	switch {
	case t == control.Null:
		if !d.schema.Nullable {
			return nil, oops.Trace(ErrNotNullable)
		}

		return nil, nil
	case t.IsData():
		data, err := d.cd.Data()
		if err != nil {
			return nil, err
		}

		x = &Int{}

		err = x.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}

		return x, nil
	}

	return nil, Error.New("unexpected field %q", t)
}
