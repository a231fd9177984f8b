package control_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigdec/control"
	"github.com/calebcase/oops"
)

func TestDecoder(t *testing.T) {
	type TC struct {
		Input []byte
		Types []control.Type
		Data  []byte
		Mark  error
	}

	t.Run("read", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_1000_0000},
				Types: []control.Type{control.Data},
				Data:  []byte{0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Data:  []byte{0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Data:  []byte{0b_0000_0000, 0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Data:  []byte{0b_0000_0000, 0b_0000_0000, 0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSizeSize},
				Data:  []byte{0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Types: []control.Type{
					control.ContainerUnbounded,
					control.Data,
					control.ContainerEnd,
				},
				Data: []byte{0b_0000_0000},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0001},
				Types: []control.Type{control.Empty},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0000},
				Types: []control.Type{control.Null},
				Mark:  oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			name := []string{}
			for _, field := range tc.Types {
				name = append(name, field.Abbr)
			}

			t.Run(strings.Join(name, ","), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				types := []control.Type{}
				var data []byte

				for d.Next() {
					field := d.Type()
					types = append(types, field)

					t.Logf("Type: %s\n", field.Abbr)

					switch {
					case field.IsData():
						tmp, err := d.Data()
						require.NoError(t, err, tc.Mark)

						t.Logf("Data: %0b\n", tmp)

						data = append(data, tmp...)
					case field == control.ContainerUnbounded:
						err := d.Enter()
						require.NoError(t, err, tc.Mark)
					}

					t.Logf("Stack: %s\n", spew.Sdump(d.Stack()))
				}
				require.NoError(t, d.Err(), tc.Mark)

				require.Equal(t, tc.Types, types, tc.Mark)
				require.Equal(t, tc.Data, data, tc.Mark)
				require.Equal(t, 0, d.Depth(), tc.Mark)
				require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("next", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSizeSize},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Types: []control.Type{
					control.ContainerUnbounded,
				},
				Mark: oops.New("unexpected"),
			},

			// More nesting situations:
			{
				Input: []byte{
					0b_0000_0110, // cu
					0b_0000_0110, // cu
					0b_1000_0000, // d
					0b_0000_0100, // ce
					0b_0000_0100, // ce
				},
				Types: []control.Type{
					control.ContainerUnbounded,
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{
					0b_1000_0000, // d
					0b_0000_0110, // cu
					0b_0100_0001, // dz
					0b_0000_0000,
					0b_0000_0000,
					0b_0000_0100, // ce
					0b_1000_0000, // d
				},
				Types: []control.Type{
					control.Data,
					control.ContainerUnbounded,
					control.Data,
				},
				Mark: oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			name := []string{}
			for _, field := range tc.Types {
				name = append(name, field.Abbr)
			}

			t.Run(strings.Join(name, ","), func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				types := []control.Type{}

				for d.Next() {
					field := d.Type()
					types = append(types, field)

					t.Logf("Type: %s\n", field.Abbr)
					t.Logf("Stack: %s\n", spew.Sdump(d.Stack()))
				}
				err := d.Err()
				require.NoError(t, err, tc.Mark)

				require.Equal(t, tc.Types, types, tc.Mark)
				require.Equal(t, 0, d.Depth(), tc.Mark)
			})
		}
	})

	t.Run("seeker", func(t *testing.T) {
		input := append([]byte{0b_0000_1000, 0b_0100_0000}, make([]byte, 65)...)
		input = append(input, 0b_1000_0101)

		d := control.NewDecoder(bytes.NewReader(input))

		require.True(t, d.Next())
		require.Equal(t, control.DataSizeSize, d.Type())

		size, err := d.Size()
		require.NoError(t, err)
		require.Equal(t, uint64(65), size)

		require.True(t, d.Next())
		require.Equal(t, control.Data, d.Type())

		data, err := d.Data()
		require.NoError(t, err)
		require.Equal(t, []byte{0b_0000_0101}, data)

		require.False(t, d.Next())
		require.NoError(t, d.Err())
		require.Equal(t, uint64(len(input)), d.Consumed())
	})

	t.Run("errors", func(t *testing.T) {
		type TC struct {
			Name  string
			Input []byte
		}

		tcs := []TC{
			{Name: "unknown byte", Input: []byte{0b_0000_0111}},
			{Name: "stray end", Input: []byte{0b_0000_0100}},
			{Name: "unterminated", Input: []byte{0b_0000_0110, 0b_1000_0000}},
			{Name: "short data", Input: []byte{0b_0100_0011, 0b_0000_0000}},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				for d.Next() {
				}

				require.Error(t, d.Err())
				require.True(t, control.Error.Has(d.Err()))

				// Errors are sticky.
				require.False(t, d.Next())
			})
		}
	})

	t.Run("invalid operation", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewBuffer([]byte{0b_0000_0000}))

		require.True(t, d.Next())
		require.Equal(t, control.Null, d.Type())

		_, err := d.Data()
		require.ErrorIs(t, err, control.ErrInvalidOperation)

		_, err = d.Size()
		require.ErrorIs(t, err, control.ErrInvalidOperation)

		err = d.Enter()
		require.ErrorIs(t, err, control.ErrInvalidOperation)
	})
}
