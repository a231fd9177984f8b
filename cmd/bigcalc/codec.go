package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigdec/control"
	"github.com/calebcase/bigdec/integer"
)

func EncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode x...",
		Short: "Print the hex BSV encoding of the operands",
		Args:  cobra.MinimumNArgs(1),
		RunE:  encodeCmd,
	}
	addCodecFlags(cmd)
	return cmd
}

func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("list", "l", false, "wrap the values in an unbounded container")
}

func encodeCmd(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")

	xs, err := parse(args)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	enc := integer.NewEncoder(integer.Schema{}, control.NewEncoder(buf))

	if list {
		err = enc.EncodeAll(xs)
		if err != nil {
			return err
		}
	} else {
		for _, x := range xs {
			err = enc.Encode(x)
			if err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

	return nil
}

func DecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode hex",
		Short: "Print the integers held in a hex BSV encoding, one per line",
		Args:  cobra.ExactArgs(1),
		RunE:  decodeCmd,
	}
	addCodecFlags(cmd)
	return cmd
}

func decodeCmd(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")

	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}

	dec := integer.NewDecoder(integer.Schema{}, control.NewDecoder(bytes.NewReader(data)))
	out := cmd.OutOrStdout()

	if list {
		xs, err := dec.DecodeAll()
		if err != nil {
			return err
		}

		for _, x := range xs {
			fmt.Fprintln(out, x)
		}

		return nil
	}

	for {
		x, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, x)
	}
}
