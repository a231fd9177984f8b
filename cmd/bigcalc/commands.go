package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigdec/integer"
)

// RootCmd returns the bigcalc command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary size decimal integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		AddCmd(),
		SubCmd(),
		MulCmd(),
		DivCmd(),
		ModCmd(),
		PowCmd(),
		ShiftCmd(),
		CmpCmd(),
		EncodeCmd(),
		DecodeCmd(),
	)

	return cmd
}

// parse parses every argument as a decimal integer.
func parse(args []string) (xs []*integer.Int, err error) {
	for _, arg := range args {
		x, err := integer.Parse(arg)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	return xs, nil
}

func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add x y...",
		Short: "Print the sum of the operands",
		Args:  cobra.MinimumNArgs(2),
		RunE:  addCmd,
	}
}

func addCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args)
	if err != nil {
		return err
	}

	sum := xs[0]
	for _, x := range xs[1:] {
		sum = sum.Add(x)
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum)

	return nil
}

func SubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub x y",
		Short: "Print x - y",
		Args:  cobra.ExactArgs(2),
		RunE:  subCmd,
	}
}

func subCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), xs[0].Sub(xs[1]))

	return nil
}

func MulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul x y...",
		Short: "Print the product of the operands",
		Args:  cobra.MinimumNArgs(2),
		RunE:  mulCmd,
	}
}

func mulCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args)
	if err != nil {
		return err
	}

	product := xs[0]
	for _, x := range xs[1:] {
		product = product.Mul(x)
	}

	fmt.Fprintln(cmd.OutOrStdout(), product)

	return nil
}

func DivCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "div x y",
		Short: "Print x / y truncated toward zero",
		Args:  cobra.ExactArgs(2),
		RunE:  divCmd,
	}
	addDivCmdFlags(cmd)
	return cmd
}

func addDivCmdFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("remainder", "r", false, "also print the remainder")
}

// quoRem divides x by y, taking the native path when y fits an int64.
func quoRem(x, y *integer.Int) (q, r *integer.Int, err error) {
	if d, ok := y.Int64(); ok {
		return integer.QuoRemNative(x, d)
	}

	return x.QuoRem(y)
}

func divCmd(cmd *cobra.Command, args []string) error {
	remainder, _ := cmd.Flags().GetBool("remainder")

	xs, err := parse(args)
	if err != nil {
		return err
	}

	q, r, err := quoRem(xs[0], xs[1])
	if err != nil {
		return err
	}

	if remainder {
		fmt.Fprintln(cmd.OutOrStdout(), q, r)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), q)
	}

	return nil
}

func ModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mod x y",
		Short: "Print the remainder of x / y (it has the sign of x)",
		Args:  cobra.ExactArgs(2),
		RunE:  modCmd,
	}
}

func modCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args)
	if err != nil {
		return err
	}

	_, r, err := quoRem(xs[0], xs[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), r)

	return nil
}

func PowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow x exp",
		Short: "Print x raised to a non-negative exponent",
		Args:  cobra.ExactArgs(2),
		RunE:  powCmd,
	}
}

func powCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args[:1])
	if err != nil {
		return err
	}

	exp, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid exponent: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), integer.Pow(xs[0], uint(exp)))

	return nil
}

func ShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shift x n",
		Short: "Print x * 10^n (n may be negative)",
		Args:  cobra.ExactArgs(2),
		RunE:  shiftCmd,
	}
}

func shiftCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args[:1])
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid shift: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), xs[0].Shift(n))

	return nil
}

func CmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp x y",
		Short: "Print -1, 0 or 1 as x is less than, equal to or greater than y",
		Args:  cobra.ExactArgs(2),
		RunE:  cmpCmd,
	}
}

func cmpCmd(cmd *cobra.Command, args []string) error {
	xs, err := parse(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), xs[0].Cmp(xs[1]))

	return nil
}
