// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/avdva/bignum"
	"github.com/avdva/bignum/bigmath"
)

// argError is the class of errors for malformed command arguments.
var argError = errs.Class("invalid argument")

// argumentError keeps the cause, so that bignum errors can still be matched.
type argumentError struct {
	index int
	arg   string
	err   error
}

func (e *argumentError) Error() string {
	return fmt.Sprintf("invalid argument #%d %q: %v", e.index, e.arg, e.err)
}

func (e *argumentError) Unwrap() error {
	return e.err
}

type binaryOp func(a, b bignum.Value) (bignum.Value, error)

type output struct {
	grouped bool
	raw     bool
}

func (o *output) format(v bignum.Value) string {
	switch {
	case o.raw:
		return v.GoString()
	case o.grouped:
		return v.Grouped()
	default:
		return v.String()
	}
}

func (o *output) print(cmd *cobra.Command, v bignum.Value) {
	fmt.Fprintln(cmd.OutOrStdout(), o.format(v))
}

func newRootCmd() *cobra.Command {
	out := &output{}
	root := &cobra.Command{
		Use:           "bignum",
		Short:         "Calculator for huge approximate numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.BoolVar(&out.grouped, "grouped", false, "separate thousands with commas")
	flags.BoolVar(&out.raw, "raw", false, "print the base and the exponent too")
	root.AddCommand(
		parseCmd(out),
		binaryCmd(out, "add", "Sum two values", total(bignum.Value.Add)),
		binaryCmd(out, "sub", "Subtract b from a, the result is never less than 1", total(bignum.Value.Sub)),
		binaryCmd(out, "mul", "Multiply two values", bignum.Value.Mul),
		binaryCmd(out, "div", "Divide a by b", bignum.Value.Div),
		binaryCmd(out, "max", "Print the larger value", total(bigmath.Max)),
		binaryCmd(out, "min", "Print the smaller value", total(bigmath.Min)),
		cmpCmd(),
		clampCmd(out),
		scaleCmd(out),
	)
	return root
}

func parseCmd(out *output) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse and normalize a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			out.print(cmd, values[0])
			return nil
		},
	}
}

func binaryCmd(out *output, name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			result, err := op(values[0], values[1])
			if err != nil {
				return err
			}
			out.print(cmd, result)
			return nil
		},
	}
}

func cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Print -1, 0, or 1 if a is less than, equal to, or greater than b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), values[0].Cmp(values[1]))
			return nil
		},
	}
}

func clampCmd(out *output) *cobra.Command {
	return &cobra.Command{
		Use:   "clamp <v> <lo> <hi>",
		Short: "Limit a value to the given range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			if values[1].Gt(values[2]) {
				return argError.New("lower bound %s exceeds upper bound %s", values[1], values[2])
			}
			out.print(cmd, bigmath.Clamp(values[0], values[1], values[2]))
			return nil
		},
	}
}

func scaleCmd(out *output) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <v> <factor>",
		Short: "Multiply a value by a floating point factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args[:1])
			if err != nil {
				return err
			}
			factor, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return &argumentError{index: 2, arg: args[1], err: err}
			}
			result, err := values[0].MulFloat64(factor)
			if err != nil {
				return err
			}
			out.print(cmd, result)
			return nil
		},
	}
}

// total adapts an operation that never fails.
func total(op func(a, b bignum.Value) bignum.Value) binaryOp {
	return func(a, b bignum.Value) (bignum.Value, error) {
		return op(a, b), nil
	}
}

func parseArgs(args []string) ([]bignum.Value, error) {
	values := make([]bignum.Value, len(args))
	for i, arg := range args {
		v, err := bignum.Parse(arg)
		if err != nil {
			return nil, &argumentError{index: i + 1, arg: arg, err: err}
		}
		values[i] = v
	}
	return values, nil
}
