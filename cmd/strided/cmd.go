package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/strided/codec"
	"github.com/born-ml/strided/internal/envconfig"
	"github.com/born-ml/strided/tensor"
)

// layoutFlags selects the array a command works on.
type layoutFlags struct {
	shape     []int
	data      []float64
	transpose bool
	perm      []int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.shape, "shape", nil, "Comma separated extents, e.g. 2,3,5")
	cmd.Flags().Float64SliceVar(&f.data, "data", nil, "Row-major elements (default 0, 1, ..., n-1)")
	cmd.Flags().BoolVar(&f.transpose, "transpose", false, "Reverse the axis order")
	cmd.Flags().IntSliceVar(&f.perm, "perm", nil, "Permute axes, e.g. 2,0,1")
	cmd.MarkFlagsMutuallyExclusive("transpose", "perm")
	_ = cmd.MarkFlagRequired("shape")
}

func (f *layoutFlags) build() (*tensor.Array[float64], error) {
	var a *tensor.Array[float64]
	var err error
	if f.data != nil {
		a, err = tensor.FromSlice(tensor.Shape(f.shape), f.data)
	} else {
		a, err = tensor.Arange[float64](tensor.Shape(f.shape))
	}
	if err != nil {
		return nil, err
	}
	return f.apply(a)
}

func (f *layoutFlags) apply(a *tensor.Array[float64]) (*tensor.Array[float64], error) {
	switch {
	case f.transpose:
		return a.Transpose(), nil
	case f.perm != nil:
		return a.Permute(f.perm...)
	}
	return a, nil
}

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "strided",
		Short:         "Strided N-dimensional array toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.Debug("running command", "command", cmd.CommandPath())
		},
	}

	rootCmd.AddCommand(
		newInspectCmd(),
		newShowCmd(),
		newAtCmd(),
		newArithCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newEnvCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newInspectCmd() *cobra.Command {
	var lf layoutFlags
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print shape, strides and layout of an array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := lf.build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape:      %v\n", a.Shape())
			fmt.Fprintf(out, "strides:    %v\n", a.Strides())
			fmt.Fprintf(out, "rank:       %d\n", a.Rank())
			fmt.Fprintf(out, "elements:   %d\n", a.NumElements())
			fmt.Fprintf(out, "contiguous: %t\n", a.IsContiguous())
			return nil
		},
	}
	lf.register(cmd)
	return cmd
}

func newShowCmd() *cobra.Command {
	var lf layoutFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render an array as tables over its two innermost axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := lf.build()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a)
		},
	}
	lf.register(cmd)
	return cmd
}

func newAtCmd() *cobra.Command {
	var lf layoutFlags
	var index []int
	var flat int
	cmd := &cobra.Command{
		Use:   "at",
		Short: "Read one element by multi-index or flat logical index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := lf.build()
			if err != nil {
				return err
			}
			var v float64
			if cmd.Flags().Changed("flat") {
				v, err = a.AtFlat(flat)
			} else {
				v, err = a.At(index...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return nil
		},
	}
	lf.register(cmd)
	cmd.Flags().IntSliceVar(&index, "index", nil, "Multi-index, e.g. 1,2,0")
	cmd.Flags().IntVar(&flat, "flat", 0, "Flat index in logical row-major order")
	cmd.MarkFlagsMutuallyExclusive("index", "flat")
	cmd.MarkFlagsOneRequired("index", "flat")
	return cmd
}

func newArithCmd() *cobra.Command {
	var shape []int
	var a, b []float64
	var op string
	var transposeB bool
	cmd := &cobra.Command{
		Use:   "arith",
		Short: "Combine two arrays of equal shape elementwise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, err := tensor.FromSlice(tensor.Shape(shape), a)
			if err != nil {
				return fmt.Errorf("operand a: %w", err)
			}
			bShape := tensor.Shape(shape)
			if transposeB {
				bShape = reversed(bShape)
			}
			y, err := tensor.FromSlice(bShape, b)
			if err != nil {
				return fmt.Errorf("operand b: %w", err)
			}
			if transposeB {
				y = y.Transpose()
			}

			var z *tensor.Array[float64]
			switch op {
			case "add":
				z, err = x.Add(y)
			case "sub":
				z, err = x.Sub(y)
			case "mul":
				z, err = x.Mul(y)
			case "div":
				z, err = x.Div(y)
			default:
				return fmt.Errorf("unknown op %q (want add, sub, mul or div)", op)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), z)
		},
	}
	cmd.Flags().IntSliceVar(&shape, "shape", nil, "Shape of both operands")
	cmd.Flags().Float64SliceVar(&a, "a", nil, "Row-major elements of a")
	cmd.Flags().Float64SliceVar(&b, "b", nil, "Row-major elements of b")
	cmd.Flags().StringVar(&op, "op", "add", "One of add, sub, mul, div")
	cmd.Flags().BoolVar(&transposeB, "transpose-b", false, "Read b with the reversed shape and transpose it")
	for _, name := range []string{"shape", "a", "b"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var lf layoutFlags
	var encoding, output string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Write an array in the STRD binary format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc, err := codec.ParseEncoding(encoding)
			if err != nil {
				return err
			}
			a, err := lf.build()
			if err != nil {
				return err
			}

			//nolint:gosec // G304: output path is supplied by the user
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := codec.Encode(f, a, enc); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&encoding, "encoding", string(codec.Raw), "Payload encoding: raw, float16 or bfloat16")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Read a float64 array in the STRD binary format and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			a, err := codec.Decode[float64](f)
			if errors.Is(err, codec.ErrDTypeMismatch) {
				return fmt.Errorf("%w (only float64 files can be rendered)", err)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a)
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List environment configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := envconfig.AsMap()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			for _, name := range names {
				v := vars[name]
				table.Append([]string{v.Name, fmt.Sprintf("%v", v.Value), v.Description})
			}
			table.Render()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strided %s\n", version)
		},
	}
}

func reversed(s tensor.Shape) tensor.Shape {
	out := make(tensor.Shape, len(s))
	for i, d := range s {
		out[len(s)-1-i] = d
	}
	return out
}
