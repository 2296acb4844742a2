package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/strided/tensor"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// render prints a as one table per index of its outer axes, each table
// spanning the two innermost axes.
func render(w io.Writer, a *tensor.Array[float64]) error {
	shape := a.Shape()
	rank := len(shape)
	fmt.Fprintf(w, "%s strides %v\n", a, a.Strides())

	if rank == 0 {
		v, err := a.At()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatValue(v))
		return nil
	}

	rows, cols := 1, shape[rank-1]
	outer := tensor.Shape{}
	if rank >= 2 {
		rows = shape[rank-2]
		outer = shape[:rank-2]
	}

	prefix := make([]int, len(outer))
	for block := 0; block < outer.NumElements(); block++ {
		if len(outer) > 0 {
			parts := make([]string, 0, rank)
			for _, p := range prefix {
				parts = append(parts, strconv.Itoa(p))
			}
			parts = append(parts, ":", ":")
			fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ", "))
		}

		table := tablewriter.NewWriter(w)
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.SetBorder(false)
		table.SetColumnSeparator("")
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("  ")
		for r := 0; r < rows; r++ {
			row := make([]string, cols)
			for c := 0; c < cols; c++ {
				index := append(append([]int(nil), prefix...), r, c)
				if rank == 1 {
					index = []int{c}
				}
				v, err := a.At(index...)
				if err != nil {
					return err
				}
				row[c] = formatValue(v)
			}
			table.Append(row)
		}
		table.Render()

		for axis := len(prefix) - 1; axis >= 0; axis-- {
			prefix[axis]++
			if prefix[axis] < outer[axis] {
				break
			}
			prefix[axis] = 0
		}
	}
	return nil
}
