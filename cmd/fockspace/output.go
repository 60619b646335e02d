package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/hupe1980/fockspace/codec"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// render writes rows as a table, or v as indented JSON.
func render(w io.Writer, format string, header []string, rows [][]string, v any) error {
	if format == formatJSON {
		out, err := codec.GoJSON{}.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
