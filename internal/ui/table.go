package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table. The first row is the header.
func PrintTable(data [][]string, w io.Writer) {
	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		pterm.Error.Printfln("unable to render table: %s", err.Error())
		return
	}

	fmt.Fprintln(w, str)
}
