package table

import (
	"fmt"
	"io"
)

func PrintTable(t *SymbolTable, output io.Writer) error {
	var err error
	t.Each(func(c rune, pattern string) {
		if err != nil || c == Separator {
			return
		}
		_, err = fmt.Fprintf(output, "%c: %s\n", c, pattern)
	})
	return err
}
