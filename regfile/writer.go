package regfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/moffa90/go-si5351/regmap"
)

// Write writes img in the layout ParseReader accepts: a comment, the column
// header, then one "ADDRESS,DATAh" line per register in ascending address
// order.
func Write(w io.Writer, img *regmap.Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s Si5351 register map, %d registers\n", CommentPrefix, img.Len())
	fmt.Fprintln(bw, HeaderLine)
	for _, r := range img.Registers() {
		fmt.Fprintf(bw, "%d%s%02Xh\n", r.Addr, FieldSeparator, r.Value)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write register map: %w", err)
	}
	return nil
}
