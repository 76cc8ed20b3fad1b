package contigout

import (
	"bufio"
	"io"
)

// Write writes each contig in contigs to w as its own line, each
// terminated by "\n".
func Write(w io.Writer, contigs []string) error {
	bw := bufio.NewWriter(w)
	for _, c := range contigs {
		if _, err := bw.WriteString(c); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
