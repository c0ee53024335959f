// Package writer renders the intermediate document model into output files.
package writer

import (
	"bufio"
	"io"
	"os"
)

// writeFile creates path and hands a buffered writer to render. The file is
// closed on every path; a close error is reported when render succeeded.
func writeFile(path string, render func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := render(bw); err != nil {
		return err
	}
	return bw.Flush()
}
