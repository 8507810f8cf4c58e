// Command dissect reads a float number from stdin and prints its binary32 fields.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	dissect "github.com/nodramaplease/float-number-dissecting"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Float number dissecter.")
	fmt.Fprintln(out, "Write float number: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return dissect.Error.Wrap(err)
	}
	v, err := dissect.ParseFloat32(line)
	if err != nil {
		return err
	}
	_, err = dissect.NewReport(v).WriteTo(out)
	return err
}
