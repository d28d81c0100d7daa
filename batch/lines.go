package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadInputs reads one request per line, skipping blank lines. Lines may be
// of any length.
func ReadInputs(r io.Reader) ([]string, error) {
	var inputs []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			inputs = append(inputs, line)
		}
		if errors.Is(err, io.EOF) {
			return inputs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read inputs: %w", err)
		}
	}
}

// WriteResults writes one "input<TAB>query" line per result.
func WriteResults(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", res.Input, res.Query); err != nil {
			return err
		}
	}
	return bw.Flush()
}
