package sessions

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/taicalc/taicalc"
	"github.com/samber/lo"
)

// LineReader reads one line of input after showing the prompt. It returns
// io.EOF when input ends or the user interrupts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ScannerReader reads lines of any length from a plain reader.
type ScannerReader struct {
	reader *bufio.Reader
	output io.Writer
}

var _ LineReader = new(ScannerReader)

func NewScannerReader(input io.Reader, output io.Writer) *ScannerReader {
	return &ScannerReader{
		reader: bufio.NewReader(input),
		output: output,
	}
}

func (s *ScannerReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(s.output, prompt); err != nil {
		return "", err
	}
	line, err := s.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		// last line without a newline
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type ReadlineReader struct {
	instance *readline.Instance
}

var _ LineReader = new(ReadlineReader)

func NewReadlineReader() (*ReadlineReader, error) {
	// line editing history stays in memory
	instance, err := readline.NewEx(&readline.Config{
		AutoComplete: symbolCompleter{},
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{
		instance: instance,
	}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.instance.Close()
}

// symbolCompleter completes the identifier under the cursor against the
// symbol table.
type symbolCompleter struct{}

var _ readline.AutoCompleter = symbolCompleter{}

func (symbolCompleter) Do(line []rune, pos int) (candidates [][]rune, length int) {
	start := pos
	for start > 0 && line[start-1] >= 'a' && line[start-1] <= 'z' {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}
	for _, name := range candidateNames(prefix) {
		candidates = append(candidates, []rune(name[len(prefix):]))
	}
	return candidates, len(prefix)
}

func candidateNames(prefix string) []string {
	return lo.Filter(taicalc.SymbolNames(), func(name string, _ int) bool {
		return strings.HasPrefix(name, prefix) && name != prefix
	})
}
