package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/e5"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/operations"
	"github.com/reusee/taicalc/taicalc"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Session is one run of the menu loop. It is not safe for concurrent use.
type Session struct {
	reader  LineReader
	output  io.Writer
	theme   Theme
	prompt  string
	banner  bool
	logger  logs.Logger
	newSpan logs.NewSpan
	history History

	// first write error
	err error
}

type NewSession func(reader LineReader, output io.Writer) *Session

func (Module) NewSession(
	theme Theme,
	prompt calcconfigs.Prompt,
	banner calcconfigs.ShowBanner,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewSession {
	return func(reader LineReader, output io.Writer) *Session {
		return &Session{
			reader:  reader,
			output:  output,
			theme:   theme,
			prompt:  string(prompt),
			banner:  bool(banner),
			logger:  logger,
			newSpan: newSpan,
		}
	}
}

func (s *Session) History() *History {
	return &s.history
}

// Run loops over the menu until the user quits or input ends. Only I/O
// failures and context cancellation are returned.
func (s *Session) Run(ctx context.Context) (err error) {
	ctx, _ = s.newSpan(ctx, "")
	defer func() {
		if err != nil {
			err = logs.WrapSpan(ctx, err)
		}
	}()

	s.clearScreen()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.err != nil {
			return wrap(s.err)
		}

		s.printMenu()
		choice, err := s.readLine(s.theme.Yellow + "  Choose an option ▶ " + s.theme.White)
		if err != nil {
			return s.finish(err)
		}

		switch choice = strings.ToUpper(strings.TrimSpace(choice)); choice {
		case "Q":
			return s.finish(io.EOF)
		case "C":
			s.clearScreen()
		case "H":
			s.printHistory()
		case "9":
			err = s.expressionMode(ctx)
		default:
			op, ok := operations.Lookup(choice)
			if !ok {
				s.printf("\n%s  ✘ Invalid option. Try again.%s\n\n", s.theme.Red, s.theme.Reset)
				continue
			}
			err = s.runOperation(ctx, op)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish ends the session on io.EOF with the goodbye message.
func (s *Session) finish(err error) error {
	if !errors.Is(err, io.EOF) {
		return wrap(err)
	}
	s.printf("\n%s  👋 Goodbye! Thanks for using taicalc.%s\n\n", s.theme.Cyan, s.theme.Reset)
	if s.err != nil {
		return wrap(s.err)
	}
	return nil
}

func (s *Session) readLine(prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	line, err := s.reader.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	s.printf("%s", s.theme.Reset)
	return line, nil
}

func (s *Session) readNumber(prompt string) (float64, error) {
	for {
		line, err := s.readLine(s.theme.Cyan + "  " + prompt + ": " + s.theme.White)
		if err != nil {
			return 0, err
		}
		v, err := operations.ParseOperand(line)
		if err == nil {
			return v, nil
		}
		s.printf("%s  ✘ Invalid number, try again.%s\n", s.theme.Red, s.theme.Reset)
	}
}

func (s *Session) runOperation(ctx context.Context, op operations.Operation) error {
	args := make([]float64, 0, len(op.Prompts))
	for _, prompt := range op.Prompts {
		v, err := s.readNumber(prompt)
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	res, err := op.Call(args...)
	if err != nil {
		s.logger.DebugContext(ctx, "operation",
			"name", op.Name,
			"args", args,
			"error", err,
		)
		s.printf("\n%s  ✘ Error: %s%s\n\n", s.theme.Red, operationMessage(err), s.theme.Reset)
		return nil
	}
	s.logger.DebugContext(ctx, "operation",
		"name", op.Name,
		"args", args,
		"result", res.Value,
	)
	s.record(res.Expression, res.Value)
	return nil
}

var operationMessages = []struct {
	err     error
	message string
}{
	{operations.ErrDivisionByZero, "Division by zero!"},
	{operations.ErrNegativeRadicand, "Cannot take square root of negative number!"},
	{operations.ErrNotNaturalNumber, "Factorial requires a non-negative integer!"},
}

func operationMessage(err error) string {
	for _, m := range operationMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return err.Error()
}

func (s *Session) expressionMode(ctx context.Context) error {
	s.printf("\n%s  📝 Expression Mode%s\n", s.theme.Blue, s.theme.Reset)
	s.printf("%s  Available: +, -, *, /, //, %%, ^, (), %s%s\n",
		s.theme.Dim, strings.Join(taicalc.SymbolNames(), ", "), s.theme.Reset)
	s.printf("%s  Type 'back' to return to menu%s\n\n", s.theme.Dim, s.theme.Reset)

	for {
		line, err := s.readLine("  " + s.theme.Cyan + s.prompt + s.theme.White)
		if err != nil {
			return err
		}
		expr := strings.TrimSpace(line)
		if strings.EqualFold(expr, "back") {
			return nil
		}
		if expr == "" {
			continue
		}

		value, err := taicalc.Evaluate(expr)
		if err != nil {
			s.logger.DebugContext(ctx, "evaluate",
				"expression", expr,
				"error", err,
			)
			s.printf("%s  ✘ Error: %s%s\n\n", s.theme.Red, err.Error(), s.theme.Reset)
			continue
		}
		s.logger.DebugContext(ctx, "evaluate",
			"expression", expr,
			"result", value,
		)
		s.record(expr, value)
	}
}

func (s *Session) record(expression string, value float64) {
	s.printResult(expression, value)
	s.history.Append(Record{
		Expression: expression,
		Result:     value,
	})
}

func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.output, format, args...)
}
