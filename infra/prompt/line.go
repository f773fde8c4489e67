package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/kilianp07/genrel/core/model"
)

// LinePrompter asks one question per line. It is used for pipes, scripts and
// dumb terminals.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Inputs implements Prompter.
func (p *LinePrompter) Inputs(ctx context.Context, partial model.Inputs) (model.Inputs, error) {
	in := partial
	for _, f := range fields {
		dst := f.target(&in)
		if *dst != 0 {
			continue
		}
		v, err := p.ask(ctx, f)
		if err != nil {
			return model.Inputs{}, err
		}
		*dst = v
	}
	return in, nil
}

func (p *LinePrompter) ask(ctx context.Context, f field) (float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		q := f.title + "\n"
		if f.description != "" {
			q += f.description + "\n"
		}
		if _, err := io.WriteString(p.out, q); err != nil {
			return 0, err
		}
		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, fmt.Errorf("no answer to %q: %w", f.title, io.ErrUnexpectedEOF)
			}
			return 0, err
		}
		v, msg := f.parse(line)
		if msg == "" {
			return v, nil
		}
		if _, err := io.WriteString(p.out, msg+"\n"); err != nil {
			return 0, err
		}
	}
}
