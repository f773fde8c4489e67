package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/kilianp07/genrel/core/model"
)

// FormPrompter shows a single interactive form for the missing inputs.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

// Inputs implements Prompter.
func (p *FormPrompter) Inputs(ctx context.Context, partial model.Inputs) (model.Inputs, error) {
	pending := missing(partial)
	if len(pending) == 0 {
		return partial, nil
	}
	answers := make([]string, len(pending))
	inputs := make([]huh.Field, len(pending))
	for i, f := range pending {
		inputs[i] = huh.NewInput().
			Title(f.title).
			Description(f.description).
			Placeholder(f.placeholder).
			Value(&answers[i]).
			Validate(func(s string) error {
				if _, msg := f.parse(s); msg != "" {
					return errors.New(msg)
				}
				return nil
			})
	}

	form := huh.NewForm(
		huh.NewGroup(inputs...).
			Title("Generation availability study").
			Description("Facility inputs shared by every sizing case"),
	).WithInput(p.in).WithOutput(p.out)
	if err := form.RunWithContext(ctx); err != nil {
		return model.Inputs{}, err
	}
	return apply(partial, pending, answers)
}

// missing returns the questions whose target is still zero in in.
func missing(in model.Inputs) []field {
	var out []field
	for _, f := range fields {
		if *f.target(&in) == 0 {
			out = append(out, f)
		}
	}
	return out
}

// apply parses answers[i] for pending[i] into a copy of in.
func apply(in model.Inputs, pending []field, answers []string) (model.Inputs, error) {
	if len(answers) != len(pending) {
		return model.Inputs{}, fmt.Errorf("%d answers for %d questions", len(answers), len(pending))
	}
	for i, f := range pending {
		v, msg := f.parse(answers[i])
		if msg != "" {
			return model.Inputs{}, fmt.Errorf("%w: %s", model.ErrInvalidParameter, msg)
		}
		*f.target(&in) = v
	}
	return in, nil
}
