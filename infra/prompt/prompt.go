// Package prompt collects the study inputs from an operator. Invalid answers
// are rejected with an explanation and asked again until a valid value, EOF
// or cancellation.
package prompt

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/kilianp07/genrel/core/grid"
	"github.com/kilianp07/genrel/core/model"
)

// Prompter fills the missing fields of partial. Fields already set (non zero)
// are kept as is.
type Prompter interface {
	Inputs(ctx context.Context, partial model.Inputs) (model.Inputs, error)
}

// field describes one question.
type field struct {
	title       string
	description string
	placeholder string
	// invalid is shown when the answer is not a number.
	invalid string
	// outOfRange is shown when the number fails validation.
	outOfRange string
	validate   func(float64) error
	target     func(*model.Inputs) *float64
}

var fields = []field{
	{
		title:       "Enter peak load for the facility in kW:",
		placeholder: "e.g., 2500",
		invalid:     "Invalid Input.  Please enter a valid number for peak demand in kW.",
		outOfRange:  "Peak demand must be a positive number.",
		validate:    model.ValidateDemand,
		target:      func(in *model.Inputs) *float64 { return &in.DemandKW },
	},
	{
		title:       "Enter the estimated reliability of each unit in percent (0-100):",
		placeholder: "e.g., 95",
		invalid:     "Invalid Input.  Please enter a valid number for reliability.",
		outOfRange:  "Reliability must be between 0 and 100 percent.",
		validate:    model.ValidateReliability,
		target:      func(in *model.Inputs) *float64 { return &in.UnitReliabilityPct },
	},
	{
		title:       "Enter the estimated scheduled outage hours for each unit:",
		description: "Hint (1 wk = 168 , 2 wks = 336 , 3 wks = 504  , 4 wks= 672 )",
		placeholder: "e.g., 336",
		invalid:     "Invalid Input.  Please enter a valid number for outage hours.",
		outOfRange:  "Outage hours must be greater than 0 and fit the maintenance of every unit in one year.",
		validate:    grid.ValidateOutageHours,
		target:      func(in *model.Inputs) *float64 { return &in.ScheduledOutageHrs },
	},
}

// parse converts an answer and returns the operator facing message on failure.
func (f field) parse(s string) (float64, string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, f.invalid
	}
	if err := f.validate(v); err != nil {
		return 0, f.outOfRange
	}
	return v, ""
}

// New returns an interactive form when both ends are terminals and a plain
// line based prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &FormPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
