package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// PrintSummaries prints nothing for an empty list, a single summary as is, and
// several summaries as a JSON array or as text sections headed "game N:".
func (o *Output) PrintSummaries(summaries []*usecase.Summary) {
	switch {
	case len(summaries) == 0:
		return
	case len(summaries) == 1:
		o.PrintSummary(summaries[0])
	case o.format == outputJSON:
		o.printJSON(summaries)
	default:
		for i, summary := range summaries {
			fmt.Fprintf(o.w, "game %d:\n", i+1)
			o.PrintSummary(summary)
		}
	}
}

func (o *Output) PrintSummary(summary *usecase.Summary) {
	if o.format == outputJSON {
		o.printJSON(summary)
		return
	}

	for _, move := range summary.Moves {
		if move.Result.IsIgnored() {
			fmt.Fprintf(o.w, "move %d: column %d ignored\n", move.Index+1, move.Column)
			continue
		}

		fmt.Fprintf(o.w, "move %d: column %d -> row %d (%s, %s)\n",
			move.Index+1, move.Column, move.Result.Row, move.Result.Player, move.Result.Outcome)
	}

	fmt.Fprintln(o.w, resultLine(summary.Final))
}

func resultLine(state entity.GameState) string {
	switch {
	case state.Winner != entity.NoPlayer:
		return fmt.Sprintf("result: %s wins", state.Winner)
	case state.IsTie():
		return "result: tie"
	default:
		return fmt.Sprintf("result: in progress, %s to move", state.Turn)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
