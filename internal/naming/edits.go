package naming

import (
	"errors"
	"fmt"
	"time"

	"github.com/backmassage/nametag/internal/lexer"
)

// Sentinel errors for rejected edit values.
var (
	ErrInvalidYear  = errors.New("not a 19xx or 20xx year")
	ErrInvalidLabel = errors.New("not a label (two or more uppercase letters)")
	ErrInvalidDate  = errors.New("not a YYYY-MM-DD date")
)

const dateLayout = "2006-01-02"

// Edits are the changes requested for every file in a run. Set values
// replace existing tokens of their kind; append values are added after
// them.
type Edits struct {
	YearSet     string
	YearAppend  []string
	LabelSet    string
	LabelAppend []string
	Date        string
}

// Validate checks that each value would tokenize back to a single token of
// the kind it is inserted as, so an edit never produces a name that reads
// differently from what was asked.
func (e Edits) Validate() error {
	years := append([]string{e.YearSet}, e.YearAppend...)
	for i, y := range years {
		if i == 0 && y == "" {
			continue
		}
		if !isSingle(y, lexer.Year) {
			return fmt.Errorf("year %q: %w", y, ErrInvalidYear)
		}
	}
	labels := append([]string{e.LabelSet}, e.LabelAppend...)
	for i, l := range labels {
		if i == 0 && l == "" {
			continue
		}
		if !isSingle(l, lexer.Label) {
			return fmt.Errorf("label %q: %w", l, ErrInvalidLabel)
		}
	}
	if e.Date != "" {
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			return fmt.Errorf("date %q: %w", e.Date, ErrInvalidDate)
		}
	}
	return nil
}

func isSingle(v string, cat lexer.Category) bool {
	toks := lexer.Tokenize(v)
	return len(toks) == 1 && toks[0].Category == cat
}
