package metrics

import "github.com/shopspring/decimal"

// CostLine is one labeled amount in a breakdown. Raw keeps the text as
// typed.
type CostLine struct {
	Label string
	Raw   string
}

// Amount is the parsed value of Raw.
func (l CostLine) Amount() decimal.Decimal { return ParseAmount(l.Raw) }

// CostBreakdown is an ordered list of cost lines with fixed labels.
type CostBreakdown struct {
	Lines []CostLine
}

// NewCostBreakdown returns a breakdown with one empty line per label.
func NewCostBreakdown(labels []string) *CostBreakdown {
	cb := &CostBreakdown{Lines: make([]CostLine, len(labels))}
	for i, l := range labels {
		cb.Lines[i].Label = l
	}
	return cb
}

// Set replaces the text of line i. Out-of-range indexes are ignored.
func (cb *CostBreakdown) Set(i int, raw string) {
	if i < 0 || i >= len(cb.Lines) {
		return
	}
	cb.Lines[i].Raw = raw
}

// SetLabel sets the text of the line with the given label and reports
// whether it exists.
func (cb *CostBreakdown) SetLabel(label, raw string) bool {
	for i := range cb.Lines {
		if cb.Lines[i].Label == label {
			cb.Lines[i].Raw = raw
			return true
		}
	}
	return false
}

// Total sums every line.
func (cb *CostBreakdown) Total() decimal.Decimal {
	raws := make([]string, len(cb.Lines))
	for i, l := range cb.Lines {
		raws[i] = l.Raw
	}
	return CostTotal(raws...)
}
