package metrics

import "github.com/shopspring/decimal"

// FieldKey names a budget input.
type FieldKey string

const (
	FieldIncome        FieldKey = "income"
	FieldRent          FieldKey = "rent"
	FieldTransport     FieldKey = "transport"
	FieldGroceries     FieldKey = "groceries"
	FieldEntertainment FieldKey = "entertainment"
	FieldSavings       FieldKey = "savings"
)

// Field declares the slider range of one budget input.
type Field struct {
	Key   FieldKey
	Label string
	Min   decimal.Decimal
	Max   decimal.Decimal
	Step  decimal.Decimal
}

// Clamp bounds v to [Min, Max].
func (f Field) Clamp(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(f.Min) {
		return f.Min
	}
	if v.GreaterThan(f.Max) {
		return f.Max
	}
	return v
}

// Nudge moves v one step up or down, staying within range.
func (f Field) Nudge(v decimal.Decimal, up bool) decimal.Decimal {
	if up {
		return f.Clamp(v.Add(f.Step))
	}
	return f.Clamp(v.Sub(f.Step))
}

// Fraction is v's position within the range, from 0 to 1.
func (f Field) Fraction(v decimal.Decimal) float64 {
	span := f.Max.Sub(f.Min)
	if !span.IsPositive() {
		return 0
	}
	frac, _ := f.Clamp(v).Sub(f.Min).Div(span).Float64()
	return frac
}

func field(key FieldKey, label string, maxV, step int64) Field {
	return Field{
		Key:   key,
		Label: label,
		Min:   decimal.Zero,
		Max:   decimal.NewFromInt(maxV),
		Step:  decimal.NewFromInt(step),
	}
}

// DefaultFields are the budget inputs in display order: income first, then
// the five expense categories.
func DefaultFields() []Field {
	return []Field{
		field(FieldIncome, "Monthly Income", 20000, 100),
		field(FieldRent, "Rent", 5000, 50),
		field(FieldTransport, "Transport", 1000, 10),
		field(FieldGroceries, "Groceries", 2000, 25),
		field(FieldEntertainment, "Entertainment", 1000, 10),
		field(FieldSavings, "Savings", 5000, 50),
	}
}

// Budget holds income and category allocations, each bounded by its Field.
type Budget struct {
	fields []Field
	values map[FieldKey]decimal.Decimal
}

// NewBudget builds a budget over fields with starting values. Missing values
// start at the field minimum; all values are clamped.
func NewBudget(fields []Field, initial map[FieldKey]decimal.Decimal) *Budget {
	b := &Budget{
		fields: fields,
		values: make(map[FieldKey]decimal.Decimal, len(fields)),
	}
	for _, f := range fields {
		v, ok := initial[f.Key]
		if !ok {
			v = f.Min
		}
		b.values[f.Key] = f.Clamp(v)
	}
	return b
}

// Fields returns the field declarations in display order.
func (b *Budget) Fields() []Field { return b.fields }

// FieldByKey looks up a declaration.
func (b *Budget) FieldByKey(key FieldKey) (Field, bool) {
	for _, f := range b.fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Get returns the current value of key.
func (b *Budget) Get(key FieldKey) decimal.Decimal {
	return b.values[key]
}

// Set stores v clamped to key's range and returns the stored value. Unknown
// keys are ignored.
func (b *Budget) Set(key FieldKey, v decimal.Decimal) decimal.Decimal {
	f, ok := b.FieldByKey(key)
	if !ok {
		return decimal.Zero
	}
	v = f.Clamp(v)
	b.values[key] = v
	return v
}

// Nudge steps key up or down by its declared step.
func (b *Budget) Nudge(key FieldKey, up bool) decimal.Decimal {
	f, ok := b.FieldByKey(key)
	if !ok {
		return decimal.Zero
	}
	return b.Set(key, f.Nudge(b.values[key], up))
}

// Income is the income field.
func (b *Budget) Income() decimal.Decimal { return b.values[FieldIncome] }

// Categories returns every non-income value in display order.
func (b *Budget) Categories() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(b.fields))
	for _, f := range b.fields {
		if f.Key == FieldIncome {
			continue
		}
		out = append(out, b.values[f.Key])
	}
	return out
}

// Allocated is the sum of all categories.
func (b *Budget) Allocated() decimal.Decimal { return Sum(b.Categories()...) }

// Remaining is income minus all categories.
func (b *Budget) Remaining() decimal.Decimal {
	return BudgetRemaining(b.Income(), b.Categories()...)
}

// SavingsRate is the savings category as a percentage of income.
func (b *Budget) SavingsRate() int {
	return SavingsRate(b.Income(), b.values[FieldSavings])
}

// SavingsBand rates SavingsRate, or BandNone without income.
func (b *Budget) SavingsBand() Band {
	if !b.Income().IsPositive() {
		return BandNone
	}
	return SavingsBand(b.SavingsRate())
}
