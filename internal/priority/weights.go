package priority

// Weights are the user-tunable multipliers for the priority score.
// Every field is a positive multiplier; a zero or negative value is
// treated as unset and replaced by its default.
type Weights struct {
	Strategic float64 `json:"strategic" yaml:"strategic"`
	CashNow   float64 `json:"cashNow" yaml:"cash_now"`
	Upside    float64 `json:"upside" yaml:"upside"`
	Urgency   float64 `json:"urgency" yaml:"urgency"`
	Effort    float64 `json:"effort" yaml:"effort"`
	Risk      float64 `json:"risk" yaml:"risk"`
}

func DefaultWeights() Weights {
	return Weights{
		Strategic: 2,
		CashNow:   3,
		Upside:    1,
		Urgency:   2,
		Effort:    1,
		Risk:      2,
	}
}

// Normalized fills unset fields from the defaults.
func (w Weights) Normalized() Weights {
	def := DefaultWeights()
	if w.Strategic <= 0 {
		w.Strategic = def.Strategic
	}
	if w.CashNow <= 0 {
		w.CashNow = def.CashNow
	}
	if w.Upside <= 0 {
		w.Upside = def.Upside
	}
	if w.Urgency <= 0 {
		w.Urgency = def.Urgency
	}
	if w.Effort <= 0 {
		w.Effort = def.Effort
	}
	if w.Risk <= 0 {
		w.Risk = def.Risk
	}
	return w
}
