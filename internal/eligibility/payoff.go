package eligibility

import "math"

// PayoffAPRCap limits what the investor can collect: the payoff never
// exceeds the investment compounded at a 19.9% annual rate.
const PayoffAPRCap = 0.199

// PayoffInput parameterizes a home-equity payoff preview. Investment is
// clamped to the program's maximum for the property before projecting.
type PayoffInput struct {
	HomeValue          float64 `json:"homeValue"`
	MortgageBalance    float64 `json:"mortgageBalance"`
	Investment         float64 `json:"investment"`
	AnnualAppreciation float64 `json:"annualAppreciation"`
	TermYears          int     `json:"termYears"`
}

// PayoffProjection reports what the homeowner would owe the investor at the
// end of the term: the lesser of the investor's equity share of the
// projected home value and the APR-capped maximum.
type PayoffProjection struct {
	Investment         float64 `json:"investment"`
	EquitySharePercent float64 `json:"equitySharePercent"`
	ProjectedHomeValue float64 `json:"projectedHomeValue"`
	RawShare           float64 `json:"rawShare"`
	AprCappedShare     float64 `json:"aprCappedShare"`
	Payoff             float64 `json:"payoff"`
	AprCapApplied      bool    `json:"aprCapApplied"`
}

// ProjectPayoff previews the end-of-term payoff for a home-equity
// investment: home value compounds at the given appreciation rate, the
// investor's share percentage is the investment times the 2.0x exchange
// multiplier relative to today's value, and the result is capped at the
// investment compounded at the APR limit.
func (e *Engine) ProjectPayoff(in PayoffInput) PayoffProjection {
	years := in.TermYears
	if years < 0 {
		years = 0
	}

	investment := math.Max(0, math.Min(in.Investment, MaxInvestment(in.HomeValue, in.MortgageBalance)))
	projected := in.HomeValue * math.Pow(1+in.AnnualAppreciation, float64(years))

	sharePct := 0.0
	if in.HomeValue > 0 {
		sharePct = investment / in.HomeValue * HomeEquityMultiplier * 100
	}
	raw := sharePct / 100 * projected
	capped := investment * math.Pow(1+PayoffAPRCap, float64(years))

	return PayoffProjection{
		Investment:         round2(investment),
		EquitySharePercent: round2(sharePct),
		ProjectedHomeValue: round2(projected),
		RawShare:           round2(raw),
		AprCappedShare:     round2(capped),
		Payoff:             round2(math.Min(raw, capped)),
		AprCapApplied:      capped < raw,
	}
}
