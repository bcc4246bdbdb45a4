package plan

import (
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

// Compare runs the simulation under both strategies and reports which one
// costs less interest. InterestSaved and MonthsSaved measure what choosing
// Better saves over the other strategy. Both runs use the same funding and
// start date.
func Compare(debts []model.Debt, settings model.StrategySettings, start time.Time) model.StrategyComparison {
	avalanche := settings
	avalanche.Strategy = model.StrategyAvalanche
	snowball := settings
	snowball.Strategy = model.StrategySnowball

	cmp := model.StrategyComparison{
		Avalanche: Generate(debts, avalanche, start),
		Snowball:  Generate(debts, snowball, start),
	}

	if cmp.Avalanche.TotalInterest <= cmp.Snowball.TotalInterest {
		cmp.Better = model.StrategyAvalanche
		cmp.InterestSaved = round2(cmp.Snowball.TotalInterest - cmp.Avalanche.TotalInterest)
		cmp.MonthsSaved = cmp.Snowball.Months - cmp.Avalanche.Months
	} else {
		cmp.Better = model.StrategySnowball
		cmp.InterestSaved = round2(cmp.Avalanche.TotalInterest - cmp.Snowball.TotalInterest)
		cmp.MonthsSaved = cmp.Avalanche.Months - cmp.Snowball.Months
	}
	return cmp
}
