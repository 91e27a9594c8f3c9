package points

import "github.com/shopspring/decimal"

// InvestmentType identifies a fundable asset class.
type InvestmentType string

const (
	TypeBeehive   InvestmentType = "beehive"
	TypeOliveTree InvestmentType = "olive_tree"
	TypeVineyard  InvestmentType = "vineyard"
)

// Rule bounds the accepted investment amount for a type and carries the
// bonus percentage the platform advertises for it.
type Rule struct {
	MinAmount     decimal.Decimal
	MaxAmount     decimal.Decimal
	ExpectedBonus decimal.Decimal
}

// Amounts in EUR, bonus in percent.
var investmentRules = map[InvestmentType]Rule{
	TypeBeehive:   {MinAmount: dec(50), MaxAmount: dec(500), ExpectedBonus: dec(10)},
	TypeOliveTree: {MinAmount: dec(80), MaxAmount: dec(800), ExpectedBonus: dec(15)},
	TypeVineyard:  {MinAmount: dec(150), MaxAmount: dec(1500), ExpectedBonus: dec(20)},
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// RuleFor returns the fixed rule tuple for the investment type.
func RuleFor(t InvestmentType) (Rule, bool) {
	r, ok := investmentRules[t]
	return r, ok
}

// InvestmentTypes returns the known investment types.
func InvestmentTypes() []InvestmentType {
	return []InvestmentType{TypeBeehive, TypeOliveTree, TypeVineyard}
}
