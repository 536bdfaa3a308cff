package reality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		Region:        "gangnam",
		TargetPrice:   500_000_000,
		AnnualIncome:  100_000_000,
		CashAvailable: 100_000_000,
		IsFirstHome:   true,
	}
}

func TestInput_Problems(t *testing.T) {
	assert.Empty(t, validInput().Problems())
	assert.NoError(t, validInput().Validate())

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantMsg string
	}{
		{"blank region", func(in *Input) { in.Region = "  " }, "region is required"},
		{"zero price", func(in *Input) { in.TargetPrice = 0 }, "target_price must be > 0"},
		{"negative price", func(in *Input) { in.TargetPrice = -1 }, "target_price must be > 0"},
		{"zero income", func(in *Input) { in.AnnualIncome = 0 }, "annual_income must be > 0"},
		{"negative cash", func(in *Input) { in.CashAvailable = -1 }, "cash_available must be >= 0"},
		{"negative debt", func(in *Input) { in.ExistingDebt = -1 }, "existing_debt must be >= 0"},
		{"too many houses", func(in *Input) { in.HouseCount = 11 }, "house_count must be between 0 and 10"},
		{"negative houses", func(in *Input) { in.HouseCount = -1 }, "house_count must be between 0 and 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			problems := in.Problems()
			require.NotEmpty(t, problems)
			assert.Contains(t, problems, tt.wantMsg)
			assert.ErrorContains(t, in.Validate(), tt.wantMsg)
		})
	}
}

func TestInput_ProblemsAccumulate(t *testing.T) {
	problems := Input{}.Problems()
	assert.Len(t, problems, 3)
}
