package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Plan
		wantErr bool
	}{
		{name: "free", input: "free", want: PlanFree},
		{name: "basic", input: "basic", want: PlanBasic},
		{name: "premium", input: "premium", want: PlanPremium},
		{name: "platinum", input: "platinum", want: PlanPlatinum},
		{name: "unknown plan", input: "gold", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Free", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlan(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlan)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanSignalsLimit(t *testing.T) {
	assert.Equal(t, 3, PlanFree.SignalsLimit())
	assert.Equal(t, 10, PlanBasic.SignalsLimit())
	assert.Equal(t, UnlimitedSignals, PlanPremium.SignalsLimit())
	assert.Equal(t, UnlimitedSignals, PlanPlatinum.SignalsLimit())
}

func TestSignalLabel(t *testing.T) {
	tests := []struct {
		plan string
		want string
	}{
		{plan: "free", want: SignalTypeSilver},
		{plan: "basic", want: SignalTypeGold},
		{plan: "premium", want: SignalTypePremium},
		{plan: "platinum", want: SignalTypePlatinum},
		{plan: "something-else", want: SignalTypeSilver},
		{plan: "", want: SignalTypeSilver},
	}
	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			assert.Equal(t, tt.want, SignalLabel(tt.plan))
		})
	}
}
