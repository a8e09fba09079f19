package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoal_Progress(t *testing.T) {
	tests := []struct {
		name          string
		target        decimal.Decimal
		current       decimal.Decimal
		wantProgress  decimal.Decimal
		wantPercent   decimal.Decimal
		wantRemaining decimal.Decimal
		wantReached   bool
	}{
		{
			name:          "half way",
			target:        decimal.NewFromInt(1000),
			current:       decimal.NewFromInt(500),
			wantProgress:  decimal.NewFromFloat(0.5),
			wantPercent:   decimal.NewFromInt(50),
			wantRemaining: decimal.NewFromInt(500),
		},
		{
			name:          "over the target",
			target:        decimal.NewFromInt(100),
			current:       decimal.NewFromInt(150),
			wantProgress:  decimal.NewFromFloat(1.5),
			wantPercent:   decimal.NewFromInt(100),
			wantRemaining: decimal.Zero,
			wantReached:   true,
		},
		{
			name:          "no target",
			target:        decimal.Zero,
			current:       decimal.NewFromInt(10),
			wantProgress:  decimal.Zero,
			wantPercent:   decimal.Zero,
			wantRemaining: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{TargetAmount: tt.target, CurrentAmount: tt.current}
			assert.True(t, tt.wantProgress.Equal(g.Progress()), "progress %s", g.Progress())
			assert.True(t, tt.wantPercent.Equal(g.ProgressPercent()), "percent %s", g.ProgressPercent())
			assert.True(t, tt.wantRemaining.Equal(g.Remaining()), "remaining %s", g.Remaining())
			assert.Equal(t, tt.wantReached, g.IsReached())
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	valid := Goal{Title: "Trip", TargetAmount: decimal.NewFromInt(5000), Status: GoalStatusActive, Priority: GoalPriorityHigh}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = " "
	assert.ErrorIs(t, noTitle.Validate(), ErrGoalTitleRequired)

	noTarget := valid
	noTarget.TargetAmount = decimal.Zero
	assert.ErrorIs(t, noTarget.Validate(), ErrInvalidTargetAmount)

	badStatus := valid
	badStatus.Status = "DONE"
	assert.ErrorIs(t, badStatus.Validate(), ErrInvalidGoalStatus)

	badPriority := valid
	badPriority.Priority = "URGENT"
	assert.ErrorIs(t, badPriority.Validate(), ErrInvalidGoalPriority)
}

func TestGoal_IsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	past := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	g := Goal{TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(10), Status: GoalStatusActive, TargetDate: &past}
	assert.True(t, g.IsOverdue(now))

	g.TargetDate = &today
	assert.False(t, g.IsOverdue(now))

	g.TargetDate = &past
	g.Status = GoalStatusPaused
	assert.False(t, g.IsOverdue(now))
}
