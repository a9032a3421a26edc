package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(RenewalDateLayout, value)
	require.NoError(t, err)
	return d
}

func TestValidateRenewalDate(t *testing.T) {
	today := mustDate(t, "2024-01-08")

	tests := []struct {
		name     string
		proposed string
		wantErr  error
	}{
		{name: "yesterday rejected", proposed: "2024-01-07", wantErr: ErrRenewalInPast},
		{name: "today accepted", proposed: "2024-01-08"},
		{name: "default suggestion accepted", proposed: "2024-01-29"},
		{name: "horizon boundary accepted", proposed: "2024-02-05"},
		{name: "one past horizon rejected", proposed: "2024-02-06", wantErr: ErrRenewalTooFar},
		{name: "far future rejected", proposed: "2024-06-01", wantErr: ErrRenewalTooFar},
		{name: "far past rejected", proposed: "2023-01-08", wantErr: ErrRenewalInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proposed := mustDate(t, tt.proposed)
			got, err := ValidateRenewalDate(proposed, today)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, proposed, got)
		})
	}
}

// The worked examples from the renewal rules: a copy due 2024-01-10,
// evaluated with today pinned to 2024-01-08.
func TestValidateRenewalDateMessages(t *testing.T) {
	today := mustDate(t, "2024-01-08")

	_, err := ValidateRenewalDate(mustDate(t, "2024-01-05"), today)
	require.Error(t, err)
	assert.Equal(t, "Invalid date — renewal in the past", err.Error())

	_, err = ValidateRenewalDate(mustDate(t, "2024-02-10"), today)
	require.Error(t, err)
	assert.Equal(t, "Invalid date — renewal exceeds 4 weeks", err.Error())
}

func TestValidateRenewalDateIgnoresClockTime(t *testing.T) {
	// 23:59 today is still today; the rules compare calendar dates.
	today := time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC)
	proposed := time.Date(2024, 1, 8, 0, 1, 0, 0, time.UTC)

	_, err := ValidateRenewalDate(proposed, today)
	assert.NoError(t, err)
}

func TestProposedRenewalDate(t *testing.T) {
	got := ProposedRenewalDate(mustDate(t, "2024-01-08"))
	assert.Equal(t, mustDate(t, "2024-01-29"), got)
}

func TestCivilDate(t *testing.T) {
	in := time.Date(2024, 1, 8, 17, 42, 13, 999, time.FixedZone("X", 3600))
	got := CivilDate(in)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), got)
}

func TestRenewalRejectedErrorUnwraps(t *testing.T) {
	c := &Copy{Imprint: "First edition"}
	err := &RenewalRejectedError{
		Copy:          c,
		SubmittedDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Err:           ErrRenewalInPast,
	}

	assert.True(t, errors.Is(err, ErrRenewalInPast))
	assert.Equal(t, ErrRenewalInPast.Error(), err.Error())
}

func TestCopyIsOverdue(t *testing.T) {
	today := mustDate(t, "2024-01-08")

	past := mustDate(t, "2024-01-07")
	future := mustDate(t, "2024-01-09")
	sameDay := mustDate(t, "2024-01-08")

	tests := []struct {
		name    string
		dueDate *time.Time
		want    bool
	}{
		{name: "no due date", dueDate: nil, want: false},
		{name: "due yesterday", dueDate: &past, want: true},
		{name: "due today is not overdue", dueDate: &sameDay, want: false},
		{name: "due tomorrow", dueDate: &future, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Copy{DueDate: tt.dueDate, Status: StatusOnLoan}
			assert.Equal(t, tt.want, c.IsOverdue(today))
		})
	}
}

func TestCopyStatusIsValid(t *testing.T) {
	assert.True(t, StatusOnLoan.IsValid())
	assert.True(t, StatusMaintenance.IsValid())
	assert.False(t, CopyStatus("borrowed").IsValid())
	assert.False(t, CopyStatus("").IsValid())
}

func TestRenewRequestValidate(t *testing.T) {
	assert.NoError(t, RenewRequest{DueDate: "2024-01-29"}.Validate())
	assert.Error(t, RenewRequest{}.Validate())
	assert.Error(t, RenewRequest{DueDate: "29/01/2024"}.Validate())
	assert.Error(t, RenewRequest{DueDate: "not-a-date"}.Validate())
}
