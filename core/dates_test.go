package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateInt_Parts(t *testing.T) {
	d := NewDate(2025, 4, 9)
	assert.Equal(t, DateInt(20250409), d)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 4, d.Month())
	assert.Equal(t, 9, d.Day())
	assert.Equal(t, "2025-04-09", d.String())
	assert.Equal(t, "2025년 4월 9일", d.Korean())
}

func TestDateInt_Valid(t *testing.T) {
	tests := []struct {
		date DateInt
		want bool
	}{
		{20250101, true},
		{20240229, true},
		{20250229, false},
		{20251301, false},
		{20250400, false},
		{NoDate, false},
		{2025041, false},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.Valid())
		})
	}
}

func TestDateInt_AddDaysRollsOver(t *testing.T) {
	assert.Equal(t, DateInt(20250203), DateInt(20250127).AddDays(7))
	assert.Equal(t, DateInt(20260105), DateInt(20251229).AddDays(7))
	assert.Equal(t, DateInt(20240301), DateInt(20240223).AddDays(7))
}

func TestDateInt_DaysUntil(t *testing.T) {
	assert.Equal(t, 5, DateInt(20250128).DaysUntil(20250202))
	assert.Equal(t, 0, DateInt(20250128).DaysUntil(20250128))
	assert.Equal(t, -3, DateInt(20250301).DaysUntil(20250226))
}

func TestDateInt_Weekday(t *testing.T) {
	assert.Equal(t, 0, DateInt(20250407).Weekday()) // Monday
	assert.Equal(t, 5, DateInt(20250412).Weekday()) // Saturday
	assert.Equal(t, 6, DateInt(20250413).Weekday()) // Sunday
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-04-09")
	require.NoError(t, err)
	assert.Equal(t, DateInt(20250409), d)

	d, err = ParseDate("  ")
	require.NoError(t, err)
	assert.Equal(t, NoDate, d)

	_, err = ParseDate("2025/04/09")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestClocks(t *testing.T) {
	assert.Equal(t, DateInt(20250301), FixedClock(20250301).Today())

	seoul := NewSystemClock("Asia/Seoul")
	want := DateOf(time.Now().In(seoul.Location))
	assert.Equal(t, want, seoul.Today())

	assert.Equal(t, time.UTC, NewSystemClock("Nowhere/Invalid").Location)
}
