package listpager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Direction_Valid_And_ForOperator(t *testing.T) {
	require.True(t, DirectionASC.Valid())
	require.True(t, DirectionDESC.Valid())
	require.False(t, Direction("sideways").Valid())

	require.Equal(t, OperatorGT, DirectionASC.ForOperator())
	require.Panics(t, func() { DirectionDESC.ForOperator() })
}

func Test_OrderBy_validate(t *testing.T) {
	tests := []struct {
		name string
		ord  OrderBy
		ok   bool
	}{
		{"id ascending", IDOrdering("id"), true},
		{"qualified column", IDOrdering("phplist_user_user.id"), true},
		{"quoted column", IDOrdering("`id`"), true},
		{"empty column", OrderBy{Column: "", Direction: DirectionASC}, false},
		{"descending breaks resume", OrderBy{Column: "id", Direction: DirectionDESC}, false},
		{"invalid direction", OrderBy{Column: "id", Direction: "bad"}, false},
		{"injection attempt", IDOrdering("id; DROP TABLE users"), false},
		{"quote injection", IDOrdering("id'--"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ord.validate(); (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
			}
		})
	}
}

func Test_OrderBy_ToSQL(t *testing.T) {
	require.Equal(t, "id ASC", IDOrdering("id").ToSQL())
	require.Equal(t, "t.id ASC", IDOrdering("t.id").ToSQL())
}
