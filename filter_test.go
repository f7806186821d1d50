package listpager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FilterOf(t *testing.T) {
	require.True(t, FilterOf[*tKindFilter](&tKindFilter{}))
	require.True(t, FilterOf[*tKindFilter]((*tKindFilter)(nil)))
	require.False(t, FilterOf[*tKindFilter](tOtherFilter{}))
	require.False(t, FilterOf[*tKindFilter](nil))
}

func Test_ModelScope_Accepts(t *testing.T) {
	require.True(t, tEntryScope().Accepts(&tKindFilter{Kind: "a"}))
	require.False(t, tEntryScope().Accepts(tOtherFilter{}))

	noFilters := ModelScope{Model: &tEntry{}}
	require.False(t, noFilters.Accepts(&tKindFilter{}))
}

func Test_ModelScope_Query(t *testing.T) {
	db := newSQLiteDB(t, []string{"a", "b", "c"}, 2)

	var visible []tEntry
	require.NoError(t, tEntryScope().Query(db).Find(&visible).Error)
	require.Equal(t, []int64{1, 3}, ids(visible))

	var all []tEntry
	require.NoError(t, ModelScope{Model: &tEntry{}}.Query(db).Find(&all).Error)
	require.Len(t, all, 3)
}
