package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rentcheck/rentcheck/internal/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleEvaluation(t *testing.T, rent int) (engine.RenterProfile, engine.Listing, engine.EvaluationResult) {
	t.Helper()

	profile := engine.RenterProfile{
		RenterType:    engine.RenterWorker,
		MonthlyIncome: 15000,
		DocumentsHeld: []engine.DocumentKind{engine.DocBankStatement, engine.DocPayslip},
	}
	listing := engine.Listing{
		Name:       "Two-bed flat",
		Rent:       rent,
		AreaDemand: engine.DemandLow,
	}

	result, err := engine.New(engine.DefaultConfig(), nil).Evaluate(profile, listing)
	require.NoError(t, err)
	return profile, listing, *result
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	profile, listing, result := sampleEvaluation(t, 4000)
	saved, err := store.Save(profile, listing, result)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())

	got, err := store.Get(saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, "Two-bed flat", got.ListingName)
	require.Equal(t, profile, got.Profile)
	require.Equal(t, listing, got.Listing)
	require.Equal(t, result.Score, got.Result.Score)
	require.Equal(t, result.Verdict, got.Result.Verdict)
	require.Equal(t, result.SuggestedBudget, got.Result.SuggestedBudget)
}

func TestGetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("no-such-id")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestListNewestFirstWithLimitAndOffset(t *testing.T) {
	store := newTestStore(t)

	var ids []string
	for _, rent := range []int{3000, 4000, 5000} {
		profile, listing, result := sampleEvaluation(t, rent)
		saved, err := store.Save(profile, listing, result)
		require.NoError(t, err)
		ids = append(ids, saved.ID)
	}

	count, err := store.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	entries, err := store.List(2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, ids[2], entries[0].ID)
	require.Equal(t, ids[1], entries[1].ID)

	rest, err := store.List(2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, ids[0], rest[0].ID)
}
