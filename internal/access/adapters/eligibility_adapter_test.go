package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveygate/internal/access/models"
	eligibilityModels "surveygate/internal/eligibility/models"
	eligibilityService "surveygate/internal/eligibility/service"
	eligibilityStore "surveygate/internal/eligibility/store"
)

func TestEligibilityAdapter_Check(t *testing.T) {
	ctx := context.Background()
	store := eligibilityStore.NewInMemoryStore()
	age := 19
	city := "Erbil"
	require.NoError(t, store.SaveProfile(ctx, eligibilityModels.Profile{UserID: 1, Age: &age, City: &city}))
	minAge := 21
	require.NoError(t, store.SaveRules(ctx, 7, &eligibilityModels.RuleDocument{
		MinAge: &minAge,
		Cities: []string{"Erbil"},
		AdvancedRules: []eligibilityModels.AdvancedRule{
			{Key: "q_4", Op: eligibilityModels.OpEquals, Val: eligibilityModels.StringValue("yes")},
		},
	}))

	adapter := NewEligibilityAdapter(eligibilityService.New(store, store, store))

	verdict, err := adapter.Check(ctx, 1, 7)
	require.NoError(t, err)
	assert.False(t, verdict.Eligible)
	require.Len(t, verdict.Failed, 2)
	assert.Equal(t, models.FailedCheck{Check: "age"}, verdict.Failed[0])
	assert.Equal(t, "advanced", verdict.Failed[1].Check)
	assert.Equal(t, "q_4", verdict.Failed[1].Key)

	open, err := adapter.Check(ctx, 1, 8)
	require.NoError(t, err)
	assert.True(t, open.Eligible)
	assert.Empty(t, open.Failed)
}
