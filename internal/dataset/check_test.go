package dataset_test

import (
	"context"
	"testing"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/dataset/datasettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("clean dataset", func(t *testing.T) {
		store := datasettest.NewStore(t, datasettest.SampleFixture())
		violations, err := store.Check(ctx)
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("violations", func(t *testing.T) {
		store := datasettest.NewStore(t, datasettest.SampleFixture())
		db := store.Adapter().DB()

		_, err := db.ExecContext(ctx, `INSERT INTO articulations (id, receiving_institution, receiving_course, sending_institution)
			VALUES (100, 'Harbor College', 'BIO 1', 'Coast University')`)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, `INSERT INTO articulation_courses (articulation_id, ordinal, course) VALUES (100, 0, 'BIO10')`)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, `INSERT INTO articulations (id, receiving_institution, receiving_course, sending_institution)
			VALUES (101, 'State University', 'PHYS 7A', 'Valley College')`)
		require.NoError(t, err)

		violations, err := store.Check(ctx)
		require.NoError(t, err)
		assert.Equal(t, []dataset.Violation{
			{
				Rule:    dataset.RuleReceivingInstitution,
				Subject: "Harbor College / BIO 1",
				Message: `receiving_institution "Harbor College" is a community_college, want university`,
			},
			{
				Rule:    dataset.RuleSendingInstitution,
				Subject: "Harbor College / BIO 1",
				Message: `sending_institution "Coast University" is a university, want community_college`,
			},
			{
				Rule:    dataset.RuleEmptySendingSet,
				Subject: "State University / PHYS 7A",
				Message: `no sending courses from "Valley College"`,
			},
		}, violations)
	})
}
