package dataset_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/dataset/datasettest"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	store := datasettest.NewStore(t, datasettest.SampleFixture())

	var buf bytes.Buffer
	n, err := dataset.ExportCSV(context.Background(), store, &buf)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	want := "receiving_institution,receiving_course,sending_institution,sending_courses\n" +
		"Coast University,ENGL 100,Harbor College,ENGL101\n" +
		"State University,ENGL 1A,Valley College,ENGL101\n" +
		"State University,CALC 3,Mountain College,MATH200 + MATH201\n" +
		"State University,MATH 21A,Valley College,MATH200\n" +
		"State University,ENGL 1A,Mountain College,ENGL101\n"
	assert.Equal(t, want, buf.String())
}

type failingTable struct{ core.ArticulationTable }

func (failingTable) AllArticulations(context.Context) ([]core.ArticulationRow, error) {
	return nil, core.ErrDataUnavailable
}

func TestExportCSV_SourceError(t *testing.T) {
	var buf bytes.Buffer
	_, err := dataset.ExportCSV(context.Background(), failingTable{}, &buf)
	assert.True(t, errors.Is(err, core.ErrDataUnavailable))
	assert.Empty(t, buf.String())
}
