package results

import (
	"context"
	"errors"
	"testing"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreProvider(t *testing.T) {
	store := &contract.MockResultsStore{}
	store.On("Get", schema.SizeFunctionName, "s1").
		Return([]byte(`{"metrics":[{"metricId":"boundaryAreaOverlap","classId":"eez","sketchId":"s1","value":5}]}`), nil)
	store.On("Get", schema.SizeFunctionName, "s2").Return(nil, nil)
	store.On("Get", schema.SizeFunctionName, "s3").Return(nil, errors.New("connection refused"))
	store.On("Get", schema.SizeFunctionName, "s4").Return([]byte(`[1,2]`), nil)

	p := NewStoreProvider(store)
	ctx := context.Background()

	result, err := p.GetResult(ctx, schema.SizeFunctionName, "s1")
	require.NoError(t, err)
	require.Len(t, result.Metrics, 1)
	assert.Equal(t, 5.0, result.Metrics[0].Value)

	result, err = p.GetResult(ctx, schema.SizeFunctionName, "s2")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())

	_, err = p.GetResult(ctx, schema.SizeFunctionName, "s3")
	assert.EqualError(t, err, "connection refused")

	_, err = p.GetResult(ctx, schema.SizeFunctionName, "s4")
	assert.Error(t, err)

	store.AssertExpectations(t)
}
