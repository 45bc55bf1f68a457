package task

import (
	"testing"

	"brickset/client/internal/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCollectionTask_Value(t *testing.T) {
	original := &SetCollectionTask{
		SetID:  6876,
		Params: request.NewCollectionParams().Owned(2).Notes("boxed"),
	}

	value, err := original.TaskValue()
	require.NoError(t, err)
	assert.JSONEq(t, `{"set_id":6876,"params":{"own":1,"qtyOwned":2,"notes":"boxed"}}`, string(value))

	decoded, err := UnmarshalTask[*SetCollectionTask](value)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestSetMinifigCollectionTask_Value(t *testing.T) {
	original := &SetMinifigCollectionTask{
		MinifigNumber: "sw0001a",
		Params:        request.NewMinifigCollectionParams().Wanted(true),
	}

	value, err := original.TaskValue()
	require.NoError(t, err)
	assert.JSONEq(t, `{"minifig_number":"sw0001a","params":{"want":1}}`, string(value))

	decoded, err := UnmarshalTask[*SetMinifigCollectionTask](value)
	require.NoError(t, err)
	assert.Equal(t, SetMinifigCollectionTaskType, decoded.TaskType())
	assert.Equal(t, original, decoded)
}
