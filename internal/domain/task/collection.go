package task

import "brickset/client/internal/request"

const (
	SetCollectionTaskType        = "SetCollectionTask"
	SetMinifigCollectionTaskType = "SetMinifigCollectionTask"
)

// SetCollectionTask is a deferred setCollection call.
type SetCollectionTask struct {
	SetID  uint64                   `json:"set_id"`
	Params request.CollectionParams `json:"params"`
}

func (t *SetCollectionTask) TaskType() string {
	return SetCollectionTaskType
}

func (t *SetCollectionTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}

// SetMinifigCollectionTask is a deferred setMinifigCollection call.
type SetMinifigCollectionTask struct {
	MinifigNumber string                          `json:"minifig_number"`
	Params        request.MinifigCollectionParams `json:"params"`
}

func (t *SetMinifigCollectionTask) TaskType() string {
	return SetMinifigCollectionTaskType
}

func (t *SetMinifigCollectionTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
