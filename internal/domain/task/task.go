package task

import "encoding/json"

// Task is a unit of work carried through a Redis stream.
type Task interface {
	TaskType() string
	TaskValue() ([]byte, error)
}

// Types lists every task type, one stream each.
var Types = []string{
	SetCollectionTaskType,
	SetMinifigCollectionTaskType,
}

// DefaultTaskValue provides a common implementation for TaskValue
func DefaultTaskValue(task interface{}) ([]byte, error) {
	return json.Marshal(task)
}

func UnmarshalTask[T Task](task []byte) (T, error) {
	var t T
	err := json.Unmarshal(task, &t)
	return t, err
}
