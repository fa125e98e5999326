package model

import (
	"github.com/rs/xid"
)

type TaskID string

func NewTaskID() TaskID {
	return TaskID(xid.New().String())
}

type TaskStatus string

const (
	TaskStatusDefined   TaskStatus = "DEFINED"
	TaskStatusProgress  TaskStatus = "PROGRESS"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// Task is a unit of work attached to a story. Tasks are persisted and
// cascade-deleted with their story but no route manipulates them yet.
type Task struct {
	ID      TaskID
	Name    string
	OwnerID UserID
	Status  TaskStatus
	Hours   float64
}
