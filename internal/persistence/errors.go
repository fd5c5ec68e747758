package persistence

import "errors"

var (
	ErrCloudPersistence = errors.New("cloud persistence failed")
	ErrLocalPersistence = errors.New("local persistence failed")
)
