package validation

import (
	"encoding/json"
)

// Rule messages are part of the wire contract and must match exactly.
const (
	MsgNameNotString       = "name must be a string"
	MsgNameEmpty           = "name should not be empty"
	MsgIsCompletedNotBool  = "isCompleted must be a boolean value"
	MsgIsCompletedRequired = "isCompleted should not be empty"
)

// CreateTaskPayload is the decoded body of POST /tasks.
type CreateTaskPayload struct {
	Name        json.RawMessage `json:"name"`
	IsCompleted json.RawMessage `json:"isCompleted"`
}

// UpdateTaskPayload is the decoded body of PATCH /tasks/{id}.
type UpdateTaskPayload struct {
	Name        json.RawMessage `json:"name"`
	IsCompleted json.RawMessage `json:"isCompleted"`
}

// CreateTaskFields holds the values extracted from a valid create payload.
type CreateTaskFields struct {
	Name        string
	IsCompleted bool
}

// UpdateTaskFields holds the values extracted from a valid update payload.
type UpdateTaskFields struct {
	Name        string
	IsCompleted bool
}

// TaskValidator validates task request payloads, producing one
// human-readable message per violated rule. When a field violates both
// its type rule and its required rule, the type message comes first;
// name violations precede isCompleted violations.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// validateName applies the shared name rules: required, string, non-empty.
func (tv *TaskValidator) validateName(raw json.RawMessage) (string, []string) {
	if tv.validator.IsAbsentOrNull(raw) {
		return "", []string{MsgNameNotString, MsgNameEmpty}
	}

	name, ok := tv.validator.AsString(raw)
	if !ok {
		return "", []string{MsgNameNotString}
	}
	if name == "" {
		return "", []string{MsgNameEmpty}
	}
	return name, nil
}

// ValidateCreate checks a creation payload. isCompleted is optional and
// defaults to false; when present it must be a boolean.
func (tv *TaskValidator) ValidateCreate(payload CreateTaskPayload) (CreateTaskFields, []string) {
	var messages []string

	name, nameViolations := tv.validateName(payload.Name)
	messages = append(messages, nameViolations...)

	isCompleted := false
	if !tv.validator.IsAbsentOrNull(payload.IsCompleted) {
		value, ok := tv.validator.AsBool(payload.IsCompleted)
		if !ok {
			messages = append(messages, MsgIsCompletedNotBool)
		} else {
			isCompleted = value
		}
	}

	return CreateTaskFields{Name: name, IsCompleted: isCompleted}, messages
}

// ValidateUpdate checks an update payload. Both fields are required and
// both are always overwritten downstream.
func (tv *TaskValidator) ValidateUpdate(payload UpdateTaskPayload) (UpdateTaskFields, []string) {
	var messages []string

	name, nameViolations := tv.validateName(payload.Name)
	messages = append(messages, nameViolations...)

	var isCompleted bool
	if tv.validator.IsAbsentOrNull(payload.IsCompleted) {
		messages = append(messages, MsgIsCompletedNotBool, MsgIsCompletedRequired)
	} else {
		value, ok := tv.validator.AsBool(payload.IsCompleted)
		if !ok {
			messages = append(messages, MsgIsCompletedNotBool)
		} else {
			isCompleted = value
		}
	}

	return UpdateTaskFields{Name: name, IsCompleted: isCompleted}, messages
}
