package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskEstimateEmail = "estimates.email"

const TaskConversationCleanup = "conversations.cleanup"

type EstimateEmailPayload struct {
	EstimateID string `json:"estimateId"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
}

type ConversationCleanupPayload struct {
	MaxAgeHours int `json:"maxAgeHours"`
}

func NewEstimateEmailTask(payload EstimateEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEstimateEmail, data), nil
}

func ParseEstimateEmailPayload(task *asynq.Task) (EstimateEmailPayload, error) {
	var payload EstimateEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return EstimateEmailPayload{}, err
	}
	return payload, nil
}

func NewConversationCleanupTask(payload ConversationCleanupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskConversationCleanup, data), nil
}

func ParseConversationCleanupPayload(task *asynq.Task) (ConversationCleanupPayload, error) {
	var payload ConversationCleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ConversationCleanupPayload{}, err
	}
	return payload, nil
}
