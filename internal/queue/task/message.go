package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// NewMessageTask wraps the JSON form of message in a task whose type is the
// routing key. No other envelope is added.
func NewMessageTask(routingKey string, message any) (*asynq.Task, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(routingKey, payload), nil
}
