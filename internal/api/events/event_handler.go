package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/segmentio/kafka-go"
)

type Service interface {
	FinalizeEmployee(ctx context.Context, id int64) (entity.Employee, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnEmployeeCreatedEvent struct {
	EmployeeID int64 `json:"employee_id"`
}

func (h *EventHandler) OnEmployeeCreated(ctx context.Context, msg kafka.Message) error {
	var event OnEmployeeCreatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.EmployeeID <= 0 {
		return nil
	}

	_, err = h.s.FinalizeEmployee(ctx, event.EmployeeID)
	if err != nil {
		return fmt.Errorf("finalize employee: %w", err)
	}

	return nil
}
