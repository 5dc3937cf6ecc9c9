package mq

import "file-registry-api/internal/domain/event"

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(event.Event) {}
