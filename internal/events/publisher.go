// Package events fans game events out to interested listeners
package events

import (
	"context"

	"github.com/mcoot/wordtiles/internal/model"
)

// Publisher delivers game events. Delivery is best effort; callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

// NopPublisher drops every event
type NopPublisher struct{}

// Ensure NopPublisher implements Publisher
var _ Publisher = NopPublisher{}

// Publish does nothing
func (NopPublisher) Publish(context.Context, model.Event) error {
	return nil
}
