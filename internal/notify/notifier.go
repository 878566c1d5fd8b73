// Package notify carries outcome notifications that must outlive the
// screen that started the operation, e.g. a property deletion completing
// after the user has already navigated away. Form-local feedback stays in
// editable; this is the app-level channel.
package notify

import (
	"sync"

	"github.com/accommotrack/client-go/internal/models"
)

// Notifier is a FIFO of pending notifications. Pushes never block; the
// active screen drains them when it renders.
type Notifier struct {
	mu      sync.Mutex
	pending []models.OperationFeedback
}

func New() *Notifier { return &Notifier{} }

func (n *Notifier) Push(fb models.OperationFeedback) {
	if fb.Kind == models.FeedbackNone {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, fb)
}

// Drain returns and clears all pending notifications in arrival order.
func (n *Notifier) Drain() []models.OperationFeedback {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	return out
}

// Peek returns pending notifications without clearing them.
func (n *Notifier) Peek() []models.OperationFeedback {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.OperationFeedback(nil), n.pending...)
}
