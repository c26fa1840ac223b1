package worker

import (
	"context"
	"log/slog"
)

// Notification is a message destined for a user out-of-band (mail, chat).
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers notifications. The default implementation only logs;
// a real mail or chat transport satisfies the same interface.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (s *SlogNotifier) Notify(_ context.Context, n Notification) error {
	s.logger.Info("notification",
		"recipient", n.Recipient,
		"subject", n.Subject,
		"body", n.Body)
	return nil
}
