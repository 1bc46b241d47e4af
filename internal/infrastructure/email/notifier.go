package email

import (
	"fmt"

	"skymaint/internal/domain/shared/events"
	"skymaint/internal/domain/ticket"
	sharedConfig "skymaint/internal/shared/config"
	"skymaint/internal/shared/logger"
)

// Notifier forwards ticket lifecycle events to the ops mailbox. It is a
// best-effort side channel; delivery failures are logged and never affect
// the originating operation.
type Notifier struct {
	service *SMTPEmailService
	logger  logger.Interface
}

func NewNotifier(config sharedConfig.EmailConfig) *Notifier {
	return &Notifier{
		service: NewSMTPEmailService(config),
		logger:  logger.NewLogger().With("component", "email.notifier"),
	}
}

// Register subscribes the notifier to the lifecycle events worth a mail.
// Intermediate events (reports, attachments) stay out of the inbox.
func (n *Notifier) Register(subscriber events.EventSubscriber) error {
	handlers := map[string]func(events.DomainEvent) error{
		ticket.EventTypeTicketCreated:  n.handleCreated,
		ticket.EventTypeTicketAssigned: n.handleAssigned,
		ticket.EventTypeTicketClosed:   n.handleClosed,
	}

	for eventType, fn := range handlers {
		if err := subscriber.Subscribe(eventType, events.NewSimpleEventHandler(eventType, fn)); err != nil {
			return fmt.Errorf("failed to subscribe %s handler: %w", eventType, err)
		}
	}

	return nil
}

func (n *Notifier) handleCreated(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	if err := n.service.SendTicketOpened(e.Number, e.AssetID, e.Type, e.Priority); err != nil {
		n.logger.Warnw("ticket opened notification failed", "number", e.Number, "error", err)
	}
	return nil
}

func (n *Notifier) handleAssigned(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketAssignedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	if err := n.service.SendTicketAssigned(e.Number, e.TechnicianID); err != nil {
		n.logger.Warnw("ticket assigned notification failed", "number", e.Number, "error", err)
	}
	return nil
}

func (n *Notifier) handleClosed(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketClosedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	if err := n.service.SendTicketClosed(e.Number, e.ClosingNote); err != nil {
		n.logger.Warnw("ticket closed notification failed", "number", e.Number, "error", err)
	}
	return nil
}
