package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/in"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// AppointmentListener слушает события о записях на прием от бэкенда
// Если слот заняли в обход панели, он гасится в открытых черновиках
type AppointmentListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.AppointmentDraftUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type AppointmentEventMessage struct {
	AppointmentID string                   `json:"appointmentId"`
	Status        domain.AppointmentStatus `json:"status"`
	Slot          *struct {
		Start time.Time `json:"start"`
	} `json:"slot"`
}

func NewAppointmentListener(useCase in.AppointmentDraftUseCase, cfg *config.Config, logger out.LoggerPort) (*AppointmentListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &AppointmentListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *AppointmentListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.message.process_failed", out.LogFields{
						"error": err.Error(),
					})
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("rabbitmq.listener.started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

func (l *AppointmentListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event AppointmentEventMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	// Интересны только появившиеся записи: их слот в черновиках больше не предлагаем
	if event.Status != domain.AppointmentStatusScheduled || event.Slot == nil {
		return nil
	}

	l.logger.Debug("rabbitmq.appointment.booked", out.LogFields{
		"appointmentId": event.AppointmentID,
		"slotStart":     event.Slot.Start,
	})

	l.useCase.InvalidateSlot(ctx, event.Slot.Start)
	return nil
}

func (l *AppointmentListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
