package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

const (
	ordersExchange  = "norvila.orders"
	orderCreatedKey = "order.created"
	orderStatusKey  = "order.status_changed"
)

// EventPublisher pushes order lifecycle events to RabbitMQ for downstream
// consumers (fulfilment, analytics). Publishing is best-effort: a broker
// outage is logged, never surfaced to the customer.
type EventPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewEventPublisher connects when AMQP_URL is set; otherwise events are
// silently dropped and the publisher is nil.
func NewEventPublisher() *EventPublisher {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		log.Println("⚠️  AMQP_URL not set, order events disabled")
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("❌ failed to connect to RabbitMQ, order events disabled: %v", err)
		return nil
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Printf("❌ failed to open RabbitMQ channel, order events disabled: %v", err)
		conn.Close()
		return nil
	}

	err = channel.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil)
	if err != nil {
		log.Printf("❌ failed to declare orders exchange, order events disabled: %v", err)
		channel.Close()
		conn.Close()
		return nil
	}

	log.Println("✅ Connected to RabbitMQ")
	return &EventPublisher{conn: conn, channel: channel}
}

func (p *EventPublisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

type orderEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PublishOrderCreated emits order.created. Safe on a nil publisher.
func (p *EventPublisher) PublishOrderCreated(order *models.Order) {
	p.publish(orderCreatedKey, order)
}

// PublishOrderStatusChanged emits order.status_changed after an admin update.
func (p *EventPublisher) PublishOrderStatusChanged(order *models.Order) {
	p.publish(orderStatusKey, order)
}

func (p *EventPublisher) publish(routingKey string, order *models.Order) {
	if p == nil || p.channel == nil {
		return
	}

	body, err := json.Marshal(orderEvent{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Printf("❌ failed to marshal %s event: %v", routingKey, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, ordersExchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("❌ failed to publish %s for order %s: %v", routingKey, order.OrderNumber, err)
		return
	}
	log.Printf("✅ published %s for order %s", routingKey, order.OrderNumber)
}
