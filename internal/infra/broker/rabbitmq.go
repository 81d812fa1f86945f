// Package broker wraps the RabbitMQ topic exchange shared by every node.
package broker

import (
	"context"

	"restops/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// HeaderNodeID carries the id of the node that published a frame.
const HeaderNodeID = "x-node-id"

// Delivery is one frame received from the exchange.
type Delivery struct {
	RoutingKey string
	NodeID     string
	Body       []byte
}

// RabbitMQClient publishes to and consumes from a single topic exchange.
type RabbitMQClient struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	nodeID   string
}

// NewRabbitMQClient dials the broker and declares the durable topic exchange.
func NewRabbitMQClient(url, exchange, nodeID string) (*RabbitMQClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open channel")
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to declare topic exchange")
	}

	return &RabbitMQClient{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		nodeID:   nodeID,
	}, nil
}

// Publish sends a JSON body with the node id header.
func (c *RabbitMQClient) Publish(ctx context.Context, routingKey string, body []byte) error {
	err := c.channel.PublishWithContext(ctx,
		c.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Headers:     amqp.Table{HeaderNodeID: c.nodeID},
			Body:        body,
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to publish to %s", routingKey)
	}

	return nil
}

// Subscribe binds an exclusive auto-delete queue to the given routing keys and
// streams its frames until ctx ends or the channel closes.
func (c *RabbitMQClient) Subscribe(ctx context.Context, routingKeys ...string) (<-chan Delivery, error) {
	q, err := c.channel.QueueDeclare(
		"",    // name (empty = random auto-generated)
		false, // durable
		true,  // delete when unused
		true,  // exclusive (only this connection can read)
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to declare node queue")
	}

	for _, key := range routingKeys {
		if err := c.channel.QueueBind(q.Name, key, c.exchange, false, nil); err != nil {
			return nil, errors.Wrapf(err, "failed to bind node queue to %s", key)
		}
	}

	msgs, err := c.channel.Consume(
		q.Name, "", true, true, false, false, nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register consumer")
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				nodeID, _ := d.Headers[HeaderNodeID].(string)
				select {
				case out <- Delivery{RoutingKey: d.RoutingKey, NodeID: nodeID, Body: d.Body}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// NodeID returns the id stamped on published frames.
func (c *RabbitMQClient) NodeID() string {
	return c.nodeID
}

// Close releases the channel and connection.
func (c *RabbitMQClient) Close() error {
	var errs []error
	if c.channel != nil {
		errs = append(errs, c.channel.Close())
	}
	if c.conn != nil {
		errs = append(errs, c.conn.Close())
	}

	return errors.Join(errs...)
}
