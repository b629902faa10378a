package rabbitmq

import (
	"context"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connImpl) Channel() (IChannel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}

	impl := &chanImpl{parent: c, ch: ch}
	impl.rebuildOnReconnect()

	return impl, nil
}

func (c *connImpl) IsReady() bool {
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connImpl) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// dial keeps attempting the broker until it answers or ctx expires.
func (c *connImpl) dial(ctx context.Context) (*amqp.Connection, error) {
	for attempt := 1; ; attempt++ {
		log.Printf("rabbitmq: dialing, attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err == nil {
			log.Println("rabbitmq: connected")
			return conn, nil
		}
		log.Printf("rabbitmq: dial failed: %v", err)

		select {
		case <-ctx.Done():
			return nil, ErrConnectionTimeout
		case <-time.After(RetryConnectionDelay):
		}
	}
}

func (c *connImpl) connect(bounded bool) error {
	ctx := context.Background()
	if bounded {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, RetryConnectionTimeout)
		defer cancel()
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}

	c.conn = conn
	c.watchClose()

	return nil
}

// watchClose redials after the broker drops the connection, then pokes every
// channel watcher so open channels rebuild on the fresh connection. Reconnects
// run unbounded when the connection was opened with retryForever.
func (c *connImpl) watchClose() {
	closed := make(chan *amqp.Error)
	c.conn.NotifyClose(closed)

	go func() {
		err, ok := <-closed
		if !ok || err == nil {
			return
		}

		log.Printf("rabbitmq: connection lost: %v", err)
		c.conn = nil

		if err := c.connect(!c.retryForever); err != nil {
			log.Printf("rabbitmq: reconnect failed: %v", err)
		}

		for _, w := range c.watchers {
			w <- struct{}{}
		}
	}()
}

func (c *connImpl) watchReconnect() chan struct{} {
	w := make(chan struct{})
	c.watchers = append(c.watchers, w)

	return w
}

func (ch *chanImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return ch.ch.ExchangeDeclare(exc.Name, exc.Type, exc.Durable, exc.AutoDelete, exc.Internal, exc.NoWait, amqp.Table(exc.Args))
}

func (ch *chanImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return ch.ch.PublishWithContext(ctx, publish.Exchange, publish.RoutingKey, publish.Mandatory, publish.Immediate, publish.Msg)
}

func (ch *chanImpl) Close() error {
	return ch.ch.Close()
}

// rebuildOnReconnect swaps in a channel from the reconnected connection.
func (ch *chanImpl) rebuildOnReconnect() {
	w := ch.parent.watchReconnect()

	go func() {
		for range w {
			channel, err := ch.parent.conn.Channel()
			if err != nil {
				log.Printf("rabbitmq: channel rebuild failed: %v", err)
				continue
			}

			_ = ch.ch.Close()
			ch.ch = channel
		}
	}()
}
