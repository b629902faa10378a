package consumer

import (
	"context"

	kafkaDelivery "monitor-srv/internal/liverefresh/delivery/kafka"
)

// ConsumeBatchCompleted starts consuming batch completion events
func (c *Consumer) ConsumeBatchCompleted(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupBatchCompleted)
	if err != nil {
		return err
	}
	c.batchCompletedGroup = group

	handler := &batchCompletedHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicBatchCompleted}, handler); err != nil {
					c.l.Errorf(ctx, "liverefresh.delivery.kafka.consumer.ConsumeBatchCompleted: consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "liverefresh.delivery.kafka.consumer.ConsumeBatchCompleted: consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicBatchCompleted)
	return nil
}
