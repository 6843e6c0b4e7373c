package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

type consumerConfig struct {
	ClusterConfig   *sarama.Config
	BrokerAddresses []string
	Topic           string
	GroupID         string
}

// testConsumer reads back what the publisher wrote to a single topic.
type testConsumer struct {
	subscriber *wm_kafka.Subscriber
	topic      string
}

func newTestConsumer(cfg *consumerConfig) (*testConsumer, error) {
	saramaSubscriberConfig := wm_kafka.DefaultSaramaSubscriberConfig()
	if cfg.ClusterConfig != nil {
		saramaSubscriberConfig.Version = cfg.ClusterConfig.Version
		saramaSubscriberConfig.Consumer.Offsets.Initial = cfg.ClusterConfig.Consumer.Offsets.Initial
	}

	subscriber, err := wm_kafka.NewSubscriber(
		wm_kafka.SubscriberConfig{
			Brokers:               cfg.BrokerAddresses,
			Unmarshaler:           wm_kafka.DefaultMarshaler{},
			OverwriteSaramaConfig: saramaSubscriberConfig,
			ConsumerGroup:         cfg.GroupID,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, err
	}

	return &testConsumer{
		subscriber: subscriber,
		topic:      cfg.Topic,
	}, nil
}

func (c *testConsumer) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to topic %s: %w", c.topic, err)
	}
	return messages, nil
}

func (c *testConsumer) Close() error {
	return c.subscriber.Close()
}
