package kafka

import (
	"fmt"

	"rental-chat-service/internal/config"

	"github.com/IBM/sarama"
)

const clientID = "rental-chat-outbox"

// NewPushProducer builds the idempotent producer the outbox relay publishes with.
// Messages are keyed by dedup key, so one intent always lands on the same partition.
func NewPushProducer(cfg *config.KafkaConfig) (sarama.SyncProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}

	sc := sarama.NewConfig()
	sc.ClientID = clientID
	sc.Version = sarama.V2_1_0_0
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 5
	sc.Producer.Return.Successes = true
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to create producer: %w", err)
	}
	return producer, nil
}
