package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l                      *slog.Logger
	w                      *kafka.Writer
	documentGeneratedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                      l,
		w:                      w,
		documentGeneratedTopic: topic,
	}
}

type DocumentGeneratedEvent struct {
	DocType string `json:"doc_type"`
	Name    string `json:"name"`
}

// DocumentGenerated is fire-and-forget: a broker failure must never fail
// the download that triggered it.
func (p *Producer) DocumentGenerated(ctx context.Context, docType, name string) {
	event := DocumentGeneratedEvent{
		DocType: docType,
		Name:    name,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(name),
		Value: b,
		Topic: p.documentGeneratedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
