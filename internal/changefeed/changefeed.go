package changefeed

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/internal/store"

	"github.com/segmentio/kafka-go"
)

// Sink receives every change recorded by an attached store.
type Sink interface {
	Publish(c model.Change)
}

// Source is a store seen only through its changelog.
type Source interface {
	Entity() string
	Subscribe(l store.Listener)
	Since(seq uint64) []model.Change
}

// Feed merges the changelogs of several stores and forwards each change to
// every sink.
type Feed struct {
	sources []Source
	sinks   []Sink
}

func New(sinks ...Sink) *Feed {
	return &Feed{sinks: sinks}
}

// Attach subscribes the feed to src. Call before the store is used.
func (f *Feed) Attach(sources ...Source) {
	for _, src := range sources {
		f.sources = append(f.sources, src)
		src.Subscribe(f.dispatch)
	}
}

func (f *Feed) dispatch(c model.Change) {
	for _, s := range f.sinks {
		s.Publish(c)
	}
}

// Since returns the retained changes of every source after seq, oldest first.
func (f *Feed) Since(seq uint64) []model.Change {
	var out []model.Change
	for _, src := range f.sources {
		out = append(out, src.Since(seq)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Event is the JSON envelope pushed to consoles and brokers.
type Event struct {
	Type   string       `json:"type"`
	Change model.Change `json:"change"`
}

func NewEvent(c model.Change) Event {
	return Event{Type: "change", Change: c}
}

// Publisher is satisfied by *ws.Hub.
type Publisher interface {
	Publish(v any) error
}

type hubSink struct {
	hub Publisher
}

// HubSink pushes changes to websocket clients.
func HubSink(hub Publisher) Sink {
	return &hubSink{hub: hub}
}

func (s *hubSink) Publish(c model.Change) {
	if err := s.hub.Publish(NewEvent(c)); err != nil {
		log.Printf("Warning: failed to broadcast change %d: %v", c.Seq, err)
	}
}

type dbSink struct {
	repo repository.ChangeLogRepository
}

// DBSink persists changes through the change log repository.
func DBSink(repo repository.ChangeLogRepository) Sink {
	return &dbSink{repo: repo}
}

func (s *dbSink) Publish(c model.Change) {
	go func() {
		if err := s.repo.Create(model.NewChangeRecord(c)); err != nil {
			log.Printf("Warning: failed to persist change %d: %v", c.Seq, err)
		}
	}()
}

// MessageWriter is the subset of *kafka.Writer the kafka sink needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaSink struct {
	writer MessageWriter
}

// NewKafkaWriter creates an async writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
		Async:    true,
	}
}

// KafkaSink publishes each change keyed by entity so one entity's changes
// stay ordered within a partition.
func KafkaSink(w MessageWriter) Sink {
	return &kafkaSink{writer: w}
}

func (s *kafkaSink) Publish(c model.Change) {
	value, err := json.Marshal(NewEvent(c))
	if err != nil {
		log.Printf("Warning: failed to encode change %d: %v", c.Seq, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		msg := kafka.Message{Key: []byte(c.Entity), Value: value, Time: c.At}
		if err := s.writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("Warning: failed to publish change %d to kafka: %v", c.Seq, err)
		}
	}()
}
