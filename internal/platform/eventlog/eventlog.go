// Package eventlog publishes each outer loop's ports.LogRow to a NATS
// subject, wiring disconnect/reconnect/closed connection callbacks into
// injectable Metrics so a caller can observe connection health alongside
// publish success/failure.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"tourmovns/internal/ports"
)

// Publisher implements ports.ExecutionLogSink by publishing one JSON
// message per outer loop to a per-run NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// Metrics is the narrow interface Publisher reports connection and publish
// events to; nil is accepted and every call becomes a no-op, matching the
// teacher's optional-collaborator style.
type Metrics interface {
	SetConnected(connected bool)
	PublishedInc()
	PublishErrInc()
}

// NewPublisher dials url and returns a Publisher that logs rows under
// "movns.<runID>.log". runID is sanitized into a safe NATS subject token.
func NewPublisher(url, runID string, m Metrics) (*Publisher, error) {
	opts := []nats.Option{
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if m != nil {
				m.SetConnected(false)
			}
			if err != nil {
				log.Printf("eventlog: disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetConnected(true)
			}
			log.Printf("eventlog: reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.SetConnected(false)
			}
			log.Printf("eventlog: connection closed")
		}),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("eventlog: connect: %w", err)
	}
	if m != nil {
		m.SetConnected(true)
	}
	return &Publisher{nc: nc, subject: "movns." + subjectToken(runID) + ".log"}, nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

type logMessage struct {
	Iteration       int     `json:"iteration"`
	HV              float64 `json:"hv"`
	Spread          float64 `json:"spread"`
	Epsilon         float64 `json:"epsilon"`
	IGD             float64 `json:"igd"`
	IGDAvailable    bool    `json:"igd_available"`
	ArchiveSize     int     `json:"archive_size"`
	RepresentativeF [4]float64 `json:"representative_f"`
	PublishedAtUnix int64   `json:"published_at_unix"`
}

// Publish satisfies ports.ExecutionLogSink.
func (p *Publisher) Publish(ctx context.Context, row ports.LogRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := logMessage{
		Iteration:       row.Iteration,
		HV:              row.HV,
		Spread:          row.Spread,
		Epsilon:         row.Epsilon,
		IGD:             row.IGD,
		IGDAvailable:    row.IGDAvailable,
		ArchiveSize:     row.ArchiveSize,
		RepresentativeF: row.RepresentativeF.Slice(),
		PublishedAtUnix: time.Now().Unix(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("eventlog: marshal: %w", err)
	}
	if err := p.nc.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("eventlog: publish: %w", err)
	}
	return nil
}

// subjectToken sanitizes s into a safe NATS subject token by replacing the
// wildcard/separator characters NATS treats specially.
func subjectToken(s string) string {
	s = strings.ReplaceAll(s, ".", "-")
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "*", "-")
	s = strings.ReplaceAll(s, ">", "-")
	if s == "" {
		return "run"
	}
	return s
}

// NullSink discards every row; it is the default ExecutionLogSink when no
// message bus is configured.
type NullSink struct{}

func (NullSink) Publish(ctx context.Context, row ports.LogRow) error { return nil }
