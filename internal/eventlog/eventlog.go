// Package eventlog reads and writes domain events as JSON Lines: one
// envelope per line, the kind tag selecting the payload type. The replay
// command streams a log through the reconciliation engine.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
)

// Envelope wraps one event with its kind tag for decoding.
type Envelope struct {
	Kind  event.Kind      `json:"kind"`
	Event json.RawMessage `json:"event"`
}

// Read decodes all events from r, in order. Blank lines are skipped; an
// unknown kind or malformed payload fails with the offending line number.
func Read(r io.Reader) ([]event.Event, error) {
	var events []event.Event

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var env Envelope
		if err := json.Unmarshal([]byte(text), &env); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		e, err := decode(env)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	return events, nil
}

// Write encodes events to w, one envelope per line.
func Write(w io.Writer, events []event.Event) error {
	enc := json.NewEncoder(w)
	for i, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if err := enc.Encode(Envelope{Kind: e.Kind(), Event: payload}); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func decode(env Envelope) (event.Event, error) {
	switch env.Kind {
	case event.KindTransactionCreated:
		return as[event.TransactionCreated](env)
	case event.KindTransactionUpdated:
		return as[event.TransactionUpdated](env)
	case event.KindTransactionDeleted:
		return as[event.TransactionDeleted](env)
	case event.KindTransferCreated:
		return as[event.TransferCreated](env)
	case event.KindTransferUpdated:
		return as[event.TransferUpdated](env)
	case event.KindTransferDeleted:
		return as[event.TransferDeleted](env)
	case event.KindWalletCreated:
		return as[event.WalletCreated](env)
	case event.KindWalletUpdated:
		return as[event.WalletUpdated](env)
	case event.KindWalletDeleted:
		return as[event.WalletDeleted](env)
	case event.KindWalletBalanceChanged:
		return as[event.WalletBalanceChanged](env)
	case event.KindGoalCreated:
		return as[event.GoalCreated](env)
	case event.KindGoalUpdated:
		return as[event.GoalUpdated](env)
	default:
		return nil, fmt.Errorf("unknown event kind %q", env.Kind)
	}
}

// as decodes the envelope payload into the concrete event type. Handlers
// are registered on value types, so the decoded value is returned as-is.
func as[E event.Event](env Envelope) (event.Event, error) {
	var e E
	if err := json.Unmarshal(env.Event, &e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", env.Kind, err)
	}
	return e, nil
}
