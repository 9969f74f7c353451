package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"docanalysis/internal/config"
	"docanalysis/internal/domain"
	"docanalysis/internal/engine"
	"docanalysis/internal/logger"
)

const (
	defaultNotifyInterval = 2 * time.Second
	defaultNotifyTimeout  = 5 * time.Second
	defaultNotifyBatch    = 100
)

// notifier delivers job completion events to the HTTP endpoints of the
// configured notification topics. Each topic keeps its own cursor so a
// failing endpoint only delays its own deliveries.
type notifier struct {
	engine  engine.Engine
	topics  map[string]config.Topic
	arns    []string
	client  *http.Client
	log     *logrus.Entry
	mu      sync.Mutex
	cursors map[string]int64
}

// StartNotifier delivers notifications until ctx is done. It returns at once
// when no topic is configured.
func StartNotifier(ctx context.Context, e engine.Engine) {
	n := newNotifier(e)
	if n == nil {
		return
	}
	go n.run(ctx)
}

func newNotifier(e engine.Engine) *notifier {
	if e.Config == nil || len(e.Config.Notification.Topics) == 0 {
		return nil
	}
	n := &notifier{
		engine:  e,
		topics:  e.Config.Notification.Topics,
		client:  &http.Client{Timeout: defaultNotifyTimeout},
		log:     logger.For("notifier"),
		cursors: make(map[string]int64),
	}
	for arn := range n.topics {
		n.arns = append(n.arns, arn)
	}
	sort.Strings(n.arns)
	return n
}

func (n *notifier) run(ctx context.Context) {
	ticker := time.NewTicker(defaultNotifyInterval)
	defer ticker.Stop()
	for {
		n.dispatchAll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (n *notifier) dispatchAll(ctx context.Context) {
	for _, arn := range n.arns {
		topic := n.topics[arn]
		if strings.TrimSpace(topic.URL) == "" {
			continue
		}
		n.dispatchTopic(ctx, arn, topic)
	}
}

func (n *notifier) dispatchTopic(ctx context.Context, arn string, topic config.Topic) {
	log := n.log.WithField("topic_arn", arn)
	cursor := n.cursorFor(ctx, arn)
	events, err := n.engine.Repo.EventsAfter(ctx, defaultNotifyBatch, cursor)
	if err != nil {
		log.WithError(err).Warn("fetch events failed")
		return
	}
	filter := newEventFilter(topic.Events)
	for _, evt := range events {
		if !filter.match(evt.Type) || eventTopic(evt) != arn {
			n.setCursor(arn, evt.ID)
			continue
		}
		if err := n.post(ctx, arn, topic, evt); err != nil {
			log.WithError(err).WithField("event_id", evt.ID).Warn("deliver notification failed")
			return
		}
		log.WithField("event_id", evt.ID).Debug("notification delivered")
		n.setCursor(arn, evt.ID)
	}
}

// eventTopic returns the topic an event was published to.
func eventTopic(evt domain.Event) string {
	var payload struct{ SNSTopicArn string }
	if err := json.Unmarshal([]byte(evt.Payload), &payload); err != nil {
		return ""
	}
	return payload.SNSTopicArn
}

func (n *notifier) cursorFor(ctx context.Context, arn string) int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if cur, ok := n.cursors[arn]; ok {
		return cur
	}
	cur, err := n.engine.Repo.LatestEventID(ctx)
	if err != nil {
		n.log.WithError(err).Warn("init cursor failed")
		cur = 0
	}
	n.cursors[arn] = cur
	return cur
}

func (n *notifier) setCursor(arn string, value int64) {
	n.mu.Lock()
	n.cursors[arn] = value
	n.mu.Unlock()
}

// notification follows the shape of an SNS HTTP delivery. Message holds the
// completion status as a JSON string.
type notification struct {
	Type      string `json:"Type"`
	MessageID string `json:"MessageId"`
	TopicArn  string `json:"TopicArn"`
	Subject   string `json:"Subject"`
	Message   string `json:"Message"`
	Timestamp string `json:"Timestamp"`
}

func (n *notifier) post(ctx context.Context, arn string, topic config.Topic, evt domain.Event) error {
	delivery := fmt.Sprintf("%d", evt.ID)
	data, err := json.Marshal(notification{
		Type:      "Notification",
		MessageID: delivery,
		TopicArn:  arn,
		Subject:   evt.Type,
		Message:   evt.Payload,
		Timestamp: evt.TS,
	})
	if err != nil {
		return err
	}
	client := n.client
	if d, err := time.ParseDuration(topic.Timeout); err == nil && d > 0 && d != client.Timeout {
		client = &http.Client{Timeout: d}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, topic.URL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Docanalysis-Event", evt.Type)
	req.Header.Set("X-Docanalysis-Delivery", delivery)
	req.Header.Set("X-Docanalysis-Topic", arn)
	if strings.TrimSpace(topic.Secret) != "" {
		req.Header.Set("X-Docanalysis-Secret", topic.Secret)
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

type eventFilter struct {
	all bool
	set map[string]struct{}
}

func newEventFilter(events []string) eventFilter {
	if len(events) == 0 {
		return eventFilter{all: true}
	}
	set := make(map[string]struct{}, len(events))
	for _, evt := range events {
		key := strings.TrimSpace(evt)
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	if len(set) == 0 {
		return eventFilter{all: true}
	}
	return eventFilter{set: set}
}

func (f eventFilter) match(evt string) bool {
	if f.all {
		return true
	}
	_, ok := f.set[evt]
	return ok
}
