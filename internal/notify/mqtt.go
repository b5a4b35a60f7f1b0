// Package notify pushes reminder schedules to companion devices over MQTT.
// Each user's devices subscribe to their own topic; publishing is
// fire-and-forget from the API's perspective.
package notify

import (
	"encoding/json"
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

// Notifier owns the MQTT connection used for reminder pushes.
type Notifier struct {
	mu     sync.Mutex
	client mqtt.Client
}

// NewNotifier connects to the broker. A connect failure is returned rather
// than fatal; the server runs without reminders when the broker is down.
func NewNotifier(brokerURL, clientID string) (*Notifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(c mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Notifier{client: client}, nil
}

func reminderTopic(userID int) string {
	return fmt.Sprintf("deen/%d/reminders", userID)
}

// PublishReminderSchedule pushes the user's reminder config to their topic
// so devices can re-arm local notifications.
func (n *Notifier) PublishReminderSchedule(userID int, reminders model.Reminders) error {
	payload, err := json.Marshal(reminders)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	token := n.client.Publish(reminderTopic(userID), 1, true, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish reminder schedule for user %d: %w", userID, token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.client != nil {
		n.client.Disconnect(250)
	}
}
