package config

import "fmt"

// MQTTConfig holds the alert publisher settings. Publishing is disabled
// when Broker is empty.
type MQTTConfig struct {
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	// AlertTopic receives one message per grid exceedance episode.
	AlertTopic string `json:"alert_topic"`
	QoS        byte   `json:"qos"`
	Retained   bool   `json:"retained"`
}

// Enabled reports whether a broker is configured.
func (c MQTTConfig) Enabled() bool { return c.Broker != "" }

// Validate checks mandatory fields.
func (c MQTTConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.AlertTopic == "" {
		return fmt.Errorf("mqtt alert_topic is required when a broker is set")
	}
	if c.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2")
	}
	return nil
}
