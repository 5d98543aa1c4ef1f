// Package mqtt publishes grid exceedance alerts over MQTT.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/gridfit/gridfit/config"
	"github.com/gridfit/gridfit/core/analysis"
	"github.com/gridfit/gridfit/infra/logger"
)

const connectTimeout = 5 * time.Second

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Alert is the JSON payload published for one exceedance episode.
type Alert struct {
	ReportID         string    `json:"report_id"`
	GridConnection   string    `json:"grid_connection"`
	CapacityKW       float64   `json:"capacity_kw"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	DurationHours    float64   `json:"duration_hours"`
	PeakExceedanceKW float64   `json:"peak_exceedance_kw"`
}

// AlertPublisher sends an Alert per exceedance episode of a report.
type AlertPublisher struct {
	cli      pahoClient
	topic    string
	qos      byte
	retained bool
	log      logger.Logger
}

// NewAlertPublisher connects to the configured broker.
func NewAlertPublisher(cfg config.MQTTConfig) (*AlertPublisher, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "gridfit-" + uuid.NewString()[:8]
	}
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(clientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	cli := newMQTTClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect timeout after %s", connectTimeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &AlertPublisher{
		cli:      cli,
		topic:    cfg.AlertTopic,
		qos:      cfg.QoS,
		retained: cfg.Retained,
		log:      logger.New("mqtt-alerts"),
	}, nil
}

// PublishReport sends one alert per exceedance episode in the report.
func (p *AlertPublisher) PublishReport(rep *analysis.Report) error {
	if rep.Peak == nil || len(rep.Peak.Events) == 0 {
		return nil
	}
	for _, ev := range rep.Peak.Events {
		alert := Alert{
			ReportID:         rep.ID,
			GridConnection:   rep.Connection.ID,
			CapacityKW:       rep.Connection.MaxPowerKW,
			Start:            ev.Start,
			End:              ev.End,
			DurationHours:    ev.Duration.Hours(),
			PeakExceedanceKW: ev.PeakExceedanceKW,
		}
		payload, err := json.Marshal(alert)
		if err != nil {
			return fmt.Errorf("marshal alert: %w", err)
		}
		tok := p.cli.Publish(p.topic, p.qos, p.retained, payload)
		if !tok.WaitTimeout(connectTimeout) {
			return fmt.Errorf("mqtt publish timeout on %s", p.topic)
		}
		if err := tok.Error(); err != nil {
			return fmt.Errorf("mqtt publish: %w", err)
		}
	}
	p.log.Infof("published %d exceedance alerts for report %s", len(rep.Peak.Events), rep.ID)
	return nil
}

// Close disconnects from the broker.
func (p *AlertPublisher) Close() {
	if p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
