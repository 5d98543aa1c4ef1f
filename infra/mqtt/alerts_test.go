package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridfit/gridfit/config"
	"github.com/gridfit/gridfit/core/analysis"
	"github.com/gridfit/gridfit/core/model"
	"github.com/gridfit/gridfit/core/peak"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool { return true }

func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }

func (t *fakeToken) Error() error { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type fakeClient struct {
	connected bool
	published []publishCall
}

type publishCall struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Connect() paho.Token {
	c.connected = true
	return &fakeToken{}
}

func (c *fakeClient) Disconnect(uint) { c.connected = false }

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.published = append(c.published, publishCall{
		topic:    topic,
		qos:      qos,
		retained: retained,
		payload:  payload.([]byte),
	})
	return &fakeToken{}
}

func withFakeClient(t *testing.T) *fakeClient {
	t.Helper()
	cli := &fakeClient{}
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return cli }
	t.Cleanup(func() { newMQTTClient = orig })
	return cli
}

func testReport() *analysis.Report {
	start := time.Date(2023, 1, 20, 17, 0, 0, 0, time.UTC)
	return &analysis.Report{
		ID:         "rep-1",
		Connection: model.GridConnection{ID: "3x80A", MaxPowerKW: 55.4},
		Peak: &peak.Result{
			Events: []peak.Event{
				{Start: start, End: start.Add(3 * time.Hour), Duration: 3 * time.Hour, PeakExceedanceKW: 4.2},
				{Start: start.Add(6 * time.Hour), End: start.Add(7 * time.Hour), Duration: time.Hour, PeakExceedanceKW: 1.1},
			},
		},
	}
}

func TestPublishReport(t *testing.T) {
	cli := withFakeClient(t)
	pub, err := NewAlertPublisher(config.MQTTConfig{
		Broker:     "tcp://localhost:1883",
		AlertTopic: "gridfit/alerts",
		QoS:        1,
	})
	require.NoError(t, err)

	require.NoError(t, pub.PublishReport(testReport()))
	require.Len(t, cli.published, 2)

	call := cli.published[0]
	assert.Equal(t, "gridfit/alerts", call.topic)
	assert.Equal(t, byte(1), call.qos)

	var alert Alert
	require.NoError(t, json.Unmarshal(call.payload, &alert))
	assert.Equal(t, "rep-1", alert.ReportID)
	assert.Equal(t, "3x80A", alert.GridConnection)
	assert.Equal(t, 55.4, alert.CapacityKW)
	assert.Equal(t, 3.0, alert.DurationHours)
	assert.Equal(t, 4.2, alert.PeakExceedanceKW)
}

func TestPublishReportNoEvents(t *testing.T) {
	cli := withFakeClient(t)
	pub, err := NewAlertPublisher(config.MQTTConfig{Broker: "tcp://localhost:1883", AlertTopic: "gridfit/alerts"})
	require.NoError(t, err)

	rep := testReport()
	rep.Peak.Events = nil
	require.NoError(t, pub.PublishReport(rep))
	assert.Empty(t, cli.published)

	rep.Peak = nil
	require.NoError(t, pub.PublishReport(rep))
	assert.Empty(t, cli.published)
}

func TestClose(t *testing.T) {
	cli := withFakeClient(t)
	pub, err := NewAlertPublisher(config.MQTTConfig{Broker: "tcp://localhost:1883", AlertTopic: "gridfit/alerts"})
	require.NoError(t, err)

	pub.Close()
	assert.False(t, cli.connected)
}
