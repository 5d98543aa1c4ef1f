package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `logging:
  level: "debug"
  format: "console"
server:
  addr: ":8181"
metrics:
  enabled: true
  addr: ":9191"
influx:
  url: "http://localhost:8086"
  token: "tok"
  org: "gridfit"
  bucket: "loads"
mqtt:
  broker: "tcp://localhost:1883"
  client_id: "gridfit"
  alert_topic: "gridfit/alerts"
  qos: 1
analysis:
  year: 2024
  interval_minutes: 60
  buffer_kwh: 25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"server.addr", cfg.Server.Addr, ":8181"},
		{"server.read_timeout default", cfg.Server.ReadTimeoutSeconds, 10},
		{"metrics.enabled", cfg.Metrics.Enabled, true},
		{"metrics.addr", cfg.Metrics.Addr, ":9191"},
		{"metrics.path default", cfg.Metrics.Path, "/metrics"},
		{"influx.url", cfg.Influx.URL, "http://localhost:8086"},
		{"influx.measurement default", cfg.Influx.Measurement, "combined_load"},
		{"mqtt.broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt.alert_topic", cfg.MQTT.AlertTopic, "gridfit/alerts"},
		{"analysis.year", cfg.Analysis.Year, 2024},
		{"analysis.buffer_kwh", cfg.Analysis.BufferKWh, 25.0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"server": {"addr": ":8080"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GF_SERVER__ADDR", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("env override not applied: %s", cfg.Server.Addr)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestMQTTValidate(t *testing.T) {
	c := MQTTConfig{Broker: "tcp://localhost:1883"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing alert_topic")
	}
	c.AlertTopic = "alerts"
	c.QoS = 3
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for invalid qos")
	}
	c.QoS = 1
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
