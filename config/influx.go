package config

// InfluxConfig holds the InfluxDB export settings. Export is disabled
// when URL is empty.
type InfluxConfig struct {
	URL         string `json:"url"`
	Token       string `json:"token"`
	Org         string `json:"org"`
	Bucket      string `json:"bucket"`
	Measurement string `json:"measurement"`
}

// SetDefaults applies sane defaults.
func (c *InfluxConfig) SetDefaults() {
	if c.Measurement == "" {
		c.Measurement = "combined_load"
	}
}

// Enabled reports whether an endpoint is configured.
func (c InfluxConfig) Enabled() bool { return c.URL != "" }
