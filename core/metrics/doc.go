package metrics

// Package metrics defines interfaces for recording analysis outcomes.
// Sinks like PromSink in infra/metrics record completed analyses and
// exceedance episodes and can be combined with MultiSink when several
// backends are configured.
