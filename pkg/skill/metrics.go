package skill

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterScope = "github.com/codepilot-ai/codepilot/pkg/skill"

type skillMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

func newSkillMetrics() (*skillMetrics, error) {
	meter := otel.Meter(meterScope)

	calls, err := meter.Int64Counter("codepilot.skill.calls",
		metric.WithDescription("Skill execution count by outcome"),
		metric.WithUnit("{call}"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("codepilot.skill.duration",
		metric.WithDescription("Skill execution duration"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &skillMetrics{calls: calls, duration: duration}, nil
}

func (m *skillMetrics) recordCall(ctx context.Context, s *Skill, elapsed time.Duration, status string) {
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("skill", s.Name),
		attribute.String("target", string(s.Target)),
	))
	m.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("skill", s.Name),
		attribute.String("status", status),
	))
}
