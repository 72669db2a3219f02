package worker

import (
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
)

type queueInspector interface {
	GetQueueInfo(queue string) (*asynq.QueueInfo, error)
}

// QueueCollector отдаёт размер очередей asynq в момент скрейпа.
type QueueCollector struct {
	inspector queueInspector
	queues    []string

	up    *prometheus.Desc
	tasks *prometheus.Desc
}

func NewQueueCollector(namespace string, inspector queueInspector, queues ...string) *QueueCollector {
	return &QueueCollector{
		inspector: inspector,
		queues:    queues,
		up: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "up"),
			"Whether the queue could be inspected.",
			[]string{"queue"}, nil,
		),
		tasks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "tasks"),
			"Tasks in the queue by state.",
			[]string{"queue", "state"}, nil,
		),
	}
}

func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.tasks
}

func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	for _, queue := range c.queues {
		info, err := c.inspector.GetQueueInfo(queue)
		if err != nil {
			ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0, queue)
			continue
		}

		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1, queue)

		for state, n := range map[string]int{
			"pending":   info.Pending,
			"active":    info.Active,
			"scheduled": info.Scheduled,
			"retry":     info.Retry,
			"archived":  info.Archived,
		} {
			ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(n), queue, state)
		}
	}
}
