package block

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "flashfs"

	blockSubsystem = "block_layer"
)

// Metrics accounts block layer operations for Prometheus scraping.
type Metrics struct {
	writtenRecords prometheus.Counter
	writtenBytes   prometheus.Counter
	readBytes      prometheus.Counter
	projections    prometheus.Counter
	deletedRecords prometheus.Counter
}

// NewMetrics creates unregistered block layer metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		writtenRecords: newCounter("written_records", "Number of block records written to flash."),
		writtenBytes:   newCounter("written_bytes", "Number of bytes (header and payload) written to flash."),
		readBytes:      newCounter("read_bytes", "Number of payload bytes served by ReadData."),
		projections:    newCounter("projections", "Number of linked block projections constructed."),
		deletedRecords: newCounter("deleted_records", "Number of blocks logically deleted."),
	}
}

// Register registers all metrics in the default Prometheus registry.
func (m *Metrics) Register() {
	prometheus.MustRegister(
		m.writtenRecords,
		m.writtenBytes,
		m.readBytes,
		m.projections,
		m.deletedRecords,
	)
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: blockSubsystem,
		Name:      name,
		Help:      help,
	})
}

func (m *Metrics) addWrite(bytes uint64) {
	if m != nil {
		m.writtenRecords.Inc()
		m.writtenBytes.Add(float64(bytes))
	}
}

func (m *Metrics) addRead(bytes uint64) {
	if m != nil {
		m.readBytes.Add(float64(bytes))
	}
}

func (m *Metrics) addProjection() {
	if m != nil {
		m.projections.Inc()
	}
}

func (m *Metrics) addDelete() {
	if m != nil {
		m.deletedRecords.Inc()
	}
}
