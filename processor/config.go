package processor

// Config is a configuration for the payment simulator application
type Config struct {
	HTTPAddr string
	// BulkWorkers caps how many batch items may be decided concurrently.
	// 1 keeps the batch strictly sequential. Results are ordered and
	// fault-isolated regardless of the value.
	BulkWorkers int
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:9090",
		BulkWorkers: 1,
	}
}
