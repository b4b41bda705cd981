package params

import "time"

type Config struct {
	EngineConfig
	SimplificationConfig
	StopDetectorConfig
}

type SimplificationConfig struct {
	// DouglasPeuckerThreshold is the epsilon tolerance, in decimal degrees,
	// below which a point is considered collinear with the chord and dropped.
	// A threshold of 0 disables simplification entirely.
	DouglasPeuckerThreshold float64
}

var DefaultSimplificationConfig = &SimplificationConfig{
	DouglasPeuckerThreshold: 0.00005,
}

type StopDetectorConfig struct {
	// SpeedThresholdKMH marks a segment as slow.
	// Slow segments sustained past MinStopDuration are stops.
	SpeedThresholdKMH float64

	// MinStopDuration marks a segment as long.
	// Long segments below SpeedThresholdKMH are stops.
	MinStopDuration time.Duration
}

var DefaultStopDetectorConfig = &StopDetectorConfig{
	SpeedThresholdKMH: 3.0,
	MinStopDuration:   2 * time.Minute,
}

type EngineConfig struct {
	// MaxUploadBytes is the absolute input size limit.
	// The upload boundary enforces its own limit first; the engine
	// re-checks before parsing begins.
	MaxUploadBytes int64

	// MaxSyncBytes is the synchronous-processing threshold.
	// Files above it (and below MaxUploadBytes) are rejected with
	// ErrUnimplementedAsyncPath until a queued-worker path exists.
	MaxSyncBytes int64

	// ResultCacheSize bounds the per-engine LRU of memoized results.
	// The pipeline is deterministic, so identical input bytes always
	// map to an identical result.
	ResultCacheSize int
}

var DefaultEngineConfig = &EngineConfig{
	MaxUploadBytes:  10 * 1024 * 1024,
	MaxSyncBytes:    1 * 1024 * 1024,
	ResultCacheSize: 128,
}

func DefaultConfig() *Config {
	return &Config{
		EngineConfig:         *DefaultEngineConfig,
		SimplificationConfig: *DefaultSimplificationConfig,
		StopDetectorConfig:   *DefaultStopDetectorConfig,
	}
}
