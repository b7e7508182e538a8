package syncx

// PointsEnabled reports that named points are compiled in. It is always true
// in this package and kept for parity with the other feature constants.
const PointsEnabled = true

// FeatureSet describes how the package was built.
type FeatureSet struct {
	Backend  string `json:"backend"`
	Async    bool   `json:"async"`
	Names    bool   `json:"names"`
	Points   bool   `json:"points"`
	Conflict bool   `json:"conflict"`
}

// Features is the build configuration, for diagnostics. Nothing in this
// package changes behavior by reading it.
var Features = FeatureSet{
	Backend:  BackendName,
	Async:    AsyncEnabled,
	Names:    NamesEnabled,
	Points:   PointsEnabled,
	Conflict: ConfigConflict,
}

// NewAsyncBackend returns a fresh cooperative backend. AsyncMutex is the only
// one, whatever the build tags.
func NewAsyncBackend() AsyncBackend {
	return NewAsyncMutex()
}
