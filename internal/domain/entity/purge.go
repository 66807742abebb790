package entity

// PurgeTargetType identifies what kind of purgeable item this is.
type PurgeTargetType int

const (
	// PurgeTargetThumbnails is the previews fontview wrote to the shared thumbnail cache.
	PurgeTargetThumbnails PurgeTargetType = iota
	PurgeTargetCache
	PurgeTargetState
	PurgeTargetConfig
)

// String returns the target's short name.
func (t PurgeTargetType) String() string {
	switch t {
	case PurgeTargetThumbnails:
		return "thumbnails"
	case PurgeTargetCache:
		return "cache"
	case PurgeTargetState:
		return "logs"
	case PurgeTargetConfig:
		return "config"
	default:
		return "unknown"
	}
}

// PurgeTarget represents something that can be purged.
type PurgeTarget struct {
	Type        PurgeTargetType
	Path        string
	Description string
	Size        int64
	// Entries counts indexed previews for PurgeTargetThumbnails.
	Entries int
	Exists  bool
}

// PurgeResult represents the outcome of purging a single target.
type PurgeResult struct {
	Target  PurgeTarget
	Success bool
	Error   error
}
