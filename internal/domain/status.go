package domain

type TaskStatus string

const (
	StatusNew        TaskStatus = "New"
	StatusNotStarted TaskStatus = "Not Started"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"New": true, "Not Started": true, "In Progress": true, "Done": true,
}

// ValidImpacts is the canonical set of accepted impact strings.
var ValidImpacts = map[string]bool{
	"Low": true, "Medium": true, "High": true,
}
