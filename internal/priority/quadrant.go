package priority

// Quadrant is an Eisenhower matrix cell.
type Quadrant string

const (
	Q1 Quadrant = "Q1" // important and urgent
	Q2 Quadrant = "Q2" // important, not urgent
	Q3 Quadrant = "Q3" // urgent, not important
	Q4 Quadrant = "Q4" // neither
)

// QuadrantInfo is the static display identity of a quadrant. Rank 1 is
// the highest sort priority.
type QuadrantInfo struct {
	ID    Quadrant `json:"id"`
	Rank  int      `json:"rank"`
	Key   string   `json:"key"`
	Color string   `json:"color"`
}

var quadrantTable = map[Quadrant]QuadrantInfo{
	Q1: {ID: Q1, Rank: 1, Key: "important_urgent", Color: "#ef4444"},
	Q2: {ID: Q2, Rank: 2, Key: "important_not_urgent", Color: "#3b82f6"},
	Q3: {ID: Q3, Rank: 3, Key: "not_important_urgent", Color: "#f59e0b"},
	Q4: {ID: Q4, Rank: 4, Key: "not_important_not_urgent", Color: "#6b7280"},
}

func (q Quadrant) Info() QuadrantInfo {
	return quadrantTable[q]
}

const (
	importantThreshold = 2
	urgentThreshold    = 2
)

// Classify maps importance and effective urgency onto the matrix.
func Classify(importance, urgencyEffective int) Quadrant {
	important := importance >= importantThreshold
	urgent := urgencyEffective >= urgentThreshold

	switch {
	case important && urgent:
		return Q1
	case important:
		return Q2
	case urgent:
		return Q3
	default:
		return Q4
	}
}
