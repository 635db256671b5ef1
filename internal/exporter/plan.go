package exporter

// Plan is the set of upstream calls a scrape makes.
type Plan int

const (
	PlanNodeInfoOnly Plan = iota
	PlanNodeInfoAndNeighbors
)

// PlanFor picks the plan for one scrape.
func PlanFor(excludeNeighbors bool) Plan {
	if excludeNeighbors {
		return PlanNodeInfoOnly
	}
	return PlanNodeInfoAndNeighbors
}

func (p Plan) String() string {
	if p == PlanNodeInfoOnly {
		return "node_info_only"
	}
	return "node_info_and_neighbors"
}
