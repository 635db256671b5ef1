package iri

// NodeInfo is the getNodeInfo response of an IRI node.
type NodeInfo struct {
	JREAvailableProcessors             uint64 `json:"jreAvailableProcessors"`
	JREFreeMemory                      uint64 `json:"jreFreeMemory"`
	JREMaxMemory                       uint64 `json:"jreMaxMemory"`
	JRETotalMemory                     uint64 `json:"jreTotalMemory"`
	LatestMilestoneIndex               uint64 `json:"latestMilestoneIndex"`
	LatestSolidSubtangleMilestoneIndex uint64 `json:"latestSolidSubtangleMilestoneIndex"`
	MilestoneStartIndex                uint64 `json:"milestoneStartIndex"`
	LastSnapshottedMilestoneIndex      uint64 `json:"lastSnapshottedMilestoneIndex"`
	Neighbors                          uint32 `json:"neighbors"`
	PacketsQueueSize                   uint64 `json:"packetsQueueSize"`
	// Time is the node clock in milliseconds since the Unix epoch. uint64
	// covers every millisecond timestamp for the next ~580 million years;
	// a payload with a larger value fails to decode.
	Time                  uint64 `json:"time"`
	Tips                  uint64 `json:"tips"`
	TransactionsToRequest uint64 `json:"transactionsToRequest"`
	Duration              uint64 `json:"duration"`
}

// nodeInfoFields lists the keys every getNodeInfo payload must carry.
var nodeInfoFields = []string{
	"jreAvailableProcessors",
	"jreFreeMemory",
	"jreMaxMemory",
	"jreTotalMemory",
	"latestMilestoneIndex",
	"latestSolidSubtangleMilestoneIndex",
	"milestoneStartIndex",
	"lastSnapshottedMilestoneIndex",
	"neighbors",
	"packetsQueueSize",
	"time",
	"tips",
	"transactionsToRequest",
	"duration",
}

// Neighbors is the getNeighbors response of an IRI node.
// Neighbors keeps the order the node reported them in.
type Neighbors struct {
	Neighbors []Neighbor `json:"neighbors"`
	Duration  uint64     `json:"duration"`
}

var neighborsFields = []string{"neighbors", "duration"}

// Neighbor holds the transaction counters the node keeps for one peer.
type Neighbor struct {
	Address                           string `json:"address"`
	NumberOfAllTransactions           uint64 `json:"numberOfAllTransactions"`
	NumberOfRandomTransactionRequests uint64 `json:"numberOfRandomTransactionRequests"`
	NumberOfNewTransactions           uint64 `json:"numberOfNewTransactions"`
	NumberOfInvalidTransactions       uint64 `json:"numberOfInvalidTransactions"`
	NumberOfStaleTransactions         uint64 `json:"numberOfStaleTransactions"`
	NumberOfSentTransactions          uint64 `json:"numberOfSentTransactions"`
	// ConnectionType is "udp" or "tcp". Not exported as a metric.
	ConnectionType string `json:"connectionType"`
}

var neighborFields = []string{
	"address",
	"numberOfAllTransactions",
	"numberOfRandomTransactionRequests",
	"numberOfNewTransactions",
	"numberOfInvalidTransactions",
	"numberOfStaleTransactions",
	"numberOfSentTransactions",
	"connectionType",
}
