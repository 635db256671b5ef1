package render

import (
	"strings"

	"github.com/obsidianstack/iri-exporter/internal/iri"
)

// Node info families, in output order.
var (
	transactionsQueued = family{"iota_node_info_total_transactions_queued", "Total open txs at the interval"}
	totalTips          = family{"iota_node_info_total_tips", "Total tips at the interval"}
	totalNeighbors     = family{"iota_node_info_total_neighbors", "Total neighbors at the interval"}
	latestMilestone    = family{"iota_node_info_latest_milestone", "Tangle milestone at the interval"}
	subtangleMilestone = family{"iota_node_info_latest_subtangle_milestone", "Subtangle milestone at the interval"}
	milestoneStart     = family{"iota_node_milestone_start_index", "Milestone start index"}
	snapshotMilestone  = family{"iota_node_info_latest_snapshotted_milestone", "Snapshotted milestone at the interval"}
	packetQueueSize    = family{"iota_node_info_packet_queue_size", "Packet queue size"}
	jreFreeMemory      = family{"iota_node_info_jre_free_memory", "JRE free memory"}
	jreMaxMemory       = family{"iota_node_info_jre_max_memory", "JRE max memory"}
	jreTotalMemory     = family{"iota_node_info_jre_total_memory", "JRE total memory"}
)

// NodeInfo renders the eleven node info gauges.
func NodeInfo(ni iri.NodeInfo) string {
	var b strings.Builder
	b.Grow(1536)

	transactionsQueued.single(&b, ni.TransactionsToRequest)
	totalTips.single(&b, ni.Tips)
	totalNeighbors.single(&b, uint64(ni.Neighbors))
	latestMilestone.single(&b, ni.LatestMilestoneIndex)
	subtangleMilestone.single(&b, ni.LatestSolidSubtangleMilestoneIndex)
	milestoneStart.single(&b, ni.MilestoneStartIndex)
	snapshotMilestone.single(&b, ni.LastSnapshottedMilestoneIndex)
	packetQueueSize.single(&b, ni.PacketsQueueSize)
	jreFreeMemory.single(&b, ni.JREFreeMemory)
	jreMaxMemory.single(&b, ni.JREMaxMemory)
	jreTotalMemory.single(&b, ni.JRETotalMemory)

	return b.String()
}
