package render

import (
	"strings"

	"github.com/obsidianstack/iri-exporter/internal/iri"
)

var (
	newTransactions     = family{"iota_neighbors_new_transactions", "New transactions by neighbor"}
	randomTransactions  = family{"iota_neighbors_random_transactions", "Random transactions by neighbor"}
	allTransactions     = family{"iota_neighbors_all_transactions", "All transactions by neighbor"}
	invalidTransactions = family{"iota_neighbors_invalid_transactions", "Invalid transactions by neighbor"}
	sentTransactions    = family{"iota_neighbors_sent_transactions", "Transactions sent to neighbor"}
	activeNeighbors     = family{"iota_neighbors_active_neighbors", "Number of neighbors who are active"}
)

// perNeighbor pairs a family with the counter it reports, in output order.
var perNeighbor = []struct {
	family
	value func(iri.Neighbor) uint64
}{
	{newTransactions, func(n iri.Neighbor) uint64 { return n.NumberOfNewTransactions }},
	{randomTransactions, func(n iri.Neighbor) uint64 { return n.NumberOfRandomTransactionRequests }},
	{allTransactions, func(n iri.Neighbor) uint64 { return n.NumberOfAllTransactions }},
	{invalidTransactions, func(n iri.Neighbor) uint64 { return n.NumberOfInvalidTransactions }},
	{sentTransactions, func(n iri.Neighbor) uint64 { return n.NumberOfSentTransactions }},
}

// Neighbors renders the per-neighbor transaction gauges followed by the
// active neighbor count. Samples keep the order of n.Neighbors.
func Neighbors(n iri.Neighbors) string {
	var b strings.Builder
	b.Grow(512 + len(n.Neighbors)*len(perNeighbor)*96)

	for _, f := range perNeighbor {
		f.header(&b)
		for _, nb := range n.Neighbors {
			f.sampleID(&b, nb.Address, f.value(nb))
		}
	}
	activeNeighbors.single(&b, uint64(ActiveNeighbors(n)))

	return b.String()
}

// ActiveNeighbors counts neighbors that have exchanged at least one transaction.
func ActiveNeighbors(n iri.Neighbors) int {
	active := 0
	for _, nb := range n.Neighbors {
		if nb.NumberOfAllTransactions > 0 {
			active++
		}
	}
	return active
}
