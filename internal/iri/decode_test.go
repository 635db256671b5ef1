package iri

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNodeInfo(t *testing.T) {
	ni, err := DecodeNodeInfo([]byte(nodeInfoJSON))
	require.NoError(t, err)

	assert.Equal(t, uint64(39), ni.TransactionsToRequest)
	assert.Equal(t, uint64(738844856), ni.JREFreeMemory)
	assert.Equal(t, uint64(3817865216), ni.JREMaxMemory)
	assert.Equal(t, uint32(3), ni.Neighbors)
	assert.Equal(t, uint64(969299), ni.LatestMilestoneIndex)
	assert.Equal(t, uint64(933211), ni.MilestoneStartIndex)
	assert.Equal(t, uint64(1547653117673), ni.Time)
	assert.Equal(t, uint64(4), ni.JREAvailableProcessors)
}

func TestDecodeNodeInfo_MissingEachField(t *testing.T) {
	for _, field := range nodeInfoFields {
		t.Run(field, func(t *testing.T) {
			body := withoutField(t, nodeInfoJSON, field)
			_, err := DecodeNodeInfo(body)
			require.Error(t, err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, CommandGetNodeInfo, de.Command)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestDecodeNodeInfo_NullField(t *testing.T) {
	body := withField(t, nodeInfoJSON, "tips", nil)
	_, err := DecodeNodeInfo(body)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecodeNodeInfo_WrongType(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"string for number", "tips", "3687"},
		{"negative number", "jreFreeMemory", -1},
		{"fraction", "latestMilestoneIndex", 1.5},
		{"neighbors overflows uint32", "neighbors", uint64(1) << 33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeNodeInfo(withField(t, nodeInfoJSON, tc.field, tc.value))
			var de *DecodeError
			assert.ErrorAs(t, err, &de)
		})
	}
}

func TestDecodeNodeInfo_TimeAboveUint64(t *testing.T) {
	body := withField(t, nodeInfoJSON, "time", json.Number("18446744073709551616"))
	_, err := DecodeNodeInfo(body)

	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestDecodeNodeInfo_CaseVariantKeyIgnored(t *testing.T) {
	body := withField(t, nodeInfoJSON, "Tips", 999)
	body = withField(t, string(body), "JREFREEMEMORY", 1)

	ni, err := DecodeNodeInfo(body)
	require.NoError(t, err)
	assert.Equal(t, uint64(3687), ni.Tips)
	assert.Equal(t, uint64(738844856), ni.JREFreeMemory)
}

func TestDecodeNodeInfo_CaseVariantOnlyIsMissing(t *testing.T) {
	body := withoutField(t, nodeInfoJSON, "tips")
	body = withField(t, string(body), "Tips", 3687)

	_, err := DecodeNodeInfo(body)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecodeNodeInfo_InvalidUTF8(t *testing.T) {
	body := []byte("{\"appName\": \"\xff\xfe\"}")
	_, err := DecodeNodeInfo(body)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestDecodeNodeInfo_NotJSON(t *testing.T) {
	for _, body := range []string{"", "<html>502 Bad Gateway</html>", "[]", "null", `{"tips": 1`} {
		_, err := DecodeNodeInfo([]byte(body))
		var de *DecodeError
		assert.ErrorAs(t, err, &de, "body %q", body)
	}
}

func TestDecodeNeighbors(t *testing.T) {
	n, err := DecodeNeighbors([]byte(neighborsJSON))
	require.NoError(t, err)

	require.Len(t, n.Neighbors, 5)
	assert.Equal(t, "CANTUN.mindflavor.it:14600", n.Neighbors[0].Address)
	assert.Equal(t, "static.150.12.69.159.clients.your-server.de:14600", n.Neighbors[4].Address)
	assert.Equal(t, uint64(14978), n.Neighbors[3].NumberOfRandomTransactionRequests)
	assert.Equal(t, uint64(2138813), n.Neighbors[0].NumberOfSentTransactions)
	assert.Equal(t, "udp", n.Neighbors[1].ConnectionType)
}

func TestDecodeNeighbors_Empty(t *testing.T) {
	n, err := DecodeNeighbors([]byte(`{"neighbors": [], "duration": 1}`))
	require.NoError(t, err)
	assert.Empty(t, n.Neighbors)
	assert.Equal(t, uint64(1), n.Duration)
}

func TestDecodeNeighbors_DuplicateAddressesKept(t *testing.T) {
	body := `{"neighbors": [` + neighborEntry("A", 1) + `,` + neighborEntry("A", 2) + `], "duration": 0}`
	n, err := DecodeNeighbors([]byte(body))
	require.NoError(t, err)
	require.Len(t, n.Neighbors, 2)
	assert.Equal(t, uint64(1), n.Neighbors[0].NumberOfAllTransactions)
	assert.Equal(t, uint64(2), n.Neighbors[1].NumberOfAllTransactions)
}

func TestDecodeNeighbors_CaseVariantKeyIgnored(t *testing.T) {
	body := `{"neighbors": [{"address":"A","numberOfAllTransactions":0,"NUMBEROFALLTRANSACTIONS":7,` +
		`"numberOfRandomTransactionRequests":0,"numberOfNewTransactions":0,"numberOfInvalidTransactions":0,` +
		`"numberOfStaleTransactions":0,"numberOfSentTransactions":0,"connectionType":"udp","Address":"B"}],` +
		`"duration": 0, "Neighbors": []}`

	n, err := DecodeNeighbors([]byte(body))
	require.NoError(t, err)
	require.Len(t, n.Neighbors, 1)
	assert.Equal(t, "A", n.Neighbors[0].Address)
	assert.Equal(t, uint64(0), n.Neighbors[0].NumberOfAllTransactions)
}

func TestDecodeNeighbors_MissingTopLevelField(t *testing.T) {
	for _, field := range neighborsFields {
		t.Run(field, func(t *testing.T) {
			_, err := DecodeNeighbors(withoutField(t, neighborsJSON, field))
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, CommandGetNeighbors, de.Command)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestDecodeNeighbors_MissingEntryField(t *testing.T) {
	for _, field := range neighborFields {
		t.Run(field, func(t *testing.T) {
			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(neighborEntry("A", 1)), &entry))
			delete(entry, field)
			raw, err := json.Marshal(map[string]any{"neighbors": []any{entry}, "duration": 0})
			require.NoError(t, err)

			_, err = DecodeNeighbors(raw)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), "neighbors[0]")
		})
	}
}

func TestDecodeNeighbors_WrongShape(t *testing.T) {
	tests := map[string]string{
		"neighbors not array": `{"neighbors": {}, "duration": 0}`,
		"null entry":          `{"neighbors": [null], "duration": 0}`,
		"counter as string":   `{"neighbors": [` + `{"address":"A","numberOfAllTransactions":"1","numberOfRandomTransactionRequests":0,"numberOfNewTransactions":0,"numberOfInvalidTransactions":0,"numberOfStaleTransactions":0,"numberOfSentTransactions":0,"connectionType":"udp"}` + `], "duration": 0}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeNeighbors([]byte(body))
			var de *DecodeError
			assert.True(t, errors.As(err, &de), "got %v", err)
		})
	}
}

// withoutField returns doc re-encoded without the top-level key field.
func withoutField(t *testing.T, doc, field string) []byte {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &m))
	delete(m, field)
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

// withField returns doc re-encoded with the top-level key field set to value.
func withField(t *testing.T, doc, field string, value any) []byte {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &m))
	m[field] = value
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

func neighborEntry(address string, all uint64) string {
	b, _ := json.Marshal(Neighbor{Address: address, NumberOfAllTransactions: all, ConnectionType: "tcp"})
	return string(b)
}
