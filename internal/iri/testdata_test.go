package iri

// nodeInfoJSON is a getNodeInfo response captured from an IRI 1.6.0 mainnet node.
const nodeInfoJSON = `{
  "appName": "IRI",
  "appVersion": "1.6.0-RELEASE",
  "jreAvailableProcessors": 4,
  "jreFreeMemory": 738844856,
  "jreVersion": "1.8.0_191",
  "jreMaxMemory": 3817865216,
  "jreTotalMemory": 1956642816,
  "latestMilestone": "BSGKJQRZZLZKHGVYFIAYEPMKJNDQTKRAQQTVXEVZUEUJVLWICWFESOWD9OQUHLVJYKTCCCAMBXRMA9999",
  "latestMilestoneIndex": 969299,
  "latestSolidSubtangleMilestone": "BSGKJQRZZLZKHGVYFIAYEPMKJNDQTKRAQQTVXEVZUEUJVLWICWFESOWD9OQUHLVJYKTCCCAMBXRMA9999",
  "latestSolidSubtangleMilestoneIndex": 969299,
  "milestoneStartIndex": 933211,
  "lastSnapshottedMilestoneIndex": 968833,
  "neighbors": 3,
  "packetsQueueSize": 0,
  "time": 1547653117673,
  "tips": 3687,
  "transactionsToRequest": 39,
  "features": ["snapshotPruning", "dnsRefresher", "zeroMessageQueue", "tipSolidification"],
  "coordinatorAddress": "KPWCHICGJZXKE9GSUDXZYUAPLHAKAHYHDXNPHENTERYMMBQOPSQIDENXKLKCEYCPVTZQLEEJVYJZV9BWU",
  "duration": 0
}`

// neighborsJSON is a getNeighbors response with five UDP peers.
const neighborsJSON = `{
  "neighbors": [
    {
      "address": "CANTUN.mindflavor.it:14600",
      "numberOfAllTransactions": 0,
      "numberOfRandomTransactionRequests": 0,
      "numberOfNewTransactions": 0,
      "numberOfInvalidTransactions": 0,
      "numberOfStaleTransactions": 0,
      "numberOfSentTransactions": 2138813,
      "connectionType": "udp"
    },
    {
      "address": "185.144.100.110:14600",
      "numberOfAllTransactions": 1264786,
      "numberOfRandomTransactionRequests": 44451,
      "numberOfNewTransactions": 85689,
      "numberOfInvalidTransactions": 0,
      "numberOfStaleTransactions": 47690,
      "numberOfSentTransactions": 1306122,
      "connectionType": "udp"
    },
    {
      "address": "ume.iotanode.jp:14600",
      "numberOfAllTransactions": 413902,
      "numberOfRandomTransactionRequests": 24760,
      "numberOfNewTransactions": 103972,
      "numberOfInvalidTransactions": 0,
      "numberOfStaleTransactions": 41500,
      "numberOfSentTransactions": 444715,
      "connectionType": "udp"
    },
    {
      "address": "h2799399.stratoserver.net:14600",
      "numberOfAllTransactions": 430123,
      "numberOfRandomTransactionRequests": 14978,
      "numberOfNewTransactions": 31237,
      "numberOfInvalidTransactions": 0,
      "numberOfStaleTransactions": 225733,
      "numberOfSentTransactions": 274775,
      "connectionType": "udp"
    },
    {
      "address": "static.150.12.69.159.clients.your-server.de:14600",
      "numberOfAllTransactions": 108907,
      "numberOfRandomTransactionRequests": 2550,
      "numberOfNewTransactions": 33199,
      "numberOfInvalidTransactions": 0,
      "numberOfStaleTransactions": 9253,
      "numberOfSentTransactions": 85649,
      "connectionType": "udp"
    }
  ],
  "duration": 0
}`
