package rpc

// Raw node payloads, decoded once at the client boundary. Shielded fields
// vary across protocol upgrades: transparent-only transactions carry none of
// them, Sapling transactions carry the vShielded arrays plus valueBalance,
// NU5 transactions add the orchard bundle.

// RawBlock is a verbosity-1 block payload with its ordered txid list.
type RawBlock struct {
	Hash          string   `json:"hash"`
	Height        uint64   `json:"height"`
	Time          int64    `json:"time"`
	Size          int64    `json:"size"`
	Difficulty    float64  `json:"difficulty"`
	PrevBlockHash string   `json:"previousblockhash"`
	NextBlockHash string   `json:"nextblockhash"`
	TxIDs         []string `json:"tx"`
}

// ScriptPubKey is the locking script of a transparent output. Addresses is
// empty for non-standard scripts.
type ScriptPubKey struct {
	Hex       string   `json:"hex"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`
}

// RawVin references a previous transparent output. Coinbase inputs carry the
// coinbase script instead of a previous reference.
type RawVin struct {
	Coinbase string `json:"coinbase"`
	TxID     string `json:"txid"`
	Vout     uint32 `json:"vout"`
}

// RawVout is one transparent output.
type RawVout struct {
	Value        float64      `json:"value"`
	ValueZat     *int64       `json:"valueZat"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// SaplingSpend is a spend description in the Sapling pool.
type SaplingSpend struct {
	CV        string `json:"cv"`
	Nullifier string `json:"nullifier"`
}

// SaplingOutput is an output description in the Sapling pool.
type SaplingOutput struct {
	CV  string `json:"cv"`
	CMU string `json:"cmu"`
}

// OrchardAction is one action in the Orchard bundle.
type OrchardAction struct {
	CV        string `json:"cv"`
	Nullifier string `json:"nullifier"`
}

// OrchardBundle is the NU5 orchard component of a transaction.
type OrchardBundle struct {
	Actions         []OrchardAction `json:"actions"`
	ValueBalance    float64         `json:"valueBalance"`
	ValueBalanceZat *int64          `json:"valueBalanceZat"`
}

// RawTransaction is a verbose transaction payload.
type RawTransaction struct {
	TxID string `json:"txid"`
	Size int64  `json:"size"`

	Vin  []RawVin  `json:"vin"`
	Vout []RawVout `json:"vout"`

	ShieldedSpends  []SaplingSpend  `json:"vShieldedSpend"`
	ShieldedOutputs []SaplingOutput `json:"vShieldedOutput"`
	ValueBalance    float64         `json:"valueBalance"`
	ValueBalanceZat *int64          `json:"valueBalanceZat"`

	Orchard *OrchardBundle `json:"orchard"`
}

// IsCoinbase reports whether the transaction mints the block reward.
func (t *RawTransaction) IsCoinbase() bool {
	return len(t.Vin) > 0 && t.Vin[0].Coinbase != ""
}

// OrchardActionCount returns the number of orchard actions, if any.
func (t *RawTransaction) OrchardActionCount() int {
	if t.Orchard == nil {
		return 0
	}
	return len(t.Orchard.Actions)
}

// ValuePool is one entry of getblockchaininfo's valuePools array.
type ValuePool struct {
	ID            string `json:"id"`
	ChainValueZat int64  `json:"chainValueZat"`
}

// ChainSupply is the total chain supply reported by the node.
type ChainSupply struct {
	ChainValueZat int64 `json:"chainValueZat"`
}

// BlockchainInfo is the aggregate chain state used by the privacy engine.
type BlockchainInfo struct {
	Chain       string       `json:"chain"`
	Blocks      uint64       `json:"blocks"`
	ValuePools  []ValuePool  `json:"valuePools"`
	ChainSupply *ChainSupply `json:"chainSupply"`
}

// PoolValueZat returns the chain value of the named pool, zero if absent.
func (i *BlockchainInfo) PoolValueZat(id string) int64 {
	for _, p := range i.ValuePools {
		if p.ID == id {
			return p.ChainValueZat
		}
	}
	return 0
}
