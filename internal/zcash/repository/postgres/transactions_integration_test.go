package postgres

import (
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

func (s *RepositorySuite) TestApplyTransaction() {
	now := time.Now().UTC().Truncate(time.Second)
	tx := newTestTx("tx1", 100, 1, now)

	set := model.IndexedTransaction{
		Tx: tx,
		Outputs: []model.TransactionOutput{
			{TxID: "tx1", Index: 0, ValueZat: 70_000, ScriptHex: "76a9", ScriptType: "pubkeyhash", Address: "t1alice"},
			{TxID: "tx1", Index: 1, ValueZat: 25_000, ScriptHex: "76a9", ScriptType: "pubkeyhash", Address: "t1bob"},
		},
		Inputs: []model.TransactionInput{
			{TxID: "tx1", Index: 0, PrevTxID: "tx0", PrevIndex: 3, Resolved: true, Address: "t1carol", ValueZat: 100_000},
		},
		Credits: []model.LedgerEntry{
			{Address: "t1alice", AmountZat: 70_000, Timestamp: now},
			{Address: "t1bob", AmountZat: 25_000, Timestamp: now},
		},
		Debits: []model.LedgerEntry{
			{Address: "t1carol", AmountZat: 100_000, Timestamp: now},
		},
	}

	inserted, err := s.repo.ApplyTransaction(s.testCtx, set)
	s.Require().NoError(err)
	s.True(inserted)

	s.Equal(uint64(1), s.countRows("transactions"))
	s.Equal(uint64(2), s.countRows("transaction_outputs"))
	s.Equal(uint64(1), s.countRows("transaction_inputs"))
	s.Equal(uint64(3), s.countRows("addresses"))

	alice, err := s.repo.Address(s.testCtx, "t1alice")
	s.Require().NoError(err)
	s.Equal(int64(70_000), alice.BalanceZat)
	s.Equal(int64(70_000), alice.TotalReceivedZat)
	s.Equal(uint64(1), alice.TxCount)

	carol, err := s.repo.Address(s.testCtx, "t1carol")
	s.Require().NoError(err)
	s.Equal(int64(-100_000), carol.BalanceZat)
	s.Equal(int64(100_000), carol.TotalSentZat)
}

func (s *RepositorySuite) TestApplyTransactionIsIdempotent() {
	now := time.Now().UTC().Truncate(time.Second)
	set := model.IndexedTransaction{
		Tx: newTestTx("tx1", 100, 1, now),
		Outputs: []model.TransactionOutput{
			{TxID: "tx1", Index: 0, ValueZat: 50_000, Address: "t1alice"},
		},
		Credits: []model.LedgerEntry{
			{Address: "t1alice", AmountZat: 50_000, Timestamp: now},
		},
	}

	inserted, err := s.repo.ApplyTransaction(s.testCtx, set)
	s.Require().NoError(err)
	s.True(inserted)

	inserted, err = s.repo.ApplyTransaction(s.testCtx, set)
	s.Require().NoError(err)
	s.False(inserted)

	alice, err := s.repo.Address(s.testCtx, "t1alice")
	s.Require().NoError(err)
	s.Equal(int64(50_000), alice.BalanceZat)
	s.Equal(uint64(1), alice.TxCount)
}

func (s *RepositorySuite) TestApplyTransactionWritesFlow() {
	now := time.Now().UTC().Truncate(time.Second)
	tx := newTestTx("tx2", 101, 1, now)
	tx.ShieldedOutputCount = 2
	tx.SaplingValueZat = -30_000

	set := model.IndexedTransaction{
		Tx: tx,
		Flow: &model.ShieldedFlow{
			TxID:        "tx2",
			Direction:   model.FlowShield,
			AmountZat:   30_000,
			Pool:        model.PoolSapling,
			BlockHeight: 101,
			BlockTime:   now,
		},
	}

	inserted, err := s.repo.ApplyTransaction(s.testCtx, set)
	s.Require().NoError(err)
	s.True(inserted)

	flow, err := s.repo.Flow(s.testCtx, "tx2")
	s.Require().NoError(err)
	s.Equal(model.FlowShield, flow.Direction)
	s.Equal(int64(30_000), flow.AmountZat)
	s.Equal(model.PoolSapling, flow.Pool)
	s.Nil(flow.CounterpartAddresses)
}

func (s *RepositorySuite) TestApplyTransactionAccumulatesLedger() {
	now := time.Now().UTC().Truncate(time.Second)

	first := model.IndexedTransaction{
		Tx:      newTestTx("tx1", 100, 1, now),
		Credits: []model.LedgerEntry{{Address: "t1alice", AmountZat: 40_000, Timestamp: now}},
	}
	second := model.IndexedTransaction{
		Tx:     newTestTx("tx2", 101, 1, now.Add(75*time.Second)),
		Debits: []model.LedgerEntry{{Address: "t1alice", AmountZat: 15_000, Timestamp: now.Add(75 * time.Second)}},
	}

	for _, set := range []model.IndexedTransaction{first, second} {
		inserted, err := s.repo.ApplyTransaction(s.testCtx, set)
		s.Require().NoError(err)
		s.True(inserted)
	}

	alice, err := s.repo.Address(s.testCtx, "t1alice")
	s.Require().NoError(err)
	s.Equal(int64(25_000), alice.BalanceZat)
	s.Equal(int64(40_000), alice.TotalReceivedZat)
	s.Equal(int64(15_000), alice.TotalSentZat)
	s.Equal(uint64(2), alice.TxCount)
	s.True(alice.LastSeen.After(alice.FirstSeen))
}

func (s *RepositorySuite) TestApplyTransactionOutOfOrderKeepsEarliestFirstSeen() {
	early := time.Now().UTC().Truncate(time.Second)
	late := early.Add(24 * time.Hour)

	// Catch-up batches index heights concurrently, so the later credit and a
	// spend can land before the earlier credit.
	later := model.IndexedTransaction{
		Tx:      newTestTx("tx2", 101, 1, late),
		Credits: []model.LedgerEntry{{Address: "t1alice", AmountZat: 10_000, Timestamp: late}},
		Debits:  []model.LedgerEntry{{Address: "t1bob", AmountZat: 5_000, Timestamp: late}},
	}
	earlier := model.IndexedTransaction{
		Tx:      newTestTx("tx1", 100, 1, early),
		Credits: []model.LedgerEntry{{Address: "t1alice", AmountZat: 20_000, Timestamp: early}},
		Debits:  []model.LedgerEntry{{Address: "t1bob", AmountZat: 8_000, Timestamp: early}},
	}

	for _, set := range []model.IndexedTransaction{later, earlier} {
		inserted, err := s.repo.ApplyTransaction(s.testCtx, set)
		s.Require().NoError(err)
		s.True(inserted)
	}

	alice, err := s.repo.Address(s.testCtx, "t1alice")
	s.Require().NoError(err)
	s.True(alice.FirstSeen.Equal(early))
	s.True(alice.LastSeen.Equal(late))

	bob, err := s.repo.Address(s.testCtx, "t1bob")
	s.Require().NoError(err)
	s.True(bob.FirstSeen.Equal(early))
	s.True(bob.LastSeen.Equal(late))
}

func (s *RepositorySuite) TestTxTypeCounts() {
	now := time.Now().UTC().Truncate(time.Second)

	coinbase := newTestTx("cb", 100, 0, now)
	transparent := newTestTx("tp", 100, 1, now)
	fullyShielded := newTestTx("fs", 100, 2, now)
	fullyShielded.InputCount = 0
	fullyShielded.OutputCount = 0
	fullyShielded.ShieldedSpendCount = 1
	fullyShielded.ShieldedOutputCount = 1
	mixed := newTestTx("mx", 100, 3, now)
	mixed.OrchardActionCount = 2

	for _, tx := range []model.Transaction{coinbase, transparent, fullyShielded, mixed} {
		inserted, err := s.repo.ApplyTransaction(s.testCtx, model.IndexedTransaction{Tx: tx})
		s.Require().NoError(err)
		s.True(inserted)
	}

	counts, err := s.repo.TxTypeCounts(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(4), counts.Total)
	s.Equal(uint64(1), counts.Coinbase)
	s.Equal(uint64(1), counts.Transparent)
	s.Equal(uint64(2), counts.Shielded)
	s.Equal(uint64(1), counts.FullyShielded)
	s.Equal(uint64(1), counts.Mixed)
}
