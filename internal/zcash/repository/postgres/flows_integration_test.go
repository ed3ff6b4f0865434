package postgres

import (
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

func (s *RepositorySuite) seedFlow(txid string, direction model.FlowDirection, now time.Time) {
	tx := newTestTx(txid, 100, 1, now)
	tx.ShieldedOutputCount = 1
	set := model.IndexedTransaction{
		Tx: tx,
		Flow: &model.ShieldedFlow{
			TxID:        txid,
			Direction:   direction,
			AmountZat:   10_000,
			Pool:        model.PoolSapling,
			BlockHeight: 100,
			BlockTime:   now,
		},
	}
	inserted, err := s.repo.ApplyTransaction(s.testCtx, set)
	s.Require().NoError(err)
	s.Require().True(inserted)
}

func (s *RepositorySuite) TestFlowsMissingCounterpartsPagination() {
	now := time.Now().UTC().Truncate(time.Second)
	s.seedFlow("a1", model.FlowShield, now)
	s.seedFlow("b2", model.FlowDeshield, now)
	s.seedFlow("c3", model.FlowShield, now)

	page, err := s.repo.FlowsMissingCounterparts(s.testCtx, "", 2)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("a1", page[0].TxID)
	s.Equal("b2", page[1].TxID)

	page, err = s.repo.FlowsMissingCounterparts(s.testCtx, page[1].TxID, 2)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("c3", page[0].TxID)
}

func (s *RepositorySuite) TestUpdateFlowCounterparts() {
	now := time.Now().UTC().Truncate(time.Second)
	s.seedFlow("a1", model.FlowDeshield, now)

	s.Require().NoError(s.repo.UpdateFlowCounterparts(s.testCtx, "a1", []string{"t1alice", "t1bob"}, 9_000))

	flow, err := s.repo.Flow(s.testCtx, "a1")
	s.Require().NoError(err)
	s.Equal([]string{"t1alice", "t1bob"}, flow.CounterpartAddresses)
	s.Equal(int64(9_000), flow.CounterpartValueZat)

	count, err := s.repo.CountFlowsMissingCounterparts(s.testCtx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *RepositorySuite) TestUpdateFlowCounterpartsEmptyMarksProcessed() {
	now := time.Now().UTC().Truncate(time.Second)
	s.seedFlow("a1", model.FlowShield, now)

	s.Require().NoError(s.repo.UpdateFlowCounterparts(s.testCtx, "a1", nil, 0))

	flow, err := s.repo.Flow(s.testCtx, "a1")
	s.Require().NoError(err)
	s.NotNil(flow.CounterpartAddresses)
	s.Empty(flow.CounterpartAddresses)

	page, err := s.repo.FlowsMissingCounterparts(s.testCtx, "", 10)
	s.Require().NoError(err)
	s.Empty(page)
}
