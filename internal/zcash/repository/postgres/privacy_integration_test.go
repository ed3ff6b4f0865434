package postgres

import (
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

func (s *RepositorySuite) TestUpsertPrivacyStats() {
	now := time.Now().UTC().Truncate(time.Second)
	stats := model.PrivacyStats{
		SproutPoolZat:  1_000,
		SaplingPoolZat: 2_000,
		OrchardPoolZat: 3_000,
		ChainSupplyZat: 100_000,
		TxCounts: model.TxTypeCounts{
			Total: 10, Coinbase: 2, Transparent: 5, Shielded: 3, FullyShielded: 1, Mixed: 2,
		},
		ShieldedPct:  30,
		PrivacyScore: 42,
		UpdatedAt:    now,
	}

	s.Require().NoError(s.repo.UpsertPrivacyStats(s.testCtx, stats))

	updated := stats
	updated.OrchardPoolZat = 4_000
	updated.PrivacyScore = 45
	updated.UpdatedAt = now.Add(time.Hour)
	s.Require().NoError(s.repo.UpsertPrivacyStats(s.testCtx, updated))

	s.Equal(uint64(1), s.countRows("privacy_stats"))

	got, err := s.repo.PrivacyStats(s.testCtx)
	s.Require().NoError(err)
	s.Equal(int64(4_000), got.OrchardPoolZat)
	s.Equal(uint32(45), got.PrivacyScore)
	s.Equal(int64(8_000), got.ShieldedPoolZat())
	s.Equal(stats.TxCounts, got.TxCounts)
}

func (s *RepositorySuite) TestUpsertTrendDay() {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	trend := model.TrendDay{
		Day:              day,
		ShieldedCount:    5,
		TransparentCount: 20,
		ShieldedPct:      20,
		PoolZat:          6_000,
		PrivacyScore:     33,
	}

	s.Require().NoError(s.repo.UpsertTrendDay(s.testCtx, trend))

	trend.ShieldedCount = 6
	s.Require().NoError(s.repo.UpsertTrendDay(s.testCtx, trend))

	days, err := s.repo.TrendDays(s.testCtx, 10)
	s.Require().NoError(err)
	s.Require().Len(days, 1)
	s.Equal(uint64(6), days[0].ShieldedCount)
	s.True(day.Equal(days[0].Day))
}

func (s *RepositorySuite) TestTxTypeCountsForHeights() {
	now := time.Now().UTC().Truncate(time.Second)
	inWindow := newTestTx("in", 100, 1, now)
	inWindow.OrchardActionCount = 1
	outOfWindow := newTestTx("out", 200, 1, now)

	for _, tx := range []model.Transaction{inWindow, outOfWindow} {
		inserted, err := s.repo.ApplyTransaction(s.testCtx, model.IndexedTransaction{Tx: tx})
		s.Require().NoError(err)
		s.True(inserted)
	}

	counts, err := s.repo.TxTypeCountsForHeights(s.testCtx, 50, 150)
	s.Require().NoError(err)
	s.Equal(uint64(1), counts.Total)
	s.Equal(uint64(1), counts.Shielded)
}

func (s *RepositorySuite) TestTxTypeCountsForDay() {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	inDay := newTestTx("in", 100, 1, day.Add(10*time.Hour))
	nextDay := newTestTx("out", 101, 1, day.Add(25*time.Hour))

	for _, tx := range []model.Transaction{inDay, nextDay} {
		inserted, err := s.repo.ApplyTransaction(s.testCtx, model.IndexedTransaction{Tx: tx})
		s.Require().NoError(err)
		s.True(inserted)
	}

	counts, err := s.repo.TxTypeCountsForDay(s.testCtx, day)
	s.Require().NoError(err)
	s.Equal(uint64(1), counts.Total)
}

func (s *RepositorySuite) TestMissingTrendDays() {
	day1 := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	txs := []model.Transaction{
		newTestTx("a", 100, 1, day1.Add(time.Hour)),
		newTestTx("b", 101, 1, day2.Add(time.Hour)),
	}
	for _, tx := range txs {
		inserted, err := s.repo.ApplyTransaction(s.testCtx, model.IndexedTransaction{Tx: tx})
		s.Require().NoError(err)
		s.True(inserted)
	}

	s.Require().NoError(s.repo.UpsertTrendDay(s.testCtx, model.TrendDay{Day: day1}))

	missing, err := s.repo.MissingTrendDays(s.testCtx)
	s.Require().NoError(err)
	s.Require().Len(missing, 1)
	s.True(day2.Equal(missing[0]))
}
