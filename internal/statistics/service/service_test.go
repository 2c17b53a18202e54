package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaibhavgupta5/ipl-auction/internal/statistics/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/statistics/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetTeamsStatistics(ctx context.Context) ([]model.TeamStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamStatistics), args.Error(1)
}

func (m *mockRepository) GetAuctionStatistics(ctx context.Context) (*model.AuctionStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuctionStatistics), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func newTestService(repo repository.Repository) Service {
	return New(repo, zap.NewNop().Sugar())
}

func TestService_GetTeamsStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("formats money fields", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newTestService(repo)
		repo.On("GetTeamsStatistics", mock.Anything).Return([]model.TeamStatistics{
			{TeamID: "csk", BudgetLakh: 9400, SpentLakh: 600},
			{TeamID: "mi", BudgetLakh: 10000, SpentLakh: 50},
		}, nil)

		resp, err := svc.GetTeamsStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "94.00 Cr", resp.Teams[0].Budget)
		assert.Equal(t, "6.00 Cr", resp.Teams[0].Spent)
		assert.Equal(t, "50.00 Lakh", resp.Teams[1].Spent)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newTestService(repo)
		repo.On("GetTeamsStatistics", mock.Anything).Return(nil, errors.New("boom"))

		_, err := svc.GetTeamsStatistics(ctx)

		assert.Error(t, err)
	})
}

func TestService_GetAuctionStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("computes average and formats totals", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newTestService(repo)
		repo.On("GetAuctionStatistics", mock.Anything).Return(&model.AuctionStatistics{
			TotalPlayers:   3,
			SoldPlayers:    2,
			UnsoldPlayers:  1,
			TotalSpentLakh: 600,
			TopSalePlayer:  "Ruturaj Gaikwad",
			TopSaleLakh:    400,
		}, nil)

		resp, err := svc.GetAuctionStatistics(ctx)

		require.NoError(t, err)
		stats := resp.Statistics
		assert.Equal(t, "6.00 Cr", stats.TotalSpent)
		assert.Equal(t, int64(300), stats.AveragePriceLakh)
		assert.Equal(t, "3.00 Cr", stats.AveragePrice)
		assert.Equal(t, "4.00 Cr", stats.TopSale)
	})

	t.Run("no sales yet", func(t *testing.T) {
		repo := new(mockRepository)
		svc := newTestService(repo)
		repo.On("GetAuctionStatistics", mock.Anything).Return(&model.AuctionStatistics{TotalPlayers: 5, UnsoldPlayers: 5}, nil)

		resp, err := svc.GetAuctionStatistics(ctx)

		require.NoError(t, err)
		assert.Zero(t, resp.Statistics.AveragePriceLakh)
		assert.Equal(t, "0.00 Lakh", resp.Statistics.AveragePrice)
		assert.Empty(t, resp.Statistics.TopSale)
	})
}
