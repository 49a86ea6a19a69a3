package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	ratesRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/rates"
	"github.com/m04kA/SMC-StudioBooking/internal/service/rates/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

var defaults = domain.Rates{Currency: "XOF", Hourly: 30000, Mix: 150000, Master: 70000}

type fakeRepo struct {
	stored *domain.Rates
	getErr error
}

func (r *fakeRepo) Get(context.Context) (*domain.Rates, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, ratesRepo.ErrRatesNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *fakeRepo) Upsert(_ context.Context, rates *domain.Rates) (*domain.Rates, error) {
	rates.UpdatedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	copied := *rates
	r.stored = &copied
	return rates, nil
}

type fakeTx struct {
	calls int
	err   error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

func ptr(v int64) *int64 { return &v }

func TestCurrent_FallsBackToDefaults(t *testing.T) {
	s := NewService(&fakeRepo{}, &fakeTx{}, defaults, logger.NewNop())

	rates, err := s.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults, rates)

	resp, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Nil(t, resp.UpdatedAt)
}

func TestCurrent_RepositoryError(t *testing.T) {
	s := NewService(&fakeRepo{getErr: errors.New("db down")}, &fakeTx{}, defaults, logger.NewNop())
	_, err := s.Current(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_Partial(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTx{}
	s := NewService(repo, tx, defaults, logger.NewNop())

	resp, err := s.Update(context.Background(), &models.UpdateRatesRequest{Mix: ptr(120000)})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), resp.Hourly)
	assert.Equal(t, int64(120000), resp.Mix)
	assert.Equal(t, int64(70000), resp.Master)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 1, tx.calls)

	rates, err := s.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120000), rates.Mix)
}

func TestUpdate_Invalid(t *testing.T) {
	s := NewService(&fakeRepo{}, &fakeTx{}, defaults, logger.NewNop())

	_, err := s.Update(context.Background(), &models.UpdateRatesRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Update(context.Background(), &models.UpdateRatesRequest{Hourly: ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_TransactionError(t *testing.T) {
	s := NewService(&fakeRepo{}, &fakeTx{err: errors.New("begin tx: conn refused")}, defaults, logger.NewNop())

	_, err := s.Update(context.Background(), &models.UpdateRatesRequest{Hourly: ptr(35000)})
	assert.ErrorIs(t, err, ErrInternal)
}
