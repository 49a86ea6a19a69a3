package create_reservation

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

var loc = time.FixedZone("GMT", 0)

type fakeRepo struct {
	items     []*domain.Reservation
	listErr   error
	createErr error
}

func (r *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	r.items = append(r.items, res)
	return res, nil
}

func (r *fakeRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Reservation
	for _, res := range r.items {
		if res.Date.Format(domain.DateFormat) == date.Format(domain.DateFormat) {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeRates struct{ err error }

func (f fakeRates) Current(context.Context) (domain.Rates, error) {
	if f.err != nil {
		return domain.Rates{}, f.err
	}
	return domain.Rates{Currency: "XOF", Hourly: 30000, Mix: 150000, Master: 70000}, nil
}

type fakeCache struct{ invalidated []string }

func (c *fakeCache) Invalidate(_ context.Context, date string) {
	c.invalidated = append(c.invalidated, date)
}

type fakeTx struct{ calls int }

func (m *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeMetrics struct{ created map[string]int }

func (m *fakeMetrics) ReservationCreated(serviceType string) {
	if m.created == nil {
		m.created = map[string]int{}
	}
	m.created[serviceType]++
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// steppingTime отдаёт times по очереди, последнее значение повторяется
type steppingTime struct{ times []time.Time }

func (s *steppingTime) Now() time.Time {
	now := s.times[0]
	if len(s.times) > 1 {
		s.times = s.times[1:]
	}
	return now
}

type env struct {
	uc      *UseCase
	repo    *fakeRepo
	cache   *fakeCache
	tx      *fakeTx
	metrics *fakeMetrics
}

func newEnv(now time.Time) *env {
	e := &env{repo: &fakeRepo{}, cache: &fakeCache{}, tx: &fakeTx{}, metrics: &fakeMetrics{}}
	cat := catalog.New(loc, 14, time.Sunday, 20*time.Minute)
	e.uc = NewUseCase(e.repo, fakeRates{}, e.cache, e.tx, cat, e.metrics, LinksConfig{
		WaveBaseURL:   "https://pay.wave.com/m/M_sn_zCHJuLFd2WBm/c/sn/",
		StudioPhone:   "+221710162323",
		WhatsAppPhone: "221710162323",
	}, logger.NewNop()).WithTimeProvider(fixedTime{now: now})
	return e
}

var contact = domain.Contact{Name: "Awa Diop", Email: "awa@example.com", Phone: "+221770000000"}

// понедельник 19 октября 2026, 10:00
var monday = time.Date(2026, 10, 19, 10, 0, 0, 0, loc)

func TestExecute_Hourly(t *testing.T) {
	e := newEnv(monday)

	resp, err := e.uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceHourly,
		Date:        "2026-10-20",
		SlotIDs:     []string{"11-12", "09-10", "10-11"},
		Contact:     contact,
	})
	require.NoError(t, err)

	res := resp.Reservation
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, []string{"09-10", "10-11", "11-12"}, res.Slots)
	require.NotNil(t, res.Hours)
	assert.Equal(t, 3, *res.Hours)
	assert.Nil(t, res.TitleCount)
	assert.Equal(t, int64(90000), res.TotalAmount)
	assert.Equal(t, "2026-10-20", res.Date.Format(domain.DateFormat))
	assert.Equal(t, "09h00 - 12h00", resp.Description)

	assert.Equal(t, []string{"2026-10-20"}, e.cache.invalidated)
	assert.Equal(t, 1, e.tx.calls)
	assert.Equal(t, 1, e.metrics.created["hourly"])

	wave, err := url.Parse(resp.WaveURL)
	require.NoError(t, err)
	assert.Equal(t, "90000", wave.Query().Get("amount"))
	assert.Equal(t, "XOF", wave.Query().Get("currency"))
	assert.Equal(t, res.ID, wave.Query().Get("reference"))
	assert.Equal(t, "Reservation Studio - Awa Diop", wave.Query().Get("description"))

	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/221710162323?text="))
	assert.Equal(t, "tel:+221710162323", resp.PhoneURL)
}

func TestExecute_RoundTripBlocksSameSlots(t *testing.T) {
	e := newEnv(monday)
	req := &Request{
		ServiceType: domain.ServiceHourly,
		Date:        "2026-10-20",
		SlotIDs:     []string{"09-10", "10-11"},
		Contact:     contact,
	}

	_, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	booked, err := e.repo.ListByDate(context.Background(), time.Date(2026, 10, 20, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09-10", "10-11"}, domain.BookedSlotIDs(booked))

	req.SlotIDs = []string{"10-11", "11-12"}
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, e.repo.items, 1)
}

func TestExecute_CancelledReservationFreesSlots(t *testing.T) {
	e := newEnv(monday)
	e.repo.items = append(e.repo.items, &domain.Reservation{
		ServiceType: domain.ServiceHourly,
		Status:      domain.StatusCancelled,
		Date:        time.Date(2026, 10, 20, 0, 0, 0, 0, loc),
		Slots:       []string{"09-10"},
	})

	_, err := e.uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceHourly,
		Date:        "2026-10-20",
		SlotIDs:     []string{"09-10"},
		Contact:     contact,
	})
	assert.NoError(t, err)
}

func TestExecute_MixIsDatedToday(t *testing.T) {
	e := newEnv(monday)

	resp, err := e.uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceMix,
		Date:        "2026-10-28",
		TitleCount:  4,
		Contact:     contact,
	})
	require.NoError(t, err)

	res := resp.Reservation
	assert.Equal(t, int64(600000), res.TotalAmount)
	assert.Equal(t, "2026-10-19", res.Date.Format(domain.DateFormat))
	require.NotNil(t, res.TitleCount)
	assert.Equal(t, 4, *res.TitleCount)
	assert.Nil(t, res.Hours)
	assert.Empty(t, res.Slots)
	assert.Equal(t, "4 titres", resp.Description)
	assert.Empty(t, e.cache.invalidated)
}

func TestExecute_DuplicateTitleSubmissionsAreKept(t *testing.T) {
	e := newEnv(monday)
	req := &Request{ServiceType: domain.ServiceMaster, TitleCount: 1, Contact: contact}

	_, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	_, err = e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, e.repo.items, 2)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"no slots", Request{ServiceType: domain.ServiceHourly, Date: "2026-10-20", Contact: contact}, ErrSelectionMissing},
		{"no date", Request{ServiceType: domain.ServiceHourly, SlotIDs: []string{"09-10"}, Contact: contact}, ErrSelectionMissing},
		{"no titles", Request{ServiceType: domain.ServiceMix, Contact: contact}, ErrTitlesMissing},
		{"selection before contact", Request{ServiceType: domain.ServiceMix}, ErrTitlesMissing},
		{"missing email", Request{ServiceType: domain.ServiceMix, TitleCount: 1, Contact: domain.Contact{Name: "A", Phone: "1"}}, ErrContactMissing},
		{"too many titles", Request{ServiceType: domain.ServiceMix, TitleCount: 21, Contact: contact}, ErrInvalidTitleCount},
		{"unknown service", Request{ServiceType: "podcast", Contact: contact}, ErrInvalidServiceType},
		{"gap", Request{ServiceType: domain.ServiceHourly, Date: "2026-10-20", SlotIDs: []string{"09-10", "11-12"}, Contact: contact}, ErrInvalidTimeSlot},
		{"unknown slot", Request{ServiceType: domain.ServiceHourly, Date: "2026-10-20", SlotIDs: []string{"03-04"}, Contact: contact}, ErrInvalidTimeSlot},
		{"bad date", Request{ServiceType: domain.ServiceHourly, Date: "20-10-2026", SlotIDs: []string{"09-10"}, Contact: contact}, ErrInvalidDate},
		{"past date", Request{ServiceType: domain.ServiceHourly, Date: "2026-10-16", SlotIDs: []string{"09-10"}, Contact: contact}, ErrInvalidDate},
		{"sunday", Request{ServiceType: domain.ServiceHourly, Date: "2026-10-25", SlotIDs: []string{"09-10"}, Contact: contact}, ErrStudioClosed},
		{"outside window", Request{ServiceType: domain.ServiceHourly, Date: "2026-11-20", SlotIDs: []string{"09-10"}, Contact: contact}, ErrDateTooFarInFuture},
		{"too soon", Request{ServiceType: domain.ServiceHourly, Date: "2026-10-19", SlotIDs: []string{"10-11"}, Contact: contact}, ErrTooLateToBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(monday)
			_, err := e.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.repo.items)
		})
	}
}

func TestExecute_StoreFailures(t *testing.T) {
	req := &Request{ServiceType: domain.ServiceHourly, Date: "2026-10-20", SlotIDs: []string{"09-10"}, Contact: contact}

	e := newEnv(monday)
	e.repo.createErr = errors.New("insert failed")
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, e.cache.invalidated)

	e = newEnv(monday)
	e.repo.listErr = errors.New("select failed")
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)

	e = newEnv(monday)
	e.uc.rates = fakeRates{err: errors.New("rates down")}
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_LeadTimeRecheckedInsideTransaction(t *testing.T) {
	e := newEnv(monday)
	// 10:30 проходит проверку для 11-12, к моменту записи уже 10:45
	e.uc.WithTimeProvider(&steppingTime{times: []time.Time{
		time.Date(2026, 10, 19, 10, 30, 0, 0, loc),
		time.Date(2026, 10, 19, 10, 45, 0, 0, loc),
	}})

	_, err := e.uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceHourly,
		Date:        "2026-10-19",
		SlotIDs:     []string{"11-12"},
		Contact:     contact,
	})
	assert.ErrorIs(t, err, ErrTooLateToBook)
	assert.Equal(t, 1, e.tx.calls)
	assert.Empty(t, e.repo.items)
	assert.Empty(t, e.cache.invalidated)
}
