package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"algosphere/internal/domain"
)

// testLogger is a no-op logger so service tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeClubRepo is an in-memory ClubRepository for tests.
type fakeClubRepo struct {
	mu     sync.Mutex
	byAddr map[string]*domain.Club
	err    error // if set, Create returns this error
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{byAddr: make(map[string]*domain.Club)}
}

func (f *fakeClubRepo) Create(ctx context.Context, c *domain.Club) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byAddr[c.Address]; ok {
		return domain.ErrClubAlreadyRegistered
	}
	f.byAddr[c.Address] = c
	return nil
}

func (f *fakeClubRepo) GetByAddress(ctx context.Context, address string) (*domain.Club, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byAddr[address]; ok {
		return c, nil
	}
	return nil, domain.ErrClubNotFound
}

// fakeEventRepo is an in-memory EventRepository for tests. WithTx runs fn
// directly; rollback behavior is covered by the postgres repository tests.
type fakeEventRepo struct {
	byID      map[int64]*domain.Event
	nextID    int64
	payments  map[string]bool
	createErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:     make(map[int64]*domain.Event),
		nextID:   1,
		payments: make(map[string]bool),
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeEventRepo) List(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	ids := make([]int64, 0, len(f.byID))
	for id := range f.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*domain.Event
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeEventRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEventRepo) IncrementSold(ctx context.Context, id int64) error {
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.Sold >= e.Total {
		return domain.ErrSoldOut
	}
	e.Sold++
	return nil
}

func (f *fakeEventRepo) ConsumePayment(ctx context.Context, txID string, eventID int64, buyer string) error {
	if f.payments[txID] {
		return domain.ErrPaymentAlreadyUsed
	}
	f.payments[txID] = true
	return nil
}

// fakeLedger is an in-memory AssetLedger for tests.
type fakeLedger struct {
	nextAssetID uint64
	supply      map[uint64]uint64
	holdings    map[string]map[uint64]uint64 // address -> assetID -> balance
	optedIn     map[string]map[uint64]bool
	payments    map[string]*domain.Payment
	mintErr     error
	transferErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		nextAssetID: 1001,
		supply:      make(map[uint64]uint64),
		holdings:    make(map[string]map[uint64]uint64),
		optedIn:     make(map[string]map[uint64]bool),
		payments:    make(map[string]*domain.Payment),
	}
}

func (f *fakeLedger) MintTicketAsset(ctx context.Context, eventName string, total uint64) (uint64, error) {
	if f.mintErr != nil {
		return 0, f.mintErr
	}
	id := f.nextAssetID
	f.nextAssetID++
	f.supply[id] = total
	return id, nil
}

func (f *fakeLedger) TransferTicket(ctx context.Context, assetID uint64, recipient string) error {
	if f.transferErr != nil {
		return f.transferErr
	}
	if !f.optedIn[recipient][assetID] {
		return fmt.Errorf("asset %d missing from %s", assetID, recipient)
	}
	if f.holdings[recipient] == nil {
		f.holdings[recipient] = make(map[uint64]uint64)
	}
	f.holdings[recipient][assetID]++
	return nil
}

func (f *fakeLedger) AssetBalance(ctx context.Context, address string, assetID uint64) (uint64, bool, error) {
	if !f.optedIn[address][assetID] {
		return 0, false, nil
	}
	return f.holdings[address][assetID], true, nil
}

func (f *fakeLedger) GetPayment(ctx context.Context, txID string) (*domain.Payment, error) {
	if p, ok := f.payments[txID]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("transaction %s not found", txID)
}

func (f *fakeLedger) optIn(address string, assetID uint64) {
	if f.optedIn[address] == nil {
		f.optedIn[address] = make(map[uint64]bool)
	}
	f.optedIn[address][assetID] = true
}

func (f *fakeLedger) addPayment(txID, sender, receiver string, amount uint64) {
	f.payments[txID] = &domain.Payment{
		TxID:           txID,
		Sender:         sender,
		Receiver:       receiver,
		Amount:         amount,
		ConfirmedRound: 7,
	}
}

// fakeEmailService records welcome emails instead of sending them.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.ClubWelcomeEmailData
	err  error
}

func (f *fakeEmailService) SendClubWelcome(ctx context.Context, data *domain.ClubWelcomeEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeChallengeRepo is an in-memory ChallengeRepository for tests.
type fakeChallengeRepo struct {
	nextID     int
	challenges []*domain.Challenge
}

func (f *fakeChallengeRepo) Create(ctx context.Context, address, nonceHash string, expiresAt time.Time) error {
	f.nextID++
	f.challenges = append(f.challenges, &domain.Challenge{
		ID:        fmt.Sprintf("ch-%d", f.nextID),
		Address:   address,
		NonceHash: nonceHash,
		ExpiresAt: expiresAt,
	})
	return nil
}

func (f *fakeChallengeRepo) GetLatest(ctx context.Context, address string) (*domain.Challenge, error) {
	for i := len(f.challenges) - 1; i >= 0; i-- {
		c := f.challenges[i]
		if c.Address == address && c.ExpiresAt.After(time.Now()) {
			return c, nil
		}
	}
	return nil, domain.ErrInvalidChallenge
}

func (f *fakeChallengeRepo) Delete(ctx context.Context, id string) error {
	for i, c := range f.challenges {
		if c.ID == id {
			f.challenges = append(f.challenges[:i], f.challenges[i+1:]...)
			return nil
		}
	}
	return nil
}
