package wheel

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
	"github.com/osse101/ChoreWheel_Go/internal/repository"
)

// FakeRepository is an in-memory implementation of the wheel repositories.
// BeginSpinTx takes a per-user mutex the way the Postgres version takes an
// advisory lock, and staged writes only become visible on Commit.
type FakeRepository struct {
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex

	configs  map[string]*domain.WheelConfig
	rewards  map[string]*domain.CustomReward
	spins    []domain.SpinRecord
	profiles map[string]*domain.Profile
	tasks    map[string]int
	nextID   int64

	createDefaultCalls int
	getConfigErr       error
	taskErr            error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		userLocks: make(map[string]*sync.Mutex),
		configs:   make(map[string]*domain.WheelConfig),
		rewards:   make(map[string]*domain.CustomReward),
		profiles:  make(map[string]*domain.Profile),
		tasks:     make(map[string]int),
	}
}

func (f *FakeRepository) addProfile(p domain.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.UserID] = &p
}

func (f *FakeRepository) profile(userID string) domain.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.profiles[userID]
}

func (f *FakeRepository) putConfig(cfg domain.WheelConfig) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs[cfg.HouseholdID] = &cfg
}

func (f *FakeRepository) spinCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.spins)
}

// WheelConfig

func (f *FakeRepository) GetConfig(ctx context.Context, householdID string) (*domain.WheelConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getConfigErr != nil {
		return nil, f.getConfigErr
	}
	cfg, ok := f.configs[householdID]
	if !ok {
		return nil, nil
	}
	c := *cfg
	return &c, nil
}

func (f *FakeRepository) CreateDefaultConfig(ctx context.Context, cfg domain.WheelConfig) (*domain.WheelConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createDefaultCalls++
	if _, ok := f.configs[cfg.HouseholdID]; !ok {
		cfg.CreatedAt = time.Now()
		cfg.UpdatedAt = cfg.CreatedAt
		f.configs[cfg.HouseholdID] = &cfg
	}
	c := *f.configs[cfg.HouseholdID]
	return &c, nil
}

func (f *FakeRepository) SaveConfig(ctx context.Context, cfg domain.WheelConfig) (*domain.WheelConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg.UpdatedAt = time.Now()
	f.configs[cfg.HouseholdID] = &cfg
	c := cfg
	return &c, nil
}

func (f *FakeRepository) ListCustomRewards(ctx context.Context, householdID string) ([]domain.CustomReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.CustomReward
	for _, r := range f.rewards {
		if r.HouseholdID == householdID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *FakeRepository) GetCustomReward(ctx context.Context, rewardID string) (*domain.CustomReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[rewardID]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (f *FakeRepository) CreateCustomReward(ctx context.Context, reward *domain.CustomReward) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reward.CreatedAt.IsZero() {
		reward.CreatedAt = time.Now()
	}
	r := *reward
	f.rewards[reward.ID] = &r
	return nil
}

func (f *FakeRepository) UpdateCustomReward(ctx context.Context, reward domain.CustomReward) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rewards[reward.ID]; !ok {
		return domain.ErrCustomRewardNotFound
	}
	f.rewards[reward.ID] = &reward
	return nil
}

func (f *FakeRepository) DeleteCustomReward(ctx context.Context, householdID, rewardID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rewards[rewardID]
	if !ok || r.HouseholdID != householdID {
		return domain.ErrCustomRewardNotFound
	}
	delete(f.rewards, rewardID)
	return nil
}

// Profile

func (f *FakeRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *FakeRepository) GetTaskPoints(ctx context.Context, taskID string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.taskErr != nil {
		return 0, false, f.taskErr
	}
	points, ok := f.tasks[taskID]
	return points, ok, nil
}

// Spin

func (f *FakeRepository) CountSpinsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countLocked(userID, since), nil
}

func (f *FakeRepository) countLocked(userID string, since time.Time) int {
	n := 0
	for _, s := range f.spins {
		if s.UserID == userID && !s.SpunAt.Before(since) {
			n++
		}
	}
	return n
}

func (f *FakeRepository) ListSpins(ctx context.Context, userID, householdID string, limit int) ([]domain.SpinRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.SpinRecord
	for i := len(f.spins) - 1; i >= 0 && len(out) < limit; i-- {
		s := f.spins[i]
		if s.UserID == userID && s.HouseholdID == householdID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeRepository) BeginSpinTx(ctx context.Context, userID string) (repository.SpinTx, error) {
	f.mu.Lock()
	lock, ok := f.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		f.userLocks[userID] = lock
	}
	f.mu.Unlock()

	lock.Lock()
	return &fakeSpinTx{repo: f, lock: lock, deltas: make(map[string]int), avatars: make(map[string]string)}, nil
}

type fakeSpinTx struct {
	repo    *FakeRepository
	lock    *sync.Mutex
	done    bool
	records []domain.SpinRecord
	deltas  map[string]int
	avatars map[string]string
}

func (t *fakeSpinTx) CountSpinsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	n := t.repo.countLocked(userID, since)
	for _, r := range t.records {
		if r.UserID == userID && !r.SpunAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (t *fakeSpinTx) RecordSpin(ctx context.Context, record *domain.SpinRecord) error {
	t.records = append(t.records, *record)
	return nil
}

func (t *fakeSpinTx) ApplyPointsDelta(ctx context.Context, userID string, delta int) (int, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	p, ok := t.repo.profiles[userID]
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	t.deltas[userID] += delta
	return p.TotalPoints + t.deltas[userID], nil
}

func (t *fakeSpinTx) SetAvatar(ctx context.Context, userID, emoji string) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if _, ok := t.repo.profiles[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	t.avatars[userID] = emoji
	return nil
}

func (t *fakeSpinTx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.repo.mu.Lock()
	for _, r := range t.records {
		t.repo.nextID++
		r.ID = t.repo.nextID
		t.repo.spins = append(t.repo.spins, r)
	}
	for userID, d := range t.deltas {
		t.repo.profiles[userID].TotalPoints += d
	}
	for userID, e := range t.avatars {
		t.repo.profiles[userID].AvatarEmoji = e
	}
	t.repo.mu.Unlock()

	t.done = true
	t.lock.Unlock()
	return nil
}

func (t *fakeSpinTx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.done = true
	t.lock.Unlock()
	return nil
}

// stubRand replays fixed values and then repeats the last one
type stubRand struct {
	floats []float64
	ints   []int
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *stubRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	if v >= n {
		return n - 1
	}
	return v
}

type fakeEntitlement struct {
	err error
}

func (f *fakeEntitlement) Authorize(ctx context.Context, householdID string) error {
	return f.err
}
