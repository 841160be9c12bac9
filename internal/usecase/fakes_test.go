package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"yatri-auth/internal/data/entity"
	"yatri-auth/internal/data/repository"
	"yatri-auth/pkg/mailer"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store unavailable")

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, email string, at time.Time) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u.IsVerified = true
			u.UpdatedAt = at
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) delete(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Email == email {
			delete(r.users, id)
		}
	}
}

type fakeOTPRepo struct {
	mu        sync.Mutex
	otps      []*entity.OTP
	createErr error
}

func (r *fakeOTPRepo) Create(_ context.Context, otp *entity.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *otp
	r.otps = append(r.otps, &cp)
	return nil
}

func (r *fakeOTPRepo) Consume(_ context.Context, email, code string, now time.Time) (*entity.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.otps) - 1; i >= 0; i-- {
		o := r.otps[i]
		if o.Email == email && o.OTPCode == code && o.Consumable(now) {
			o.IsUsed = true
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOTPRepo) count(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.otps {
		if o.Email == email {
			n++
		}
	}
	return n
}

func (r *fakeOTPRepo) latest(email string) *entity.OTP {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.otps) - 1; i >= 0; i-- {
		if r.otps[i].Email == email {
			cp := *r.otps[i]
			return &cp
		}
	}
	return nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
