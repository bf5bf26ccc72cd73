package bond

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	domain "bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/event"
	"bytebonds-backend/internal/testutil/bondmock"
	"bytebonds-backend/pkg/id"
)

// captureSink records published events for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *captureSink) Publish(_ context.Context, e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *captureSink) kinds() []event.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.Kind, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Kind)
	}
	return out
}

const freelancer = "ffffffffffffffffffffffffffffffff"

func validInput() CreateBondInput {
	return CreateBondInput{
		Freelancer:    freelancer,
		BondSeed:      42,
		Amount:        5000,
		Duration:      12,
		InterestRate:  10,
		IncomeProof:   "contract with acme corp",
		Description:   "bridge funding until invoice clears",
		RepaymentType: domain.RepaymentLumpSum,
	}
}

func TestCreate_Success(t *testing.T) {
	var created *domain.Bond
	sink := &captureSink{}
	uc := NewUsecase(&bondmock.Repo{
		CreateFn: func(ctx context.Context, b *domain.Bond) error {
			created = b
			return nil
		},
	}, sink)

	dto, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	if created == nil {
		t.Fatalf("repo.Create never called")
	}
	if created.Status != domain.StatusOpen || created.Funded != 0 || created.Installments != 0 {
		t.Fatalf("bad initial state: %+v", created)
	}
	if want := id.DeriveBondID(freelancer, 42); dto.BondID != want {
		t.Fatalf("bond id not derived from (owner, seed): got %q want %q", dto.BondID, want)
	}
	if len(sink.kinds()) != 1 || sink.kinds()[0] != event.KindBondCreated {
		t.Fatalf("expected one bond_created event, got %v", sink.kinds())
	}
}

func TestCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateBondInput)
		wantErr error
	}{
		{"bad freelancer", func(in *CreateBondInput) { in.Freelancer = "short" }, domain.ErrInvalidFreelancer},
		{"zero amount", func(in *CreateBondInput) { in.Amount = 0 }, domain.ErrInvalidAmount},
		{"duration too long", func(in *CreateBondInput) { in.Duration = 61 }, domain.ErrInvalidDuration},
		{"rate too high", func(in *CreateBondInput) { in.InterestRate = 51 }, domain.ErrInvalidInterestRate},
		{"income proof too long", func(in *CreateBondInput) { in.IncomeProof = strings.Repeat("x", 201) }, domain.ErrStringTooLong},
		{"description too long", func(in *CreateBondInput) { in.Description = strings.Repeat("x", 501) }, domain.ErrStringTooLong},
		{"bad repayment type", func(in *CreateBondInput) { in.RepaymentType = "quarterly" }, domain.ErrInvalidRepaymentType},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sink := &captureSink{}
			uc := NewUsecase(&bondmock.Repo{
				CreateFn: func(ctx context.Context, b *domain.Bond) error {
					t.Fatalf("Create must not reach the repo on invalid input")
					return nil
				},
			}, sink)

			in := validInput()
			tc.mutate(&in)
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if len(sink.kinds()) != 0 {
				t.Fatalf("no event expected on failure, got %v", sink.kinds())
			}
		})
	}
}

func TestCreate_DuplicateSeed(t *testing.T) {
	uc := NewUsecase(&bondmock.Repo{
		CreateFn: func(ctx context.Context, b *domain.Bond) error {
			return domain.ErrAlreadyExists
		},
	}, &captureSink{})

	if _, err := uc.Create(context.Background(), validInput()); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestGet_MapsBond(t *testing.T) {
	uc := NewUsecase(&bondmock.Repo{
		GetByBondIDFn: func(ctx context.Context, bondID string) (*domain.Bond, error) {
			return &domain.Bond{BondID: bondID, Freelancer: freelancer, Amount: 100, Status: domain.StatusFunded}, nil
		},
	}, &captureSink{})

	dto, err := uc.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.BondID != "abc" || dto.Status != string(domain.StatusFunded) {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestListByFreelancer_RejectsBadID(t *testing.T) {
	uc := NewUsecase(&bondmock.Repo{}, &captureSink{})
	if _, err := uc.ListByFreelancer(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidFreelancer) {
		t.Fatalf("err = %v, want ErrInvalidFreelancer", err)
	}
}

func TestListOpen(t *testing.T) {
	uc := NewUsecase(&bondmock.Repo{
		ListByStatusFn: func(ctx context.Context, s domain.Status) ([]domain.Bond, error) {
			if s != domain.StatusOpen {
				t.Fatalf("expected open filter, got %s", s)
			}
			return []domain.Bond{{BondID: "a"}, {BondID: "b"}}, nil
		},
	}, &captureSink{})

	dtos, err := uc.ListOpen(context.Background())
	if err != nil {
		t.Fatalf("ListOpen err: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 bonds, got %d", len(dtos))
	}
}
