package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "bytebonds-backend/internal/domain/bond"
	"bytebonds-backend/internal/domain/event"
	"bytebonds-backend/internal/testutil/bondmock"
	uc "bytebonds-backend/internal/usecase/bond"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// -------- helpers --------

type dropSink struct{}

func (dropSink) Publish(context.Context, event.Event) {}

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newBondRequest(body *bytes.Reader, caller string) *stdhttp.Request {
	req := httptest.NewRequest(stdhttp.MethodPost, "/bonds", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if caller != "" {
		req.Header.Set("Ax-Caller-Id", caller)
	}
	return req
}

var testCaller = strings.Repeat("f", 32)

// -------- tests --------

func TestCreateBond_Success(t *testing.T) {
	e := newEchoWithValidator()

	repo := &bondmock.Repo{
		CreateFn: func(ctx context.Context, b *domain.Bond) error { return nil },
	}
	h := NewBondHandler(uc.NewUsecase(repo, dropSink{}))

	reqBody := map[string]any{
		"bond_seed":      7,
		"amount":         5000,
		"duration":       12,
		"interest_rate":  10,
		"income_proof":   "retainer contract",
		"description":    "bridge until the invoice clears",
		"repayment_type": "lump_sum",
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(newBondRequest(mustJSON(reqBody), testCaller), rec)

	if err := h.CreateBond(c); err != nil {
		t.Fatalf("CreateBond error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var got uc.BondDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Freelancer != testCaller || got.Amount != 5000 {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.Status != string(domain.StatusOpen) {
		t.Fatalf("status = %s, want open", got.Status)
	}
}

func TestCreateBond_MissingCaller(t *testing.T) {
	e := newEchoWithValidator()
	h := NewBondHandler(uc.NewUsecase(&bondmock.Repo{}, dropSink{}))

	rec := httptest.NewRecorder()
	c := e.NewContext(newBondRequest(mustJSON(map[string]any{"amount": 1}), ""), rec)

	if err := h.CreateBond(c); err != nil {
		t.Fatalf("CreateBond error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBond_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewBondHandler(uc.NewUsecase(&bondmock.Repo{}, dropSink{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/bonds", strings.NewReader(`{"amount":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-Caller-Id", testCaller)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateBond(c); err != nil {
		t.Fatalf("CreateBond error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBond_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewBondHandler(uc.NewUsecase(&bondmock.Repo{}, dropSink{}))

	reqBody := map[string]any{
		"amount":         5000,
		"duration":       99, // above the cap
		"interest_rate":  10,
		"repayment_type": "lump_sum",
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(newBondRequest(mustJSON(reqBody), testCaller), rec)

	if err := h.CreateBond(c); err != nil {
		t.Fatalf("CreateBond error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(er.Details) == 0 {
		t.Fatalf("expected field errors, got %+v", er)
	}
}

func TestCreateBond_DuplicateSeed(t *testing.T) {
	e := newEchoWithValidator()
	repo := &bondmock.Repo{
		CreateFn: func(ctx context.Context, b *domain.Bond) error {
			return domain.ErrAlreadyExists
		},
	}
	h := NewBondHandler(uc.NewUsecase(repo, dropSink{}))

	reqBody := map[string]any{
		"bond_seed":      7,
		"amount":         5000,
		"duration":       12,
		"interest_rate":  10,
		"repayment_type": "lump_sum",
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(newBondRequest(mustJSON(reqBody), testCaller), rec)

	if err := h.CreateBond(c); err != nil {
		t.Fatalf("CreateBond error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestGetBond_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &bondmock.Repo{
		GetByBondIDFn: func(ctx context.Context, bondID string) (*domain.Bond, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewBondHandler(uc.NewUsecase(repo, dropSink{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/bonds/unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("bond_id")
	c.SetParamValues("unknown")

	if err := h.GetBond(c); err != nil {
		t.Fatalf("GetBond error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListOpenBonds(t *testing.T) {
	e := newEchoWithValidator()
	repo := &bondmock.Repo{
		ListByStatusFn: func(ctx context.Context, s domain.Status) ([]domain.Bond, error) {
			return []domain.Bond{{BondID: "a", Status: domain.StatusOpen}}, nil
		},
	}
	h := NewBondHandler(uc.NewUsecase(repo, dropSink{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/bonds", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListOpenBonds(c); err != nil {
		t.Fatalf("ListOpenBonds error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []uc.BondDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 1 || got[0].BondID != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
