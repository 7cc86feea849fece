package orchestrators

import (
	"context"
	"testing"
	"time"

	"fitlab/internal/adapters/backend"
	"fitlab/internal/application/events"
	domain "fitlab/internal/domain/checkin"
)

type mockCheckInStore struct {
	createCalls int
	createErr   error
}

func (m *mockCheckInStore) List(ctx context.Context) ([]domain.CheckIn, error) { return nil, nil }

func (m *mockCheckInStore) GetByID(ctx context.Context, id int64) (domain.CheckIn, error) {
	return domain.CheckIn{}, &backend.APIError{Status: 404}
}

func (m *mockCheckInStore) Create(ctx context.Context, assinaturaID int64) error {
	m.createCalls++
	return m.createErr
}

func (m *mockCheckInStore) Delete(ctx context.Context, id int64) error { return nil }

func TestExecuteRegisterCheckIn_MissingSubscriptionBlocksBackend(t *testing.T) {
	store := &mockCheckInStore{}
	bus := events.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	fieldErrs, err := ExecuteRegisterCheckIn(context.Background(), RegisterCheckInInput{}, RegisterCheckInDeps{CheckInStore: store, Bus: bus})
	if err != nil {
		t.Fatalf("ExecuteRegisterCheckIn: %v", err)
	}
	if fieldErrs["assinatura_id"] == "" {
		t.Errorf("fieldErrs = %v", fieldErrs)
	}
	if store.createCalls != 0 {
		t.Errorf("backend was called %d times on invalid input", store.createCalls)
	}
	select {
	case ev := <-ch:
		t.Errorf("unexpected event %+v", ev)
	default:
	}
}

func TestExecuteRegisterCheckIn_PublishesAfterSuccess(t *testing.T) {
	store := &mockCheckInStore{}
	bus := events.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	fieldErrs, err := ExecuteRegisterCheckIn(context.Background(), RegisterCheckInInput{AssinaturaID: 42}, RegisterCheckInDeps{CheckInStore: store, Bus: bus})
	if err != nil {
		t.Fatalf("ExecuteRegisterCheckIn: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("fieldErrs = %v", fieldErrs)
	}

	select {
	case ev := <-ch:
		if ev.AssinaturaID != 42 {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestExecuteRegisterCheckIn_BackendMessageBecomesFieldError(t *testing.T) {
	store := &mockCheckInStore{createErr: &backend.APIError{
		Status:  400,
		Message: "assinatura_id inválido ou vencido",
	}}
	bus := events.NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	fieldErrs, err := ExecuteRegisterCheckIn(context.Background(), RegisterCheckInInput{AssinaturaID: 7}, RegisterCheckInDeps{CheckInStore: store, Bus: bus})
	if err != nil {
		t.Fatalf("ExecuteRegisterCheckIn: %v", err)
	}
	if fieldErrs["assinatura_id"] != "assinatura_id inválido ou vencido" {
		t.Errorf("fieldErrs = %v", fieldErrs)
	}
	select {
	case ev := <-ch:
		t.Errorf("event published despite rejection: %+v", ev)
	default:
	}
}
