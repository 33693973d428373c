package timetrack

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc             func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	GetByIDForUpdateFunc   func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	GetActiveFunc          func(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	GetActiveForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	CloseFunc              func(ctx context.Context, id uuid.UUID, end time.Time, hours float64, note string) (*domain.TimeEntry, error)
	UpdateFunc             func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	DeleteActiveFunc       func(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	ListFunc               func(ctx context.Context, f domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	ListNamedFunc          func(ctx context.Context, f domain.ReportFilter) ([]domain.NamedTimeEntry, error)
	ClientSummaryFunc      func(ctx context.Context, clientID uuid.UUID, month domain.Month) (*domain.ClientSummary, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetActiveForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Close []struct {
			Ctx   context.Context
			ID    uuid.UUID
			End   time.Time
			Hours float64
			Note  string
		}
		Update []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.TimeEntryFilter
		}
		ListNamed []struct {
			Ctx context.Context
			F   domain.ReportFilter
		}
		ClientSummary []struct {
			Ctx      context.Context
			ClientID uuid.UUID
			Month    domain.Month
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockGetByIDForUpdate   sync.RWMutex
	lockGetActive          sync.RWMutex
	lockGetActiveForUpdate sync.RWMutex
	lockClose              sync.RWMutex
	lockUpdate             sync.RWMutex
	lockDelete             sync.RWMutex
	lockDeleteActive       sync.RWMutex
	lockList               sync.RWMutex
	lockListNamed          sync.RWMutex
	lockClientSummary      sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("entryRepoMock.GetByIDForUpdateFunc: method is nil but entryRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetActiveFunc == nil {
		panic("entryRepoMock.GetActiveFunc: method is nil but entryRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *entryRepoMock) GetActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetActiveForUpdate(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetActiveForUpdateFunc == nil {
		panic("entryRepoMock.GetActiveForUpdateFunc: method is nil but entryRepo.GetActiveForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetActiveForUpdate.Lock()
	mock.calls.GetActiveForUpdate = append(mock.calls.GetActiveForUpdate, callInfo)
	mock.lockGetActiveForUpdate.Unlock()
	return mock.GetActiveForUpdateFunc(ctx, userID)
}

func (mock *entryRepoMock) GetActiveForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActiveForUpdate.RLock()
	calls := mock.calls.GetActiveForUpdate
	mock.lockGetActiveForUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Close(ctx context.Context, id uuid.UUID, end time.Time, hours float64, note string) (*domain.TimeEntry, error) {
	if mock.CloseFunc == nil {
		panic("entryRepoMock.CloseFunc: method is nil but entryRepo.Close was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		End   time.Time
		Hours float64
		Note  string
	}{
		Ctx:   ctx,
		ID:    id,
		End:   end,
		Hours: hours,
		Note:  note,
	}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, callInfo)
	mock.lockClose.Unlock()
	return mock.CloseFunc(ctx, id, end, hours, note)
}

func (mock *entryRepoMock) CloseCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	End   time.Time
	Hours float64
	Note  string
} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) DeleteActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.DeleteActiveFunc == nil {
		panic("entryRepoMock.DeleteActiveFunc: method is nil but entryRepo.DeleteActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDeleteActive.Lock()
	mock.calls.DeleteActive = append(mock.calls.DeleteActive, callInfo)
	mock.lockDeleteActive.Unlock()
	return mock.DeleteActiveFunc(ctx, userID)
}

func (mock *entryRepoMock) DeleteActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteActive.RLock()
	calls := mock.calls.DeleteActive
	mock.lockDeleteActive.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, f domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TimeEntryFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.TimeEntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListNamed(ctx context.Context, f domain.ReportFilter) ([]domain.NamedTimeEntry, error) {
	if mock.ListNamedFunc == nil {
		panic("entryRepoMock.ListNamedFunc: method is nil but entryRepo.ListNamed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ReportFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListNamed.Lock()
	mock.calls.ListNamed = append(mock.calls.ListNamed, callInfo)
	mock.lockListNamed.Unlock()
	return mock.ListNamedFunc(ctx, f)
}

func (mock *entryRepoMock) ListNamedCalls() []struct {
	Ctx context.Context
	F   domain.ReportFilter
} {
	mock.lockListNamed.RLock()
	calls := mock.calls.ListNamed
	mock.lockListNamed.RUnlock()
	return calls
}

func (mock *entryRepoMock) ClientSummary(ctx context.Context, clientID uuid.UUID, month domain.Month) (*domain.ClientSummary, error) {
	if mock.ClientSummaryFunc == nil {
		panic("entryRepoMock.ClientSummaryFunc: method is nil but entryRepo.ClientSummary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID uuid.UUID
		Month    domain.Month
	}{
		Ctx:      ctx,
		ClientID: clientID,
		Month:    month,
	}
	mock.lockClientSummary.Lock()
	mock.calls.ClientSummary = append(mock.calls.ClientSummary, callInfo)
	mock.lockClientSummary.Unlock()
	return mock.ClientSummaryFunc(ctx, clientID, month)
}

func (mock *entryRepoMock) ClientSummaryCalls() []struct {
	Ctx      context.Context
	ClientID uuid.UUID
	Month    domain.Month
} {
	mock.lockClientSummary.RLock()
	calls := mock.calls.ClientSummary
	mock.lockClientSummary.RUnlock()
	return calls
}
