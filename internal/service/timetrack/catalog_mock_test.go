package timetrack

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var _ catalog = &catalogMock{}

type catalogMock struct {
	TaskExistsFunc func(ctx context.Context, ref domain.TaskRef) (bool, error)
	UserExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		TaskExists []struct {
			Ctx context.Context
			Ref domain.TaskRef
		}
		UserExists []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockTaskExists sync.RWMutex
	lockUserExists sync.RWMutex
}

func (mock *catalogMock) TaskExists(ctx context.Context, ref domain.TaskRef) (bool, error) {
	if mock.TaskExistsFunc == nil {
		panic("catalogMock.TaskExistsFunc: method is nil but catalog.TaskExists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.TaskRef
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockTaskExists.Lock()
	mock.calls.TaskExists = append(mock.calls.TaskExists, callInfo)
	mock.lockTaskExists.Unlock()
	return mock.TaskExistsFunc(ctx, ref)
}

func (mock *catalogMock) TaskExistsCalls() []struct {
	Ctx context.Context
	Ref domain.TaskRef
} {
	mock.lockTaskExists.RLock()
	calls := mock.calls.TaskExists
	mock.lockTaskExists.RUnlock()
	return calls
}

func (mock *catalogMock) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.UserExistsFunc == nil {
		panic("catalogMock.UserExistsFunc: method is nil but catalog.UserExists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockUserExists.Lock()
	mock.calls.UserExists = append(mock.calls.UserExists, callInfo)
	mock.lockUserExists.Unlock()
	return mock.UserExistsFunc(ctx, id)
}

func (mock *catalogMock) UserExistsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockUserExists.RLock()
	calls := mock.calls.UserExists
	mock.lockUserExists.RUnlock()
	return calls
}
