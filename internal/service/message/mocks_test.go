package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

var (
	_ messageRepo     = &messageRepoMock{}
	_ memberRepo      = &memberRepoMock{}
	_ mentionRecorder = &mentionRecorderMock{}
	_ txManager       = &txManagerMock{}
)

type messageRepoMock struct {
	CreateFunc      func(ctx context.Context, msg domain.Message) (domain.Message, error)
	CreateReplyFunc func(ctx context.Context, reply domain.Reply) (domain.Reply, error)
	GetByIDFunc     func(ctx context.Context, messageID uuid.UUID) (domain.Message, error)
	ListBySpaceFunc func(ctx context.Context, spaceID uuid.UUID, limit, offset int) ([]domain.Message, error)

	calls struct {
		Create []struct {
			Msg domain.Message
		}
		CreateReply []struct {
			Reply domain.Reply
		}
		GetByID []struct {
			MessageID uuid.UUID
		}
		ListBySpace []struct {
			SpaceID uuid.UUID
			Limit   int
			Offset  int
		}
	}
	lock sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Msg domain.Message
	}{Msg: msg})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, msg)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Msg domain.Message
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *messageRepoMock) CreateReply(ctx context.Context, reply domain.Reply) (domain.Reply, error) {
	if mock.CreateReplyFunc == nil {
		panic("messageRepoMock.CreateReplyFunc: method is nil but messageRepo.CreateReply was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateReply = append(mock.calls.CreateReply, struct {
		Reply domain.Reply
	}{Reply: reply})
	mock.lock.Unlock()
	return mock.CreateReplyFunc(ctx, reply)
}

func (mock *messageRepoMock) CreateReplyCalls() []struct {
	Reply domain.Reply
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateReply
}

func (mock *messageRepoMock) GetByID(ctx context.Context, messageID uuid.UUID) (domain.Message, error) {
	if mock.GetByIDFunc == nil {
		panic("messageRepoMock.GetByIDFunc: method is nil but messageRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		MessageID uuid.UUID
	}{MessageID: messageID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, messageID)
}

func (mock *messageRepoMock) GetByIDCalls() []struct {
	MessageID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *messageRepoMock) ListBySpace(ctx context.Context, spaceID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	if mock.ListBySpaceFunc == nil {
		panic("messageRepoMock.ListBySpaceFunc: method is nil but messageRepo.ListBySpace was just called")
	}
	mock.lock.Lock()
	mock.calls.ListBySpace = append(mock.calls.ListBySpace, struct {
		SpaceID uuid.UUID
		Limit   int
		Offset  int
	}{SpaceID: spaceID, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListBySpaceFunc(ctx, spaceID, limit, offset)
}

func (mock *messageRepoMock) ListBySpaceCalls() []struct {
	SpaceID uuid.UUID
	Limit   int
	Offset  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListBySpace
}

type memberRepoMock struct {
	FindByAccountFunc func(ctx context.Context, spaceID, accountID uuid.UUID) (domain.Member, error)

	calls struct {
		FindByAccount []struct {
			SpaceID   uuid.UUID
			AccountID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) FindByAccount(ctx context.Context, spaceID, accountID uuid.UUID) (domain.Member, error) {
	if mock.FindByAccountFunc == nil {
		panic("memberRepoMock.FindByAccountFunc: method is nil but memberRepo.FindByAccount was just called")
	}
	mock.lock.Lock()
	mock.calls.FindByAccount = append(mock.calls.FindByAccount, struct {
		SpaceID   uuid.UUID
		AccountID uuid.UUID
	}{SpaceID: spaceID, AccountID: accountID})
	mock.lock.Unlock()
	return mock.FindByAccountFunc(ctx, spaceID, accountID)
}

func (mock *memberRepoMock) FindByAccountCalls() []struct {
	SpaceID   uuid.UUID
	AccountID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindByAccount
}

type mentionRecorderMock struct {
	RecordFromMessageFunc func(ctx context.Context, msg domain.Message) ([]uuid.UUID, error)
	RecordFromReplyFunc   func(ctx context.Context, spaceID uuid.UUID, reply domain.Reply) ([]uuid.UUID, error)

	calls struct {
		RecordFromMessage []struct {
			Msg domain.Message
		}
		RecordFromReply []struct {
			SpaceID uuid.UUID
			Reply   domain.Reply
		}
	}
	lock sync.RWMutex
}

func (mock *mentionRecorderMock) RecordFromMessage(ctx context.Context, msg domain.Message) ([]uuid.UUID, error) {
	if mock.RecordFromMessageFunc == nil {
		panic("mentionRecorderMock.RecordFromMessageFunc: method is nil but mentionRecorder.RecordFromMessage was just called")
	}
	mock.lock.Lock()
	mock.calls.RecordFromMessage = append(mock.calls.RecordFromMessage, struct {
		Msg domain.Message
	}{Msg: msg})
	mock.lock.Unlock()
	return mock.RecordFromMessageFunc(ctx, msg)
}

func (mock *mentionRecorderMock) RecordFromMessageCalls() []struct {
	Msg domain.Message
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecordFromMessage
}

func (mock *mentionRecorderMock) RecordFromReply(ctx context.Context, spaceID uuid.UUID, reply domain.Reply) ([]uuid.UUID, error) {
	if mock.RecordFromReplyFunc == nil {
		panic("mentionRecorderMock.RecordFromReplyFunc: method is nil but mentionRecorder.RecordFromReply was just called")
	}
	mock.lock.Lock()
	mock.calls.RecordFromReply = append(mock.calls.RecordFromReply, struct {
		SpaceID uuid.UUID
		Reply   domain.Reply
	}{SpaceID: spaceID, Reply: reply})
	mock.lock.Unlock()
	return mock.RecordFromReplyFunc(ctx, spaceID, reply)
}

func (mock *mentionRecorderMock) RecordFromReplyCalls() []struct {
	SpaceID uuid.UUID
	Reply   domain.Reply
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecordFromReply
}

// txManagerMock runs the callback directly unless RunInTxFunc is set.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
