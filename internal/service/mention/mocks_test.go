package mention

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/spacetalk-backend/internal/domain"
)

var (
	_ mentionRepo        = &mentionRepoMock{}
	_ memberRepo         = &memberRepoMock{}
	_ messageRepo        = &messageRepoMock{}
	_ dismissalPublisher = &dismissalPublisherMock{}
)

type mentionRepoMock struct {
	InsertBatchFunc                     func(ctx context.Context, mentions []domain.Mention) (int, error)
	ListActiveByMemberFunc              func(ctx context.Context, mentionedID uuid.UUID) ([]domain.Mention, error)
	GroupActiveFunc                     func(ctx context.Context, scope domain.MentionScope) ([]domain.MentionGroup, error)
	GroupActiveForAccountByMessagesFunc func(ctx context.Context, accountID uuid.UUID, messageIDs []uuid.UUID) ([]domain.MentionGroup, error)
	DismissAllFunc                      func(ctx context.Context, mentionedID, messageID uuid.UUID, at time.Time) (int, error)

	calls struct {
		InsertBatch []struct {
			Mentions []domain.Mention
		}
		ListActiveByMember []struct {
			MentionedID uuid.UUID
		}
		GroupActive []struct {
			Scope domain.MentionScope
		}
		GroupActiveForAccountByMessages []struct {
			AccountID  uuid.UUID
			MessageIDs []uuid.UUID
		}
		DismissAll []struct {
			MentionedID uuid.UUID
			MessageID   uuid.UUID
			At          time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *mentionRepoMock) InsertBatch(ctx context.Context, mentions []domain.Mention) (int, error) {
	if mock.InsertBatchFunc == nil {
		panic("mentionRepoMock.InsertBatchFunc: method is nil but mentionRepo.InsertBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, struct {
		Mentions []domain.Mention
	}{Mentions: mentions})
	mock.lock.Unlock()
	return mock.InsertBatchFunc(ctx, mentions)
}

func (mock *mentionRepoMock) InsertBatchCalls() []struct {
	Mentions []domain.Mention
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.InsertBatch
}

func (mock *mentionRepoMock) ListActiveByMember(ctx context.Context, mentionedID uuid.UUID) ([]domain.Mention, error) {
	if mock.ListActiveByMemberFunc == nil {
		panic("mentionRepoMock.ListActiveByMemberFunc: method is nil but mentionRepo.ListActiveByMember was just called")
	}
	mock.lock.Lock()
	mock.calls.ListActiveByMember = append(mock.calls.ListActiveByMember, struct {
		MentionedID uuid.UUID
	}{MentionedID: mentionedID})
	mock.lock.Unlock()
	return mock.ListActiveByMemberFunc(ctx, mentionedID)
}

func (mock *mentionRepoMock) ListActiveByMemberCalls() []struct {
	MentionedID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListActiveByMember
}

func (mock *mentionRepoMock) GroupActive(ctx context.Context, scope domain.MentionScope) ([]domain.MentionGroup, error) {
	if mock.GroupActiveFunc == nil {
		panic("mentionRepoMock.GroupActiveFunc: method is nil but mentionRepo.GroupActive was just called")
	}
	mock.lock.Lock()
	mock.calls.GroupActive = append(mock.calls.GroupActive, struct {
		Scope domain.MentionScope
	}{Scope: scope})
	mock.lock.Unlock()
	return mock.GroupActiveFunc(ctx, scope)
}

func (mock *mentionRepoMock) GroupActiveCalls() []struct {
	Scope domain.MentionScope
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GroupActive
}

func (mock *mentionRepoMock) GroupActiveForAccountByMessages(ctx context.Context, accountID uuid.UUID, messageIDs []uuid.UUID) ([]domain.MentionGroup, error) {
	if mock.GroupActiveForAccountByMessagesFunc == nil {
		panic("mentionRepoMock.GroupActiveForAccountByMessagesFunc: method is nil but mentionRepo.GroupActiveForAccountByMessages was just called")
	}
	mock.lock.Lock()
	mock.calls.GroupActiveForAccountByMessages = append(mock.calls.GroupActiveForAccountByMessages, struct {
		AccountID  uuid.UUID
		MessageIDs []uuid.UUID
	}{AccountID: accountID, MessageIDs: messageIDs})
	mock.lock.Unlock()
	return mock.GroupActiveForAccountByMessagesFunc(ctx, accountID, messageIDs)
}

func (mock *mentionRepoMock) GroupActiveForAccountByMessagesCalls() []struct {
	AccountID  uuid.UUID
	MessageIDs []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GroupActiveForAccountByMessages
}

func (mock *mentionRepoMock) DismissAll(ctx context.Context, mentionedID, messageID uuid.UUID, at time.Time) (int, error) {
	if mock.DismissAllFunc == nil {
		panic("mentionRepoMock.DismissAllFunc: method is nil but mentionRepo.DismissAll was just called")
	}
	mock.lock.Lock()
	mock.calls.DismissAll = append(mock.calls.DismissAll, struct {
		MentionedID uuid.UUID
		MessageID   uuid.UUID
		At          time.Time
	}{MentionedID: mentionedID, MessageID: messageID, At: at})
	mock.lock.Unlock()
	return mock.DismissAllFunc(ctx, mentionedID, messageID, at)
}

func (mock *mentionRepoMock) DismissAllCalls() []struct {
	MentionedID uuid.UUID
	MessageID   uuid.UUID
	At          time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DismissAll
}

type memberRepoMock struct {
	FindByHandlesFunc func(ctx context.Context, spaceID uuid.UUID, handles []string) ([]domain.Member, error)
	FindByAccountFunc func(ctx context.Context, spaceID, accountID uuid.UUID) (domain.Member, error)

	calls struct {
		FindByHandles []struct {
			SpaceID uuid.UUID
			Handles []string
		}
		FindByAccount []struct {
			SpaceID   uuid.UUID
			AccountID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) FindByHandles(ctx context.Context, spaceID uuid.UUID, handles []string) ([]domain.Member, error) {
	if mock.FindByHandlesFunc == nil {
		panic("memberRepoMock.FindByHandlesFunc: method is nil but memberRepo.FindByHandles was just called")
	}
	mock.lock.Lock()
	mock.calls.FindByHandles = append(mock.calls.FindByHandles, struct {
		SpaceID uuid.UUID
		Handles []string
	}{SpaceID: spaceID, Handles: handles})
	mock.lock.Unlock()
	return mock.FindByHandlesFunc(ctx, spaceID, handles)
}

func (mock *memberRepoMock) FindByHandlesCalls() []struct {
	SpaceID uuid.UUID
	Handles []string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindByHandles
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

type messageRepoMock struct {
	GetByIDFunc func(ctx context.Context, messageID uuid.UUID) (domain.Message, error)

	calls struct {
		GetByID []struct {
			MessageID uuid.UUID
		}
	}
	lock sync.RWMutex
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

type dismissalPublisherMock struct {
	PublishMentionsDismissedFunc func(ctx context.Context, spaceID uuid.UUID, event domain.MentionsDismissed) error

	calls struct {
		PublishMentionsDismissed []struct {
			SpaceID uuid.UUID
			Event   domain.MentionsDismissed
		}
	}
	lock sync.RWMutex
}

func (mock *dismissalPublisherMock) PublishMentionsDismissed(ctx context.Context, spaceID uuid.UUID, event domain.MentionsDismissed) error {
	if mock.PublishMentionsDismissedFunc == nil {
		panic("dismissalPublisherMock.PublishMentionsDismissedFunc: method is nil but dismissalPublisher.PublishMentionsDismissed was just called")
	}
	mock.lock.Lock()
	mock.calls.PublishMentionsDismissed = append(mock.calls.PublishMentionsDismissed, struct {
		SpaceID uuid.UUID
		Event   domain.MentionsDismissed
	}{SpaceID: spaceID, Event: event})
	mock.lock.Unlock()
	return mock.PublishMentionsDismissedFunc(ctx, spaceID, event)
}

func (mock *dismissalPublisherMock) PublishMentionsDismissedCalls() []struct {
	SpaceID uuid.UUID
	Event   domain.MentionsDismissed
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.PublishMentionsDismissed
}
