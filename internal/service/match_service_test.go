package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
)

// --- Mock SwipeRepository ---

type mockSwipeRepo struct {
	mock.Mock
}

func (m *mockSwipeRepo) Upsert(swipe *domain.SwipeDecision) error {
	return m.Called(swipe).Error(0)
}

func (m *mockSwipeRepo) FindByPair(swiperID, swipedID int64) (*domain.SwipeDecision, error) {
	args := m.Called(swiperID, swipedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SwipeDecision), args.Error(1)
}

// --- Mock MatchRepository ---

type mockMatchRepo struct {
	mock.Mock
}

func (m *mockMatchRepo) CreateOrPromote(match *domain.Match) error {
	return m.Called(match).Error(0)
}

func (m *mockMatchRepo) FindByPair(userLowID, userHighID int64) (*domain.Match, error) {
	args := m.Called(userLowID, userHighID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchRepo) FindByID(id int64) (*domain.Match, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockMatchRepo) FindMatchedByUser(userID int64) ([]*domain.Match, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) FindByID(id int64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByID(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// --- Mock ChatService ---

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) FindOrCreateChatRoom(user1ID, user2ID, matchID int64) (*domain.ChatRoom, error) {
	args := m.Called(user1ID, user2ID, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatRoom), args.Error(1)
}

func (m *mockChatService) GetUserChatRooms(userID int64) ([]*domain.ChatRoomResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatRoomResponse), args.Error(1)
}

func (m *mockChatService) SendMessage(chatRoomID, senderID int64, content string) (*domain.MessageResponse, error) {
	args := m.Called(chatRoomID, senderID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *mockChatService) GetMessages(chatRoomID, requesterID int64) ([]*domain.MessageResponse, error) {
	args := m.Called(chatRoomID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessageResponse), args.Error(1)
}

func newMatchServiceForTest() (MatchService, *mockSwipeRepo, *mockMatchRepo, *mockUserRepo, *mockChatService) {
	swipeRepo := new(mockSwipeRepo)
	matchRepo := new(mockMatchRepo)
	userRepo := new(mockUserRepo)
	chatSvc := new(mockChatService)
	svc := NewMatchService(swipeRepo, matchRepo, userRepo, chatSvc)
	return svc, swipeRepo, matchRepo, userRepo, chatSvc
}

func TestProcessSwipe_RejectsSelfSwipe(t *testing.T) {
	svc, swipeRepo, _, _, _ := newMatchServiceForTest()

	isMatch, err := svc.ProcessSwipe(1, 1, domain.SwipeLike)

	assert.ErrorIs(t, err, common.ErrSelfSwipe)
	assert.False(t, isMatch)
	swipeRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestProcessSwipe_RejectsUnknownSwipeType(t *testing.T) {
	svc, swipeRepo, _, _, _ := newMatchServiceForTest()

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeType("MAYBE"))

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.False(t, isMatch)
	swipeRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestProcessSwipe_SwiperNotFound(t *testing.T) {
	svc, swipeRepo, _, userRepo, _ := newMatchServiceForTest()

	userRepo.On("ExistsByID", int64(1)).Return(false, nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.ErrorIs(t, err, common.ErrUserNotFound)
	assert.False(t, isMatch)
	swipeRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestProcessSwipe_SwipedUserNotFound(t *testing.T) {
	svc, swipeRepo, _, userRepo, _ := newMatchServiceForTest()

	userRepo.On("ExistsByID", int64(1)).Return(true, nil)
	userRepo.On("ExistsByID", int64(2)).Return(false, nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.ErrorIs(t, err, common.ErrUserNotFound)
	assert.False(t, isMatch)
	swipeRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestProcessSwipe_LikeWithoutReverseIsNotAMatch(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, chatSvc := newMatchServiceForTest()

	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)
	swipeRepo.On("FindByPair", int64(2), int64(1)).Return(nil, nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.NoError(t, err)
	assert.False(t, isMatch)
	matchRepo.AssertNotCalled(t, "CreateOrPromote", mock.Anything)
	chatSvc.AssertNotCalled(t, "FindOrCreateChatRoom", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessSwipe_DislikeShortCircuits(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, _ := newMatchServiceForTest()

	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeDislike)

	assert.NoError(t, err)
	assert.False(t, isMatch)
	// The dislike is still recorded, but matching is never evaluated.
	swipeRepo.AssertCalled(t, "Upsert", mock.Anything)
	swipeRepo.AssertNotCalled(t, "FindByPair", mock.Anything, mock.Anything)
	matchRepo.AssertNotCalled(t, "CreateOrPromote", mock.Anything)
}

func TestProcessSwipe_ReverseDislikeIsNotAMatch(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, _ := newMatchServiceForTest()

	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)
	swipeRepo.On("FindByPair", int64(2), int64(1)).Return(&domain.SwipeDecision{
		SwiperID: 2, SwipedID: 1, SwipeType: domain.SwipeDislike,
	}, nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.NoError(t, err)
	assert.False(t, isMatch)
	matchRepo.AssertNotCalled(t, "CreateOrPromote", mock.Anything)
}

func TestProcessSwipe_MutualLikeCreatesCanonicalMatch(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, chatSvc := newMatchServiceForTest()

	// Swiper id 42 likes user 7: the stored pair must be (7, 42).
	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)
	swipeRepo.On("FindByPair", int64(7), int64(42)).Return(&domain.SwipeDecision{
		SwiperID: 7, SwipedID: 42, SwipeType: domain.SwipeLike,
	}, nil)

	stored := &domain.Match{ID: 99, UserLowID: 7, UserHighID: 42, Status: domain.MatchMatched}
	matchRepo.On("FindByPair", int64(7), int64(42)).Return(nil, nil).Once()
	matchRepo.On("CreateOrPromote", mock.MatchedBy(func(m *domain.Match) bool {
		return m.UserLowID == 7 && m.UserHighID == 42 && m.Status == domain.MatchMatched
	})).Return(nil)
	matchRepo.On("FindByPair", int64(7), int64(42)).Return(stored, nil).Once()

	chatSvc.On("FindOrCreateChatRoom", int64(42), int64(7), int64(99)).
		Return(&domain.ChatRoom{ID: 5, User1ID: 42, User2ID: 7, MatchID: 99}, nil)

	isMatch, err := svc.ProcessSwipe(42, 7, domain.SwipeLike)

	assert.NoError(t, err)
	assert.True(t, isMatch)
	matchRepo.AssertExpectations(t)
	chatSvc.AssertExpectations(t)
}

func TestProcessSwipe_RepeatedMutualLikeIsIdempotent(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, chatSvc := newMatchServiceForTest()

	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)
	swipeRepo.On("FindByPair", int64(2), int64(1)).Return(&domain.SwipeDecision{
		SwiperID: 2, SwipedID: 1, SwipeType: domain.SwipeLike,
	}, nil)

	existing := &domain.Match{ID: 10, UserLowID: 1, UserHighID: 2, Status: domain.MatchMatched}
	matchRepo.On("FindByPair", int64(1), int64(2)).Return(existing, nil)
	chatSvc.On("FindOrCreateChatRoom", int64(1), int64(2), int64(10)).
		Return(&domain.ChatRoom{ID: 3, MatchID: 10}, nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.NoError(t, err)
	assert.True(t, isMatch)
	// The MATCHED row is left untouched.
	matchRepo.AssertNotCalled(t, "CreateOrPromote", mock.Anything)
	// The room lookup still runs so a missing room is provisioned lazily.
	chatSvc.AssertExpectations(t)
}

func TestProcessSwipe_PromotesNonMatchedRow(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, chatSvc := newMatchServiceForTest()

	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)
	swipeRepo.On("FindByPair", int64(2), int64(1)).Return(&domain.SwipeDecision{
		SwiperID: 2, SwipedID: 1, SwipeType: domain.SwipeLike,
	}, nil)

	pending := &domain.Match{ID: 10, UserLowID: 1, UserHighID: 2, Status: domain.MatchPending}
	promoted := &domain.Match{ID: 10, UserLowID: 1, UserHighID: 2, Status: domain.MatchMatched}
	matchRepo.On("FindByPair", int64(1), int64(2)).Return(pending, nil).Once()
	matchRepo.On("CreateOrPromote", mock.MatchedBy(func(m *domain.Match) bool {
		return m.Status == domain.MatchMatched
	})).Return(nil)
	matchRepo.On("FindByPair", int64(1), int64(2)).Return(promoted, nil).Once()
	chatSvc.On("FindOrCreateChatRoom", int64(1), int64(2), int64(10)).
		Return(&domain.ChatRoom{ID: 3, MatchID: 10}, nil)

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.NoError(t, err)
	assert.True(t, isMatch)
	matchRepo.AssertExpectations(t)
}

func TestProcessSwipe_ChatProvisioningFailureDoesNotFailMatch(t *testing.T) {
	svc, swipeRepo, matchRepo, userRepo, chatSvc := newMatchServiceForTest()

	userRepo.On("ExistsByID", mock.Anything).Return(true, nil)
	swipeRepo.On("Upsert", mock.Anything).Return(nil)
	swipeRepo.On("FindByPair", int64(2), int64(1)).Return(&domain.SwipeDecision{
		SwiperID: 2, SwipedID: 1, SwipeType: domain.SwipeLike,
	}, nil)

	existing := &domain.Match{ID: 10, UserLowID: 1, UserHighID: 2, Status: domain.MatchMatched}
	matchRepo.On("FindByPair", int64(1), int64(2)).Return(existing, nil)
	chatSvc.On("FindOrCreateChatRoom", int64(1), int64(2), int64(10)).
		Return(nil, errors.New("room table unavailable"))

	isMatch, err := svc.ProcessSwipe(1, 2, domain.SwipeLike)

	assert.NoError(t, err)
	assert.True(t, isMatch)
}

func TestGetUserMatches(t *testing.T) {
	svc, _, matchRepo, _, _ := newMatchServiceForTest()

	matchRepo.On("FindMatchedByUser", int64(1)).Return([]*domain.Match{
		{ID: 10, UserLowID: 1, UserHighID: 2, Status: domain.MatchMatched},
		{ID: 11, UserLowID: 1, UserHighID: 5, Status: domain.MatchMatched},
	}, nil)

	matches, err := svc.GetUserMatches(1)

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "MATCHED", matches[0].Status)
}

func TestCanonicalPair(t *testing.T) {
	low, high := domain.CanonicalPair(9, 3)
	assert.Equal(t, int64(3), low)
	assert.Equal(t, int64(9), high)

	low, high = domain.CanonicalPair(3, 9)
	assert.Equal(t, int64(3), low)
	assert.Equal(t, int64(9), high)
}
