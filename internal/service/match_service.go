package service

import (
	"time"

	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
	"github.com/studylink/studylink-backend/internal/repository"
	"github.com/studylink/studylink-backend/pkg/logger"
)

// MatchService swipe and match business logic
type MatchService interface {
	ProcessSwipe(swiperID, swipedID int64, swipeType domain.SwipeType) (bool, error)
	GetUserMatches(userID int64) ([]*domain.MatchResponse, error)
	GetMatchByID(id int64) (*domain.Match, error)
}

type matchService struct {
	swipeRepo   repository.SwipeRepository
	matchRepo   repository.MatchRepository
	userRepo    repository.UserRepository
	chatService ChatService
}

// NewMatchService creates a new MatchService
func NewMatchService(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	chatService ChatService,
) MatchService {
	return &matchService{
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		userRepo:    userRepo,
		chatService: chatService,
	}
}

// ProcessSwipe records a swipe decision and reports whether it completed a
// mutual match. The swipe is persisted first; a DISLIKE never evaluates
// matching and never cancels an existing match.
func (s *matchService) ProcessSwipe(swiperID, swipedID int64, swipeType domain.SwipeType) (bool, error) {
	if swiperID == swipedID {
		return false, common.ErrSelfSwipe
	}
	if !swipeType.Valid() {
		return false, common.ErrInvalidInput
	}

	if err := s.requireUser(swiperID); err != nil {
		return false, err
	}
	if err := s.requireUser(swipedID); err != nil {
		return false, err
	}

	swipe := &domain.SwipeDecision{
		SwiperID:  swiperID,
		SwipedID:  swipedID,
		SwipeType: swipeType,
		CreatedAt: time.Now(),
	}
	if err := s.swipeRepo.Upsert(swipe); err != nil {
		return false, err
	}

	if swipeType != domain.SwipeLike {
		return false, nil
	}

	reverse, err := s.swipeRepo.FindByPair(swipedID, swiperID)
	if err != nil {
		return false, err
	}
	if reverse == nil || reverse.SwipeType != domain.SwipeLike {
		return false, nil
	}

	match, err := s.createOrPromoteMatch(swiperID, swipedID)
	if err != nil {
		return false, err
	}

	// Chat provisioning is best-effort after the match is durable. A failure
	// here must not roll back the match; the room is created lazily on the
	// next mutual like for the pair.
	if _, err := s.chatService.FindOrCreateChatRoom(swiperID, swipedID, match.ID); err != nil {
		logger.GetLogger().Warn().
			Err(err).
			Int64("match_id", match.ID).
			Msg("chat room provisioning failed after match")
	}

	return true, nil
}

// createOrPromoteMatch stores the mutual match under the canonical pair.
// Existing MATCHED rows are left untouched so repeated mutual likes stay
// idempotent.
func (s *matchService) createOrPromoteMatch(userAID, userBID int64) (*domain.Match, error) {
	low, high := domain.CanonicalPair(userAID, userBID)

	existing, err := s.matchRepo.FindByPair(low, high)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == domain.MatchMatched {
		return existing, nil
	}

	now := time.Now()
	match := &domain.Match{
		UserLowID:  low,
		UserHighID: high,
		Status:     domain.MatchMatched,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.matchRepo.CreateOrPromote(match); err != nil {
		return nil, err
	}

	// Re-fetch so the caller sees the authoritative row: on a concurrent
	// insert the upsert becomes an update and the returned id is not usable.
	stored, err := s.matchRepo.FindByPair(low, high)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return match, nil
	}

	logger.GetLogger().Info().
		Int64("user_low_id", low).
		Int64("user_high_id", high).
		Int64("match_id", stored.ID).
		Msg("mutual match established")

	return stored, nil
}

// GetUserMatches returns all MATCHED pairs the user belongs to
func (s *matchService) GetUserMatches(userID int64) ([]*domain.MatchResponse, error) {
	matches, err := s.matchRepo.FindMatchedByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MatchResponse, 0, len(matches))
	for _, m := range matches {
		responses = append(responses, m.ToResponse())
	}
	return responses, nil
}

// GetMatchByID finds a match by id
func (s *matchService) GetMatchByID(id int64) (*domain.Match, error) {
	match, err := s.matchRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, common.ErrMatchNotFound
	}
	return match, nil
}

func (s *matchService) requireUser(id int64) error {
	exists, err := s.userRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrUserNotFound
	}
	return nil
}
