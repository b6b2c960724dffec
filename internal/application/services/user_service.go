package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fyzanshaik/timer-game/internal/application/command"
	"github.com/fyzanshaik/timer-game/internal/application/common"
	"github.com/fyzanshaik/timer-game/internal/application/interfaces"
	"github.com/fyzanshaik/timer-game/internal/application/mapper"
	"github.com/fyzanshaik/timer-game/internal/domain/entities"
	"github.com/fyzanshaik/timer-game/internal/domain/repositories"
	"github.com/fyzanshaik/timer-game/internal/infrastructure"
)

const (
	// A reader can observe a freshly created User between its insert and the
	// score-record insert, because the pair is not written in one
	// transaction. A missing record is re-read briefly before it is
	// classified as an integrity fault, so only a persistent orphan errors.
	recordRetryAttempts = 10
	recordRetryDelay    = 25 * time.Millisecond
)

type UserService struct {
	userRepo  repositories.UserRepository
	scoreRepo repositories.ScoreRepository
	cache     infrastructure.Cache
	cacheTTL  time.Duration
}

func NewUserService(
	userRepo repositories.UserRepository,
	scoreRepo repositories.ScoreRepository,
	cache infrastructure.Cache,
	cacheTTL time.Duration,
) interfaces.UserService {
	return &UserService{
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// EnsureUser resolves a username to its user/score pair, creating both when
// absent. Two calls with the same username always converge on the same id:
// the store's unique index decides a create race, and the loser re-resolves
// through the lookup path.
func (s *UserService) EnsureUser(ctx context.Context, ensureCommand *command.EnsureUserCommand) (*command.EnsureUserCommandResult, error) {
	newUser := entities.NewUser(ensureCommand.UserName)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, common.NewInvalidInput("Username is required")
	}
	userName := newUser.Username

	cacheKey := infrastructure.UserKey(userName)
	if payload, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached common.UserCheckResult
		if err := json.Unmarshal(payload, &cached); err == nil {
			log.Printf("Serving from cache: userdata")
			return &command.EnsureUserCommandResult{Result: &cached}, nil
		}
		// A corrupt entry degrades to a miss; the store rebuilds it below.
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, userName)
	if err != nil {
		return nil, common.NewUpstream("failed to look up user", err)
	}
	if existingUser != nil {
		return s.existingUserResult(ctx, existingUser, cacheKey)
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			// Lost the create race; the winner's row is authoritative.
			winner, lookupErr := s.userRepo.FindByUsername(ctx, userName)
			if lookupErr != nil {
				return nil, common.NewUpstream("failed to look up user", lookupErr)
			}
			if winner == nil {
				return nil, common.NewConflict("username already exists")
			}
			return s.existingUserResult(ctx, winner, cacheKey)
		}
		return nil, common.NewUpstream("failed to create user", err)
	}

	// Not atomic with the user insert: a crash here leaves an orphan User,
	// which later surfaces as a data_integrity fault on lookup.
	record, err := s.scoreRepo.Create(ctx, createdUser.Id)
	if err != nil {
		return nil, common.NewUpstream("failed to create score record", err)
	}

	result := mapper.NewUserCheckResultFromEntities(createdUser, record, "User created successfully")
	s.cacheResult(ctx, cacheKey, result)

	return &command.EnsureUserCommandResult{Result: result, Created: true}, nil
}

func (s *UserService) existingUserResult(ctx context.Context, user *entities.User, cacheKey string) (*command.EnsureUserCommandResult, error) {
	var record *entities.ScoreRecord
	for attempt := 0; ; attempt++ {
		found, err := s.scoreRepo.FindByUserId(ctx, user.Id)
		if err != nil {
			return nil, common.NewUpstream("failed to load score record", err)
		}
		if found != nil {
			record = found
			break
		}
		if attempt+1 >= recordRetryAttempts {
			return nil, common.NewDataIntegrity(fmt.Sprintf("user %d has no score record", user.Id))
		}
		select {
		case <-ctx.Done():
			return nil, common.NewUpstream("gave up waiting for score record", ctx.Err())
		case <-time.After(recordRetryDelay):
		}
	}

	result := mapper.NewUserCheckResultFromEntities(user, record, "User already exists")
	s.cacheResult(ctx, cacheKey, result)

	return &command.EnsureUserCommandResult{Result: result}, nil
}

func (s *UserService) cacheResult(ctx context.Context, cacheKey string, result *common.UserCheckResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("Failed to serialize user cache entry: %v", err)
		return
	}
	s.cache.Set(ctx, cacheKey, payload, s.cacheTTL)
}
