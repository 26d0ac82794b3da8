package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/config"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/repository"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/validator"
)

// UserService covers registration, phone login, verification and per-user
// language. The language lookup sits on the hot path of every update, so it
// goes through Redis with the database as fallback.
type UserService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	langTTL  time.Duration
	log      zerolog.Logger
}

func NewUserService(userRepo *repository.UserRepository, rdb *redis.Client, langTTL time.Duration, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		rdb:      rdb,
		langTTL:  langTTL,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates an unverified account from a completed registration
// form. The account stays inactive until an admin approves the documents.
func (s *UserService) Register(ctx context.Context, telegramID int64, form *model.RegistrationForm) (*model.User, error) {
	if fields := validator.Check(form); len(fields) > 0 {
		return nil, &validator.FieldErrors{Fields: fields}
	}

	existing, err := s.userRepo.GetByPhone(ctx, form.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	u := &model.User{
		TelegramID: &telegramID,
		Name:       form.Name,
		Age:        &form.Age,
		Phone:      form.Phone,
		PhotoID:    form.PhotoID,
		DocumentID: form.DocumentID,
		Language:   form.Language,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", u.ID).Int64("telegram_id", telegramID).Msg("user registered")
	return u, nil
}

func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// PhoneTaken lets the registration wizard refuse a duplicate phone at the
// step where it is entered instead of at the very end.
func (s *UserService) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	u, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// LoginByPhone binds the Telegram account to an existing registration. A
// phone already bound to a different Telegram account is refused; the old
// binding must be released by logout first.
func (s *UserService) LoginByPhone(ctx context.Context, telegramID int64, phone string) (*model.User, error) {
	if !validator.ValidPhone(phone) {
		return nil, ErrUserNotFound
	}

	u, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.TelegramID != nil && *u.TelegramID != telegramID {
		return nil, ErrPhoneLinked
	}

	if u.TelegramID == nil {
		if err := s.userRepo.BindTelegramID(ctx, u.ID, telegramID); err != nil {
			return nil, err
		}
		u.TelegramID = &telegramID
	}

	s.dropLangCache(ctx, telegramID)
	s.log.Info().Int64("user_id", u.ID).Int64("telegram_id", telegramID).Msg("phone login")
	return u, nil
}

// Logout releases the Telegram binding. Results and the registration stay.
func (s *UserService) Logout(ctx context.Context, telegramID int64) error {
	u, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.UnbindTelegramID(ctx, u.ID); err != nil {
		return err
	}
	s.dropLangCache(ctx, telegramID)
	return nil
}

// Language resolves the user's interface language, preferring the Redis
// cache. Unknown users and cache or database trouble fall back to Russian.
func (s *UserService) Language(ctx context.Context, telegramID int64) string {
	key := config.CacheKey.UserLangKey(telegramID)

	if lang, err := s.rdb.Get(ctx, key).Result(); err == nil && lang != "" {
		return lang
	}

	lang := model.DefaultLanguage
	u, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		s.log.Warn().Err(err).Int64("telegram_id", telegramID).Msg("language lookup failed")
		return lang
	}
	if u != nil && u.Language != "" {
		lang = u.Language
	}

	if err := s.rdb.Set(ctx, key, lang, s.langTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("language cache write failed")
	}
	return lang
}

// SetLanguage persists the choice and refreshes the cache.
func (s *UserService) SetLanguage(ctx context.Context, telegramID int64, lang string) error {
	u, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.SetLanguage(ctx, u.ID, lang); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, config.CacheKey.UserLangKey(telegramID), lang, s.langTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("language cache write failed")
	}
	return nil
}

// Approve marks a pending registration as verified.
func (s *UserService) Approve(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if err := s.userRepo.SetActive(ctx, userID, true); err != nil {
		return nil, err
	}
	u.IsActive = true
	s.log.Info().Int64("user_id", userID).Msg("user approved")
	return u, nil
}

// Reject removes a pending registration so the person can register again.
func (s *UserService) Reject(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return nil, err
	}
	if u.TelegramID != nil {
		s.dropLangCache(ctx, *u.TelegramID)
	}
	s.log.Info().Int64("user_id", userID).Msg("user rejected")
	return u, nil
}

// Deactivate revokes a verified account without deleting its history.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	return s.userRepo.SetActive(ctx, userID, false)
}

// DeleteUser removes one account with its results.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return nil, err
	}
	if u.TelegramID != nil {
		s.dropLangCache(ctx, *u.TelegramID)
	}
	s.log.Info().Int64("user_id", userID).Msg("user deleted")
	return u, nil
}

// DeleteAllUsers wipes every account and result. Stale language cache
// entries are left to expire on their TTL.
func (s *UserService) DeleteAllUsers(ctx context.Context) (int64, error) {
	n, err := s.userRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Warn().Int64("deleted", n).Msg("all users deleted")
	return n, nil
}

func (s *UserService) ListPending(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListPending(ctx)
}

func (s *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *UserService) ListReachable(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListActiveWithTelegram(ctx)
}

func (s *UserService) dropLangCache(ctx context.Context, telegramID int64) {
	if err := s.rdb.Del(ctx, config.CacheKey.UserLangKey(telegramID)).Err(); err != nil {
		s.log.Warn().Err(err).Msg("language cache drop failed")
	}
}
