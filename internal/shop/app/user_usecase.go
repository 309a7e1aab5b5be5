package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	svc "goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

const (
	methodRegister          = "Register"
	methodLogin             = "Login"
	methodLogout            = "Logout"
	methodAuthenticate      = "Authenticate"
	methodUpdateCredentials = "UpdateCredentials"
	methodDeleteUser        = "DeleteUser"

	msgStartRegistration   = "starting user registration"
	msgInvalidEmailFormat  = "invalid email format"
	msgInvalidPassword     = "invalid password"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgLoginDisabled       = "login attempt on disabled account"
	msgUserLoggedIn        = "user logged in successfully"
	msgLogoutInvalidToken  = "logout with invalid token, nothing to revoke"
	msgUserLoggedOut       = "user logged out successfully"
	msgRevokedTokenAttempt = "attempt to use revoked token"
	msgTokenUserGone       = "token owner no longer exists"
	msgTokenUserDisabled   = "token owner is not active"
	msgIgnoredRole         = "unrecognised role ignored"
	msgIgnoredStatus       = "unrecognised status ignored"
	msgCredentialsUpdated  = "user credentials updated"
	msgUserDeleted         = "user deleted"

	msgErrCreateUser       = "failed to create user"
	msgErrFindingUser      = "error finding user by email"
	msgErrVerifyingPasswd  = "error verifying password"
	msgErrIssueToken       = "failed to issue token"
	msgErrRevokingToken    = "failed to revoke token"
	msgErrCheckRevocation  = "failed to check token revocation"
	msgErrHashPassword     = "failed to hash password"
	msgErrPlaceholderHash  = "failed to prepare placeholder password hash"
	msgErrLoadingTokenUser = "failed to load token owner"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxAccountDisabled    = "account disabled"
	errCtxIssuingToken       = "issuing token"
	errCtxVerifyingToken     = "verifying token"
	errCtxRevokingToken      = "revoking token"
	errCtxCheckingRevocation = "checking token revocation"
	errCtxLoadingTokenUser   = "loading token owner"
	errCtxListingUsers       = "listing users"
	errCtxUpdatingUser       = "updating user"
	errCtxDeletingUser       = "deleting user"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// placeholderPassword хешируется один раз, чтобы вход с неизвестным email
// тратил на проверку пароля столько же времени, сколько вход с известным.
const placeholderPassword = "placeholder-password-never-matches"

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	revocations svc.RevocationStore

	placeholderOnce sync.Once
	placeholderHash string
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	revocations svc.RevocationStore,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		revocations: revocations,
	}
}

// verifyPlaceholder сверяет пароль с заранее вычисленным хешем, результат отбрасывается.
func (u *UserUseCaseImpl) verifyPlaceholder(ctx context.Context, password string) {
	u.placeholderOnce.Do(func() {
		hash, err := u.passwordSvc.Hash(ctx, placeholderPassword)
		if err != nil {
			logger.Log(ctx).Warn(ctx, msgErrPlaceholderHash, zap.Error(err))
			return
		}
		u.placeholderHash = hash
	})
	_, _ = u.passwordSvc.Verify(ctx, password, u.placeholderHash)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" || entities.TooLong(email, entities.MaxTextLength) || !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < services.MinPasswordLength {
		return entities.ErrPasswordTooShort
	}
	return nil
}

// createUser собирает нового пользователя: проверяет данные и хеширует пароль
// до сохранения. Роль и статус получают значения по умолчанию.
func (u *UserUseCaseImpl) createUser(ctx context.Context, email, password string) (*entities.User, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	hash, err := u.passwordSvc.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	return &entities.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleUser,
		Status:       entities.StatusActive,
	}, nil
}

// Register создает нового пользователя.
func (u *UserUseCaseImpl) Register(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister))
	log.Debug(ctx, msgStartRegistration)

	user, err := u.createUser(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidEmail):
			log.Debug(ctx, msgInvalidEmailFormat)
		case errors.Is(err, entities.ErrValidation):
			log.Debug(ctx, msgInvalidPassword)
		default:
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
		}
		return nil, err
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		log.Warn(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", created.ID))
	return created, nil
}

// Login проверяет учетные данные и выпускает токен сессии.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (u *UserUseCaseImpl) Login(ctx context.Context, email, password string) (*api.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))
	log.Debug(ctx, msgLoginAttempt)

	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			u.verifyPlaceholder(ctx, password)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	log = log.With(zap.Int64("userID", user.ID))

	valid, err := u.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPasswd, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	if !user.IsActive() {
		log.Info(ctx, msgLoginDisabled, zap.String("status", string(user.Status)))
		return nil, fmt.Errorf("%s: %w", errCtxAccountDisabled, services.ErrAccountDisabled)
	}

	token, err := u.tokenSvc.Issue(ctx, services.Claims{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn)
	return &api.Session{User: user, Token: token}, nil
}

// Logout отзывает токен до истечения его срока.
// Недействительный токен отзывать не нужно, это не ошибка.
func (u *UserUseCaseImpl) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))

	verified, err := u.tokenSvc.Verify(ctx, token)
	if err != nil {
		log.Debug(ctx, msgLogoutInvalidToken, zap.Error(err))
		return nil
	}

	log = log.With(zap.Int64("userID", verified.UserID))

	if err := u.revocations.Revoke(ctx, verified.ID, verified.ExpiresAt); err != nil {
		log.Error(ctx, msgErrRevokingToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// Authenticate проверяет токен, его отсутствие в списке отозванных и текущий статус владельца.
func (u *UserUseCaseImpl) Authenticate(ctx context.Context, token string) (*services.VerifiedToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	if token == "" {
		return nil, services.ErrNotAuthenticated
	}

	verified, err := u.tokenSvc.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, err)
	}

	revoked, err := u.revocations.IsRevoked(ctx, verified.ID)
	if err != nil {
		log.Error(ctx, msgErrCheckRevocation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevocation, err)
	}
	if revoked {
		log.Debug(ctx, msgRevokedTokenAttempt, zap.Int64("userID", verified.UserID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrRevokedJWTToken)
	}

	// Роль и статус берутся из хранилища, а не из токена.
	user, err := u.userRepo.FindByID(ctx, verified.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgTokenUserGone, zap.Int64("userID", verified.UserID))
			return nil, fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken)
		}
		log.Error(ctx, msgErrLoadingTokenUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLoadingTokenUser, err)
	}
	if !user.IsActive() {
		log.Info(ctx, msgTokenUserDisabled, zap.Int64("userID", user.ID), zap.String("status", string(user.Status)))
		return nil, fmt.Errorf("%s: %w", errCtxAccountDisabled, services.ErrAccountDisabled)
	}
	authenticated := *verified
	authenticated.Role, authenticated.Email = user.Role, user.Email

	return &authenticated, nil
}

// List возвращает всех пользователей.
func (u *UserUseCaseImpl) List(ctx context.Context) ([]*entities.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return users, nil
}

// UpdateCredentials меняет роль, статус или пароль пользователя.
// Нераспознанные роль и статус игнорируются. Если не осталось ни одного изменения,
// возвращается ErrNothingToUpdate.
func (u *UserUseCaseImpl) UpdateCredentials(
	ctx context.Context,
	id int64,
	change api.CredentialsChange,
) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateCredentials), zap.Int64("userID", id))

	var update entities.CredentialsUpdate

	if change.Role != "" {
		if role, ok := entities.ParseRole(change.Role); ok {
			update.Role = &role
		} else {
			log.Debug(ctx, msgIgnoredRole, zap.String("role", change.Role))
		}
	}
	if change.Status != "" {
		if status, ok := entities.ParseStatus(change.Status); ok {
			update.Status = &status
		} else {
			log.Debug(ctx, msgIgnoredStatus, zap.String("status", change.Status))
		}
	}
	if change.Password != "" {
		if err := validatePassword(change.Password); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
		}
		hash, err := u.passwordSvc.Hash(ctx, change.Password)
		if err != nil {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		update.PasswordHash = &hash
	}

	if update.IsEmpty() {
		return nil, entities.ErrNothingToUpdate
	}

	user, err := u.userRepo.UpdateCredentials(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgCredentialsUpdated)
	return user, nil
}

// Delete удаляет пользователя вместе с его корзиной.
func (u *UserUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.Int64("userID", id))

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	log.Info(ctx, msgUserDeleted)
	return nil
}
