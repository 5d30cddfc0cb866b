package user

import (
	c "budgetsync/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"net/url"
	"sync"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

// FakePasswordResetTokenGenerator hands out "<prefix>-1", "<prefix>-2", ...
type FakePasswordResetTokenGenerator struct {
	Prefix      string
	ReturnError bool
	count       int
	lock        sync.Mutex
}

func NewFakePasswordResetTokenGenerator(prefix string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Prefix: prefix}
}

func (g *FakePasswordResetTokenGenerator) GenerateResetToken() (ResetToken, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not generate reset token")
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.count++
	return ResetToken(fmt.Sprintf("%s-%d", g.Prefix, g.count)), nil
}

type FakeUserRepository struct {
	Users            []User
	ReturnError      bool
	SetPasswordError error
	lock             sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input.Email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if u.Username == input.Username {
			return u, ErrUsernameAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.SetPasswordError != nil {
		return r.SetPasswordError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) snapshot() []User {
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users
}

func (r *FakeUserRepository) restore(users []User) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Users = users
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	userId, ok := r.UserIdByToken[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userId)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}

func (r *FakeSessionRepository) DeleteOthers(ctx context.Context, userID ID, keep SessionToken) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete sessions of user %d", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	var deleted int64
	for token, owner := range r.UserIdByToken {
		if owner == userID && token != keep {
			delete(r.UserIdByToken, token)
			deleted++
		}
	}
	return deleted, nil
}

type FakePasswordResetTokenRepository struct {
	Tokens      []PasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenRepository() *FakePasswordResetTokenRepository {
	return &FakePasswordResetTokenRepository{Tokens: make([]PasswordResetToken, 0, 10)}
}

func (r *FakePasswordResetTokenRepository) Create(
	ctx context.Context,
	input CreatePasswordResetTokenInput,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create password reset token for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.Token == input.Token {
			return t, fmt.Errorf("password reset token %v already exists", input.Token)
		}
	}
	t = PasswordResetToken{
		ID:        PasswordResetTokenID(len(r.Tokens) + 1),
		UserID:    input.UserID,
		Token:     input.Token,
		CreatedAt: input.CreatedAt,
		ExpiresAt: input.ExpiresAt,
	}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakePasswordResetTokenRepository) GetByToken(
	ctx context.Context,
	token ResetToken,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not get password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.Token == token {
			return t, nil
		}
	}
	return t, ErrPasswordResetTokenNotFound
}

func (r *FakePasswordResetTokenRepository) GetByTokenWithLock(
	ctx context.Context,
	token ResetToken,
) (PasswordResetToken, error) {
	return r.GetByToken(ctx, token)
}

func (r *FakePasswordResetTokenRepository) MarkUsed(ctx context.Context, id PasswordResetTokenID) error {
	if r.ReturnError {
		return fmt.Errorf("could not mark password reset token as used")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tokens {
		if t.ID != id {
			continue
		}
		if t.Used {
			return ErrPasswordResetTokenAlreadyUsed
		}
		r.Tokens[ix].Used = true
		return nil
	}
	return ErrPasswordResetTokenNotFound
}

func (r *FakePasswordResetTokenRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Tokens)
}

func (r *FakePasswordResetTokenRepository) snapshot() []PasswordResetToken {
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make([]PasswordResetToken, len(r.Tokens))
	copy(tokens, r.Tokens)
	return tokens
}

func (r *FakePasswordResetTokenRepository) restore(tokens []PasswordResetToken) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Tokens = tokens
}

// FakeSnapshot captures the state of fake repositories so that a fake
// transaction can be rolled back.
type FakeSnapshot struct {
	users  []User
	tokens []PasswordResetToken
}

func TakeFakeSnapshot(users *FakeUserRepository, tokens *FakePasswordResetTokenRepository) FakeSnapshot {
	return FakeSnapshot{users: users.snapshot(), tokens: tokens.snapshot()}
}

func (s FakeSnapshot) Restore(users *FakeUserRepository, tokens *FakePasswordResetTokenRepository) {
	users.restore(s.users)
	tokens.restore(s.tokens)
}

type FakePasswordResetNotification struct {
	Recipient c.Email
	Link      url.URL
}

type FakePasswordResetNotifier struct {
	Sent        []FakePasswordResetNotification
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetNotifier() *FakePasswordResetNotifier {
	return &FakePasswordResetNotifier{}
}

func (n *FakePasswordResetNotifier) SendPasswordResetLink(ctx context.Context, recipient c.Email, link url.URL) error {
	if n.ReturnError {
		return fmt.Errorf("could not send password reset link to %s", recipient)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Sent = append(n.Sent, FakePasswordResetNotification{Recipient: recipient, Link: link})
	return nil
}

func (n *FakePasswordResetNotifier) SentCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.Sent)
}
