package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"unionsite/internal/model"
	"unionsite/internal/repository"
	"unionsite/pkg/logger"
)

type fakeAdmins struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
	nextID int64
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{admins: map[string]*model.Admin{}}
}

func (f *fakeAdmins) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdmins) Create(ctx context.Context, a *model.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.admins[a.Email] = &cp
	return nil
}

func (f *fakeAdmins) UpdatePassword(ctx context.Context, email, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[email]
	if !ok {
		return repository.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

type sentMail struct {
	kind, to, name, code string
	minutes              int
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) SendPasswordResetCode(to, userName, code string, expireMinutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{kind: "reset", to: to, name: userName, code: code, minutes: expireMinutes})
	return nil
}

func (m *fakeMailer) SendWelcomeEmail(to, userName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{kind: "welcome", to: to, name: userName})
	return nil
}

// syncSubmitter 立即执行任务
type syncSubmitter struct{}

func (syncSubmitter) Submit(name string, handler func(ctx context.Context) error) bool {
	return handler(context.Background()) == nil
}

func newLocal(t *testing.T) (*LocalProvider, *fakeAdmins, *fakeMailer, *miniredis.Miniredis) {
	t.Helper()
	return newLocalWithSignUp(t, true)
}

func newLocalWithSignUp(t *testing.T, allowSignUp bool) (*LocalProvider, *fakeAdmins, *fakeMailer, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	admins := newFakeAdmins()
	mailer := &fakeMailer{}
	p := NewLocalProvider(admins, rdb, NewTokenManager("local-secret"), mailer, syncSubmitter{}, logger.NewNop(), allowSignUp)
	return p, admins, mailer, mr
}

func TestLocalProvider_SignUpThenSignIn(t *testing.T) {
	p, admins, mailer, _ := newLocal(t)
	ctx := context.Background()

	user, err := p.SignUp(ctx, "sec@union.example", "secret1", Profile{FullName: "Sam Obi", Faculty: "Arts"})
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)

	stored, _ := admins.GetByEmail(ctx, "sec@union.example")
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "welcome", mailer.sent[0].kind)

	session, err := p.SignIn(ctx, "sec@union.example", "secret1")
	require.NoError(t, err)
	claims, err := p.tokens.Parse(session.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "Sam Obi", claims.User().FullName)

	_, err = p.SignUp(ctx, "sec@union.example", "another1", Profile{})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLocalProvider_SignInWrongPassword(t *testing.T) {
	p, _, _, _ := newLocal(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "a@union.example", "secret1", Profile{})
	require.NoError(t, err)

	_, err = p.SignIn(ctx, "a@union.example", "secret2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "nobody@union.example", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalProvider_PasswordReset(t *testing.T) {
	p, _, mailer, mr := newLocal(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "a@union.example", "secret1", Profile{FullName: "Ade"})
	require.NoError(t, err)

	require.NoError(t, p.RequestPasswordReset(ctx, "a@union.example"))
	require.Len(t, mailer.sent, 2)
	mail := mailer.sent[1]
	assert.Equal(t, "reset", mail.kind)
	assert.Len(t, mail.code, 6)
	assert.Equal(t, 15, mail.minutes)
	assert.True(t, mr.Exists(resetCodeKey("a@union.example")))
	assert.Equal(t, 15*time.Minute, mr.TTL(resetCodeKey("a@union.example")))

	assert.ErrorIs(t, p.RequestPasswordReset(ctx, "a@union.example"), ErrTooFrequent)

	assert.ErrorIs(t, p.ConfirmPasswordReset(ctx, "a@union.example", "000000x", "newpass1"), ErrInvalidCode)
	require.NoError(t, p.ConfirmPasswordReset(ctx, "a@union.example", mail.code, "newpass1"))
	assert.False(t, mr.Exists(resetCodeKey("a@union.example")))

	_, err = p.SignIn(ctx, "a@union.example", "newpass1")
	assert.NoError(t, err)

	assert.ErrorIs(t, p.ConfirmPasswordReset(ctx, "a@union.example", mail.code, "again11"), ErrInvalidCode)
}

func TestLocalProvider_ResetUnknownEmailIsSilent(t *testing.T) {
	p, _, mailer, mr := newLocal(t)

	require.NoError(t, p.RequestPasswordReset(context.Background(), "ghost@union.example"))
	assert.Empty(t, mailer.sent)
	assert.False(t, mr.Exists(resetCodeKey("ghost@union.example")))
}

func TestLocalProvider_SignUpDisabled(t *testing.T) {
	p, admins, mailer, _ := newLocalWithSignUp(t, false)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "intruder@union.example", "secret1", Profile{FullName: "X"})
	assert.ErrorIs(t, err, ErrSignUpDisabled)
	_, err = admins.GetByEmail(ctx, "intruder@union.example")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, mailer.sent)

	// 命令行创建的管理员仍可登录
	_, err = CreateAdmin(ctx, admins, "chair@union.example", "secret1", Profile{FullName: "Chair"})
	require.NoError(t, err)
	session, err := p.SignIn(ctx, "chair@union.example", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Chair", session.User.FullName)
}

func TestLocalProvider_ResetCodeBurnsAfterWrongGuesses(t *testing.T) {
	p, _, mailer, mr := newLocal(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "a@union.example", "secret1", Profile{FullName: "Ade"})
	require.NoError(t, err)
	require.NoError(t, p.RequestPasswordReset(ctx, "a@union.example"))
	code := mailer.sent[len(mailer.sent)-1].code

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	for i := 0; i < maxResetAttempts; i++ {
		assert.ErrorIs(t, p.ConfirmPasswordReset(ctx, "a@union.example", wrong, "newpass1"), ErrInvalidCode)
	}
	assert.False(t, mr.Exists(resetCodeKey("a@union.example")))

	// 正确的验证码也已失效
	assert.ErrorIs(t, p.ConfirmPasswordReset(ctx, "a@union.example", code, "newpass1"), ErrInvalidCode)
	_, err = p.SignIn(ctx, "a@union.example", "secret1")
	assert.NoError(t, err)
}
