package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

const defaultCookieName = "studio_admin"

// Config параметры входа администратора
type Config struct {
	Login        string
	PasswordHash string // bcrypt
	HashKey      []byte
	BlockKey     []byte // пустой - cookie только подписывается
	CookieName   string
	SessionTTL   time.Duration
	Secure       bool
}

// Session содержимое cookie администратора
type Session struct {
	Login     string `json:"login"`
	ExpiresAt int64  `json:"exp"`
}

// Service вход администратора: проверка пароля и подписанная cookie-сессия
type Service struct {
	cfg          Config
	codec        *securecookie.SecureCookie
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(cfg Config, logger Logger) *Service {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}

	var blockKey []byte
	if len(cfg.BlockKey) > 0 {
		blockKey = cfg.BlockKey
	}

	codec := securecookie.New(cfg.HashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(cfg.SessionTTL.Seconds()))

	return &Service{
		cfg:          cfg,
		codec:        codec,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// CookieName имя cookie сессии
func (s *Service) CookieName() string {
	return s.cfg.CookieName
}

// Login проверяет логин и пароль и выставляет cookie сессии
func (s *Service) Login(w http.ResponseWriter, login, password string) error {
	// 1. Логин сравниваем за постоянное время
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(s.cfg.Login)) == 1

	// 2. bcrypt проверяем всегда, чтобы время ответа не зависело от логина
	passwordOK := CheckPassword(s.cfg.PasswordHash, password)

	if !loginOK || !passwordOK {
		s.logger.Warn("Login: invalid credentials for login=%q", login)
		return ErrInvalidCredentials
	}

	// 3. Выпускаем сессию
	expiresAt := s.timeProvider.Now().Add(s.cfg.SessionTTL)
	encoded, err := s.codec.Encode(s.cfg.CookieName, Session{Login: s.cfg.Login, ExpiresAt: expiresAt.Unix()})
	if err != nil {
		s.logger.Error("Login: failed to encode session: %v", err)
		return fmt.Errorf("%w: encode session: %v", ErrInternal, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    encoded,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Info("Login: admin %q signed in", s.cfg.Login)
	return nil
}

// Logout удаляет cookie сессии
func (s *Service) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate достаёт и проверяет сессию из запроса
func (s *Service) Authenticate(r *http.Request) (*Session, error) {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	var session Session
	if err := s.codec.Decode(s.cfg.CookieName, c.Value, &session); err != nil {
		return nil, ErrUnauthenticated
	}

	if session.Login != s.cfg.Login || s.timeProvider.Now().Unix() >= session.ExpiresAt {
		return nil, ErrUnauthenticated
	}

	return &session, nil
}

// HashPassword bcrypt-хэш для config.toml
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с bcrypt-хэшем
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
