// Package auth issues and verifies the signed tokens that protect the
// HTTP surface, and checks credentials against the three role tables.
package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"sports-school/models"
	"sports-school/utils"
)

var (
	ErrMissingFields      = errors.New("login and password are required")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Manager holds the signing secret and token lifetime. Built once at
// startup from config and passed down; no package-level state.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// roleTables defines the lookup precedence. A login present in more than
// one table is only reachable under the first matching role; per-table
// uniqueness makes that shadowing possible and it is kept as-is.
var roleTables = []struct {
	role  string
	query string
}{
	{models.RoleAdmin, "SELECT id, first_name, last_name, login, password FROM admins WHERE login = ?"},
	{models.RoleCoach, "SELECT id, first_name, last_name, login, password FROM coaches WHERE login = ?"},
	{models.RoleStudent, "SELECT id, first_name, last_name, login, password FROM students WHERE login = ?"},
}

// Authenticate looks the login up across admins, coaches and students in
// that order and verifies the password against the stored bcrypt hash.
// Unknown login and wrong password both return ErrInvalidCredentials.
func (m *Manager) Authenticate(db *sql.DB, login, password string) (models.Account, error) {
	if login == "" || password == "" {
		return models.Account{}, ErrMissingFields
	}

	account, err := lookupAccount(db, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, err
	}

	if !utils.ComparePasswords(account.PasswordHash, []byte(password)) {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

func lookupAccount(db *sql.DB, login string) (models.Account, error) {
	for _, table := range roleTables {
		var account models.Account
		err := db.QueryRow(table.query, login).Scan(
			&account.ID, &account.FirstName, &account.LastName, &account.Login, &account.PasswordHash,
		)
		if err == nil {
			account.Role = table.role
			return account, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("lookup %s account: %w", table.role, err)
		}
	}
	return models.Account{}, sql.ErrNoRows
}

// GenerateToken signs a token carrying the account identity and role.
func (m *Manager) GenerateToken(account models.Account) (string, error) {
	claims := jwt.MapClaims{
		"id":    account.ID,
		"login": account.Login,
		"role":  account.Role,
		"exp":   time.Now().Add(m.ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies signature and expiry and extracts the principal.
// Any tampered, expired or malformed token yields ErrInvalidToken.
func (m *Manager) ParseToken(tokenString string) (models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return models.Principal{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return models.Principal{}, ErrInvalidToken
	}
	login, _ := claims["login"].(string)

	return models.Principal{ID: int(id), Role: role, Login: login}, nil
}
