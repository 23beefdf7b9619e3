package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const APITokenPrefix = "tk_"

// APIToken grants programmatic access on behalf of its creator until revoked.
type APIToken struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Token     string     `json:"token"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	LastUsed  *time.Time `json:"lastUsed,omitempty"`
	IsActive  bool       `json:"isActive"`
}

type APITokenInput struct {
	Name string `json:"name" validate:"required"`
}

func (in *APITokenInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
}

func NewAPIToken(id, name, createdBy string, now time.Time) (APIToken, error) {
	value, err := generateTokenValue()
	if err != nil {
		return APIToken{}, err
	}
	return APIToken{
		ID:        id,
		Name:      name,
		Token:     value,
		CreatedBy: createdBy,
		CreatedAt: now,
		IsActive:  true,
	}, nil
}

func IsAPITokenValue(s string) bool {
	return strings.HasPrefix(s, APITokenPrefix)
}

func generateTokenValue() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token value: %w", err)
	}
	return APITokenPrefix + hex.EncodeToString(b), nil
}
