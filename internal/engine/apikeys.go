package engine

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"docanalysis/internal/domain"
	"docanalysis/internal/repo"
)

// apiKeyPrefix marks generated secrets so they are easy to spot in logs
// and config files.
const apiKeyPrefix = "dak_"

// CreateAPIKey issues a key for actorID and grants it roles. The secret is
// returned once; only its hash is stored.
func (e Engine) CreateAPIKey(ctx context.Context, actorID, name string, roles []string) (domain.APIKey, string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return domain.APIKey{}, "", fmt.Errorf("generate key: %w", err)
	}
	secret := apiKeyPrefix + hex.EncodeToString(buf)
	key := domain.APIKey{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		Name:      name,
		KeyHash:   repo.HashAPIKey(secret),
		Roles:     roles,
		CreatedAt: e.stamp(),
	}

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.APIKey{}, "", err
	}
	defer tx.Rollback()
	if err := e.Auth.Grant(ctx, tx, actorID, roles, key.CreatedAt); err != nil {
		return domain.APIKey{}, "", err
	}
	if err := e.Repo.InsertAPIKey(ctx, tx, key); err != nil {
		return domain.APIKey{}, "", err
	}
	if err := tx.Commit(); err != nil {
		return domain.APIKey{}, "", err
	}
	e.log.WithField("key_id", key.ID).WithField("actor_id", actorID).Info("api key created")
	return key, secret, nil
}

// ListAPIKeys returns keys, optionally for one actor, with the roles of
// their actors.
func (e Engine) ListAPIKeys(ctx context.Context, actorID string) ([]domain.APIKey, error) {
	keys, err := e.Repo.ListAPIKeys(ctx, actorID)
	if err != nil {
		return nil, err
	}
	roles := map[string][]string{}
	for i := range keys {
		r, ok := roles[keys[i].ActorID]
		if !ok {
			if r, err = e.Auth.ActorRoles(ctx, keys[i].ActorID); err != nil {
				return nil, err
			}
			roles[keys[i].ActorID] = r
		}
		keys[i].Roles = r
	}
	return keys, nil
}

func (e Engine) DeleteAPIKey(ctx context.Context, id string) error {
	if err := e.Repo.DeleteAPIKey(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apiError(errResourceNotFound, "api key %s not found", id)
		}
		return err
	}
	e.log.WithField("key_id", id).Info("api key deleted")
	return nil
}
