package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"coffeechat.app/api/core/db"
	"coffeechat.app/api/internal/model"
)

type kitStore struct {
	db *db.DB
}

func NewKitStore(database *db.DB) KitStore {
	return &kitStore{db: database}
}

// CreateWithContact persists the contact and its kit atomically. The kit's
// ContactID is filled in before insert.
func (s *kitStore) CreateWithContact(ctx context.Context, contact *model.Contact, kit *model.Kit) error {
	sharedInterests, err := json.Marshal(kit.Content.SharedInterests)
	if err != nil {
		return fmt.Errorf("encoding shared interests: %w", err)
	}
	starters, err := json.Marshal(kit.Content.Starters)
	if err != nil {
		return fmt.Errorf("encoding starters: %w", err)
	}
	followUps, err := json.Marshal(kit.Content.FollowUps)
	if err != nil {
		return fmt.Errorf("encoding follow-ups: %w", err)
	}

	return s.db.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO contacts (id, owner_user_id, name, profile_url, raw_profile_text)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at`,
			contact.ID, contact.OwnerUserID, contact.Name, contact.ProfileURL, contact.RawProfileText,
		).Scan(&contact.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating contact: %w", err)
		}

		kit.ContactID = contact.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO kits (id, owner_user_id, contact_id, shared_interests, starters, follow_ups, one_line_pitch, model_version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at`,
			kit.ID, kit.OwnerUserID, kit.ContactID, sharedInterests, starters, followUps,
			kit.Content.OneLinePitch, kit.ModelVersion,
		).Scan(&kit.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating kit: %w", err)
		}
		return nil
	})
}

func (s *kitStore) ListRecent(ctx context.Context, ownerUserID int64, limit int32) ([]model.KitListItem, error) {
	rows, err := s.db.Pool().Query(ctx, `
		SELECT k.id, k.owner_user_id, k.contact_id, k.shared_interests, k.starters,
		       k.follow_ups, k.one_line_pitch, k.model_version, k.created_at,
		       c.name, c.profile_url
		FROM kits k
		JOIN contacts c ON c.id = k.contact_id
		WHERE k.owner_user_id = $1
		ORDER BY k.created_at DESC
		LIMIT $2`, ownerUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing kits: %w", err)
	}
	defer rows.Close()

	var items []model.KitListItem
	for rows.Next() {
		var (
			item            model.KitListItem
			sharedInterests []byte
			starters        []byte
			followUps       []byte
		)
		if err := rows.Scan(&item.ID, &item.OwnerUserID, &item.ContactID, &sharedInterests, &starters,
			&followUps, &item.Content.OneLinePitch, &item.ModelVersion, &item.CreatedAt,
			&item.ContactName, &item.ContactProfileURL); err != nil {
			return nil, fmt.Errorf("scanning kit: %w", err)
		}
		if err := json.Unmarshal(sharedInterests, &item.Content.SharedInterests); err != nil {
			return nil, fmt.Errorf("decoding shared interests: %w", err)
		}
		if err := json.Unmarshal(starters, &item.Content.Starters); err != nil {
			return nil, fmt.Errorf("decoding starters: %w", err)
		}
		if err := json.Unmarshal(followUps, &item.Content.FollowUps); err != nil {
			return nil, fmt.Errorf("decoding follow-ups: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
