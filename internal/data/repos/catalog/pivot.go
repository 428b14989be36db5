package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pivot describes one join table of a many-to-many relation.
type pivot struct {
	table     string
	ownerKey  string
	relateKey string
	row       func(owner, related uuid.UUID) any
}

// sync deletes the owner's pairs whose related id is not in ids and inserts
// the missing ones. Existing pairs are left as they are.
func (p pivot) sync(tx *gorm.DB, owner uuid.UUID, ids []uuid.UUID) error {
	if owner == uuid.Nil {
		return fmt.Errorf("%s sync: nil owner id", p.table)
	}
	ids = dedupe(ids)

	del := tx.Where(p.ownerKey+" = ?", owner)
	if len(ids) > 0 {
		del = del.Where(p.relateKey+" NOT IN ?", ids)
	}
	if err := del.Delete(p.row(uuid.Nil, uuid.Nil)).Error; err != nil {
		return fmt.Errorf("%s sync delete: %w", p.table, err)
	}

	for _, id := range ids {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(p.row(owner, id)).Error; err != nil {
			return fmt.Errorf("%s sync insert: %w", p.table, err)
		}
	}
	return nil
}

func (p pivot) ownerRef() joinRef   { return joinRef{table: p.table, column: p.ownerKey} }
func (p pivot) relatedRef() joinRef { return joinRef{table: p.table, column: p.relateKey} }

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
