package gorm

import (
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func toStrings[T ~string](values []T) []string {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		strs = append(strs, string(v))
	}
	return strs
}

func fromStrings[T ~string](values []string) []T {
	typed := make([]T, 0, len(values))
	for _, v := range values {
		typed = append(typed, T(v))
	}
	return typed
}

// sortByIDs reorders items to follow ids, dropping unknown ones.
func sortByIDs[T any, ID ~string](items []T, ids []ID, getID func(T) string) []T {
	index := make(map[string]T, len(items))
	for _, item := range items {
		index[getID(item)] = item
	}

	sorted := make([]T, 0, len(ids))
	for _, id := range ids {
		item, exists := index[string(id)]
		if !exists {
			continue
		}
		sorted = append(sorted, item)
	}

	return sorted
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// nextPosition returns the position following the last row of an ordered
// reference list.
func nextPosition(db *gorm.DB, model any, column string, value string) (int, error) {
	var last sql.NullInt64

	if err := db.Model(model).Where(column+" = ?", value).Select("MAX(position)").Scan(&last).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	if !last.Valid {
		return 0, nil
	}

	return int(last.Int64) + 1, nil
}
