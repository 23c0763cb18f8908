// Package model holds the GORM table mappings of the entity records.
package model

// All lists every model managed by migrations.
func All() []any {
	return []any{
		&UserModel{},
		&LocationModel{},
		&CrowdLevelModel{},
		&CheckInModel{},
		&ReviewModel{},
		&FavoriteModel{},
	}
}
