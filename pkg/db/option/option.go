package option

import "gorm.io/gorm"

// QueryOption customizes a gorm query.
type QueryOption interface {
	Apply(db *gorm.DB) *gorm.DB
}

type optionFunc func(db *gorm.DB) *gorm.DB

func (f optionFunc) Apply(db *gorm.DB) *gorm.DB {
	return f(db)
}

func WithLimit(limit int) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	})
}

func WithOffset(offset int) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if offset <= 0 {
			return db
		}
		return db.Offset(offset)
	})
}

func WithOrderBy(order string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if order == "" {
			return db
		}
		return db.Order(order)
	})
}

func WithPreload(association string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if association == "" {
			return db
		}
		return db.Preload(association)
	})
}
