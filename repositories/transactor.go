package repositories

import (
	"context"

	"formyap.link/configs"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repositories/mock_repositories.go -package=mock_repositories formyap.link/repositories IFormRepository,ISubmissionRepository,IAdminUserRepository,ITransactor

// ITransactor birden fazla repository çağrısını tek transaction içinde çalıştırır.
// fn'e verilen context, repository'lerin aynı tx'i kullanmasını sağlar.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type GormTransactor struct {
	db *gorm.DB
}

func NewTransactor() ITransactor {
	return NewTransactorWithDB(configs.GetDB())
}

func NewTransactorWithDB(db *gorm.DB) ITransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTx(ctx, tx))
	})
}

var _ ITransactor = (*GormTransactor)(nil)
