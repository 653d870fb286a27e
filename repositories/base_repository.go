package repositories

import (
	"context"
	"errors"
	"strings"

	"formyap.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hata.
var ErrNotFound = errors.New("kayıt bulunamadı")

type contextKey string

const txContextKey contextKey = "tx"

// ContextWithTx repository çağrılarının verilen transaction'ı kullanmasını sağlar.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

// dbFromContext context'te transaction varsa onu, yoksa fallback'i döndürür.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}

// IBaseRepository modeller arası ortak sorgular için generik arayüz.
type IBaseRepository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
	OrderClause(sortBy, orderBy, fallback string) string
}

// BaseRepository IBaseRepository'nin gorm uygulaması.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]string
}

// NewBaseRepository yeni bir generik repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]string{}}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := dbFromContext(ctx, r.db).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BaseRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &entity, nil
}

// DeleteByIDs kayıtları kalıcı olarak siler ve silinen satır sayısını döndürür.
func (r *BaseRepository[T]) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var entity T
	result := dbFromContext(ctx, r.db).Where("id IN ?", ids).Delete(&entity)
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.DeleteByIDs: DB error", zap.Uints("ids", ids), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var entity T
	err := dbFromContext(ctx, r.db).Model(&entity).Count(&count).Error
	return count, err
}

// SetAllowedSortColumns sıralamada kullanılabilecek sütunları tanımlar ("alan" veya "alan:tablo.sutun").
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]string, len(columns))
	for _, c := range columns {
		key, column, found := strings.Cut(c, ":")
		if !found {
			column = key
		}
		r.allowedSortColumns[key] = column
	}
}

// OrderClause izin verilen sütunlardan güvenli bir ORDER BY ifadesi üretir.
func (r *BaseRepository[T]) OrderClause(sortBy, orderBy, fallback string) string {
	column, ok := r.allowedSortColumns[sortBy]
	if !ok {
		if sortBy != "" {
			configslog.SLog.Warnf("Geçersiz sıralama alanı istendi (%s), varsayılan kullanılıyor.", sortBy)
		}
		column = fallback
	}
	orderBy = strings.ToLower(orderBy)
	if orderBy != "asc" {
		orderBy = "desc"
	}
	return column + " " + orderBy
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
