// Copyright 2024 desikart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrRecordChangedConcurrently 版本号CAS失败, 调用方需要重新读取后重试
	ErrRecordChangedConcurrently = errors.New("订单已被并发修改")
	ErrRecordNotFound            = gorm.ErrRecordNotFound
)

type OrderDAO interface {
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindByShippingPaymentLinkID(ctx context.Context, linkID string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	UpdateWithVersion(ctx context.Context, sn string, version int64, fields map[string]any) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderDAO{db: db}
}

type orderDAO struct {
	db *egorm.Component
}

func (g *orderDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if o.Version == 0 {
			o.Version = 1
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return o.Id, err
}

func (g *orderDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (g *orderDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).First(&res, "sn = ? AND buyer_id = ?", sn, buyerID).Error
	return res, err
}

func (g *orderDAO) FindByShippingPaymentLinkID(ctx context.Context, linkID string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).First(&res, "sp_link_id = ?", linkID).Error
	return res, err
}

func (g *orderDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := g.db.WithContext(ctx).Find(&res, "order_id = ?", orderID).Error
	return res, err
}

func (g *orderDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *orderDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&count).Error
	return count, err
}

func (g *orderDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *orderDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&count).Error
	return count, err
}

// UpdateWithVersion 所有对聚合的修改都必须带版本号走这里, 没有任何旁路写入
func (g *orderDAO) UpdateWithVersion(ctx context.Context, sn string, version int64, fields map[string]any) error {
	fields["Version"] = version + 1
	fields["Utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND version = ?", sn, version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordChangedConcurrently
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.WithContext(context.Background()).AutoMigrate(&Order{}, &OrderItem{})
}
