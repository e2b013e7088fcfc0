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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackingEventDAO interface {
	// InsertIgnore 返回true表示该推送第一次出现
	InsertIgnore(ctx context.Context, evt TrackingEvent) (bool, error)
	Delete(ctx context.Context, eventID string) error
}

func NewTrackingEventGORMDAO(db *egorm.Component) TrackingEventDAO {
	return &gormTrackingEventDAO{db: db}
}

type gormTrackingEventDAO struct {
	db *egorm.Component
}

func (g *gormTrackingEventDAO) InsertIgnore(ctx context.Context, evt TrackingEvent) (bool, error) {
	now := time.Now().UnixMilli()
	evt.Ctime, evt.Utime = now, now
	res := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&evt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (g *gormTrackingEventDAO) Delete(ctx context.Context, eventID string) error {
	return g.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&TrackingEvent{}).Error
}

// TrackingEvent 承运商轨迹推送流水, 按事件ID去重
type TrackingEvent struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	EventId       string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_event_id;comment:承运商侧事件唯一标识"`
	OrderSn       string `gorm:"type:varchar(64);not null;index:idx_order_sn;comment:订单序列号"`
	AwbCode       string `gorm:"type:varchar(64);comment:运单号"`
	CarrierStatus string `gorm:"type:varchar(64);comment:承运商侧状态"`
	Ctime         int64
	Utime         int64
}

func (TrackingEvent) TableName() string {
	return "carrier_tracking_events"
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&TrackingEvent{})
}
