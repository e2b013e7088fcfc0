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

type WebhookEventDAO interface {
	// InsertIgnore 返回true表示该事件第一次出现
	InsertIgnore(ctx context.Context, evt WebhookEvent) (bool, error)
	Delete(ctx context.Context, source, eventID string) error
}

func NewWebhookEventGORMDAO(db *egorm.Component) WebhookEventDAO {
	return &gormWebhookEventDAO{db: db}
}

type gormWebhookEventDAO struct {
	db *egorm.Component
}

// InsertIgnore 用唯一索引冲突判断事件是否已经处理过,
// 去重必须发生在任何状态写入之前
func (g *gormWebhookEventDAO) InsertIgnore(ctx context.Context, evt WebhookEvent) (bool, error) {
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

func (g *gormWebhookEventDAO) Delete(ctx context.Context, source, eventID string) error {
	return g.db.WithContext(ctx).
		Where("source = ? AND event_id = ?", source, eventID).
		Delete(&WebhookEvent{}).Error
}

// WebhookEvent 网关webhook事件流水, 按外部事件ID去重
type WebhookEvent struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	EventId string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_source_event_id,priority:2;comment:网关侧事件唯一标识"`
	Source  string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_source_event_id,priority:1;comment:事件来源 gateway/payment_link"`
	Payload string `gorm:"type:text;comment:原始报文"`
	Ctime   int64
	Utime   int64
}

func (WebhookEvent) TableName() string {
	return "payment_webhook_events"
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&WebhookEvent{})
}
