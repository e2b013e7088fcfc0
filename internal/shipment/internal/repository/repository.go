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

package repository

import (
	"context"

	"github.com/desikart/fulfillment/internal/shipment/internal/domain"
	"github.com/desikart/fulfillment/internal/shipment/internal/repository/dao"
)

type TrackingEventRepository interface {
	MarkReceived(ctx context.Context, cb domain.TrackingCallback) (firstTime bool, err error)
	// Unmark 状态应用失败后释放去重标记, 让重推可以重放
	Unmark(ctx context.Context, eventID string) error
}

func NewTrackingEventRepository(d dao.TrackingEventDAO) TrackingEventRepository {
	return &trackingEventRepository{d: d}
}

type trackingEventRepository struct {
	d dao.TrackingEventDAO
}

func (r *trackingEventRepository) MarkReceived(ctx context.Context, cb domain.TrackingCallback) (bool, error) {
	return r.d.InsertIgnore(ctx, dao.TrackingEvent{
		EventId:       cb.EventID,
		OrderSn:       cb.OrderSN,
		AwbCode:       cb.AWBCode,
		CarrierStatus: cb.CarrierStatus,
	})
}

func (r *trackingEventRepository) Unmark(ctx context.Context, eventID string) error {
	return r.d.Delete(ctx, eventID)
}
