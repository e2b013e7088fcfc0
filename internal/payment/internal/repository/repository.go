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

	"github.com/desikart/fulfillment/internal/payment/internal/repository/dao"
)

type WebhookEventRepository interface {
	MarkReceived(ctx context.Context, source, eventID, payload string) (firstTime bool, err error)
	// Unmark 状态应用失败后释放去重标记, 让网关重投可以重放
	Unmark(ctx context.Context, source, eventID string) error
}

func NewWebhookEventRepository(d dao.WebhookEventDAO) WebhookEventRepository {
	return &webhookEventRepository{d: d}
}

type webhookEventRepository struct {
	d dao.WebhookEventDAO
}

func (r *webhookEventRepository) MarkReceived(ctx context.Context, source, eventID, payload string) (bool, error) {
	return r.d.InsertIgnore(ctx, dao.WebhookEvent{
		EventId: eventID,
		Source:  source,
		Payload: payload,
	})
}

func (r *webhookEventRepository) Unmark(ctx context.Context, source, eventID string) error {
	return r.d.Delete(ctx, source, eventID)
}
