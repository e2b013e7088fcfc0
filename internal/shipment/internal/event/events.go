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

package event

const StageEventName = "shipment-stage-events"

// StageCompletedEvent 异步阶段的完成通知, 失败时Error非空
type StageCompletedEvent struct {
	OrderSN    string `json:"orderSN"`
	Stage      string `json:"stage"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	ShipmentID int64  `json:"shipmentID,omitempty"`
	AWBCode    string `json:"awbCode,omitempty"`
	FinishedAt int64  `json:"finishedAt"`
}
