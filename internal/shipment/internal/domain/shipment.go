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

package domain

// Stage 发货编排的阶段, 每个阶段幂等且有前置条件
type Stage string

const (
	StageCreateOrder      Stage = "create_order"
	StageAssignAWB        Stage = "assign_awb"
	StageGeneratePickup   Stage = "generate_pickup"
	StageGenerateLabel    Stage = "generate_label"
	StageGenerateInvoice  Stage = "generate_invoice"
	StageGenerateManifest Stage = "generate_manifest"
)

func StageFromString(s string) (Stage, bool) {
	switch Stage(s) {
	case StageCreateOrder, StageAssignAWB, StageGeneratePickup,
		StageGenerateLabel, StageGenerateInvoice, StageGenerateManifest:
		return Stage(s), true
	default:
		return "", false
	}
}

// TrackingCallback 承运商的轨迹推送, EventID用于去重
type TrackingCallback struct {
	EventID       string
	OrderSN       string
	AWBCode       string
	CarrierStatus string
	OccurredAt    int64
}
