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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desikart/fulfillment/internal/media"
	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier"
	"github.com/desikart/fulfillment/internal/shipment/internal/domain"
	"github.com/desikart/fulfillment/internal/shipment/internal/event"
	"github.com/desikart/fulfillment/internal/shipment/internal/repository"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrOrderNotFound          = order.ErrOrderNotFound
	ErrConcurrentModification = order.ErrConcurrentModification
	// ErrStageInProgress 同一订单同一阶段已有执行在途
	ErrStageInProgress = errors.New("该发货阶段正在执行")
	// ErrPreconditionNotMet 前置阶段未完成
	ErrPreconditionNotMet = errors.New("发货阶段前置条件不满足")
	// ErrUnknownStage 阶段名非法
	ErrUnknownStage = errors.New("未知的发货阶段")
)

const (
	// 阶段锁TTL, 覆盖单次承运商调用的最长耗时
	stageLockTTL = 60 * time.Second
	// 异步执行的单次超时
	stageTimeout     = 30 * time.Second
	maxCASRetries    = 3
	maxPackageImages = 5
)

type SavePackageCommand struct {
	OrderSN string
	Length  float64
	Breadth float64
	Height  float64
	Weight  float64
	Notes   string
	Images  []string
	Actor   string
}

type Service interface {
	// Trigger 立即返回, 阶段在后台执行, 结果通过事件与轮询暴露
	Trigger(ctx context.Context, orderSN string, stage domain.Stage) error
	// Execute 同步执行单个阶段, 幂等
	Execute(ctx context.Context, orderSN string, stage domain.Stage) (order.ShipmentRecord, error)
	FindShipment(ctx context.Context, orderSN string) (order.ShipmentRecord, error)
	SavePackage(ctx context.Context, cmd SavePackageCommand) error
	MarkTrackingUpdated(ctx context.Context, cb domain.TrackingCallback) error
}

func NewService(orderSvc order.Service,
	carrierClient carrier.Client,
	trackingRepo repository.TrackingEventRepository,
	mediaSvc media.Service,
	producer event.StageEventProducer,
	cache ecache.Cache,
	pickupLocation string) Service {
	return &service{
		orderSvc:       orderSvc,
		carrier:        carrierClient,
		trackingRepo:   trackingRepo,
		mediaSvc:       mediaSvc,
		producer:       producer,
		cache:          cache,
		pickupLocation: pickupLocation,
		l:              elog.DefaultLogger,
	}
}

type service struct {
	orderSvc       order.Service
	carrier        carrier.Client
	trackingRepo   repository.TrackingEventRepository
	mediaSvc       media.Service
	producer       event.StageEventProducer
	cache          ecache.Cache
	pickupLocation string
	l              *elog.Component
}

func (s *service) Trigger(ctx context.Context, orderSN string, stage domain.Stage) error {
	if _, ok := domain.StageFromString(string(stage)); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStage, stage)
	}
	// 先确认订单存在, 给调用方同步反馈
	if _, err := s.orderSvc.FindOrderBySN(ctx, orderSN); err != nil {
		return err
	}
	key := s.lockKey(orderSN, stage)
	locked, err := s.cache.SetNX(ctx, key, 1, stageLockTTL)
	if err != nil {
		return fmt.Errorf("获取阶段锁失败: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w: %s %s", ErrStageInProgress, orderSN, stage)
	}
	// 摆脱请求生命周期, 有独立超时
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		defer func() {
			_, _ = s.cache.Delete(bgCtx, key)
		}()
		execCtx, cancel := context.WithTimeout(bgCtx, stageTimeout)
		defer cancel()
		record, er := s.Execute(execCtx, orderSN, stage)
		evt := event.StageCompletedEvent{
			OrderSN:    orderSN,
			Stage:      string(stage),
			Success:    er == nil,
			ShipmentID: record.ShipmentID,
			AWBCode:    record.AWBCode,
			FinishedAt: time.Now().UnixMilli(),
		}
		if er != nil {
			evt.Error = er.Error()
			s.l.Error("发货阶段执行失败",
				elog.String("orderSN", orderSN),
				elog.String("stage", string(stage)),
				elog.FieldErr(er))
		}
		if per := s.producer.Produce(bgCtx, evt); per != nil {
			s.l.Error("发布阶段完成事件失败",
				elog.String("orderSN", orderSN),
				elog.String("stage", string(stage)),
				elog.FieldErr(per))
		}
	}()
	return nil
}

func (s *service) lockKey(orderSN string, stage domain.Stage) string {
	return fmt.Sprintf("shipment:stage:%s:%s", orderSN, stage)
}

func (s *service) Execute(ctx context.Context, orderSN string, stage domain.Stage) (order.ShipmentRecord, error) {
	o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	switch stage {
	case domain.StageCreateOrder:
		return s.createShipment(ctx, o)
	case domain.StageAssignAWB:
		return s.assignAWB(ctx, o)
	case domain.StageGeneratePickup:
		return s.generatePickup(ctx, o)
	case domain.StageGenerateLabel:
		return s.generateLabel(ctx, o)
	case domain.StageGenerateInvoice:
		return s.generateInvoice(ctx, o)
	case domain.StageGenerateManifest:
		return s.generateManifest(ctx, o)
	default:
		return order.ShipmentRecord{}, fmt.Errorf("%w: %s", ErrUnknownStage, stage)
	}
}

// createShipment 已有shipmentId时不再调用承运商, 原样返回
func (s *service) createShipment(ctx context.Context, o order.Order) (order.ShipmentRecord, error) {
	if o.Shipment.ShipmentID != 0 {
		return o.Shipment, nil
	}
	if o.Status != order.StatusConfirmed && o.Status != order.StatusProcessing {
		return order.ShipmentRecord{}, fmt.Errorf("%w: 订单状态%s不允许创建运单", ErrPreconditionNotMet, o.Status)
	}
	payload, err := buildCreateOrderPayload(o, s.pickupLocation)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	res, err := s.carrier.CreateOrder(ctx, payload)
	if err != nil {
		if !errors.Is(err, carrier.ErrOrderAlreadyExists) {
			return order.ShipmentRecord{}, err
		}
		// 上次创建已在承运商侧生效但本地没落库, 反查找回标识
		res, err = s.carrier.LookupOrder(ctx, o.SN)
		if err != nil {
			return order.ShipmentRecord{}, err
		}
	}
	return s.saveShipment(ctx, o.SN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.ShipmentID = res.ShipmentID
		cur.CarrierOrderID = res.OrderID
		cur.Status = order.ShipmentStatusOrderCreated
		return cur
	})
}

func (s *service) assignAWB(ctx context.Context, o order.Order) (order.ShipmentRecord, error) {
	if o.Shipment.AWBCode != "" {
		return o.Shipment, nil
	}
	if o.Shipment.ShipmentID == 0 {
		return order.ShipmentRecord{}, fmt.Errorf("%w: 必须先创建运单", ErrPreconditionNotMet)
	}
	res, err := s.carrier.AssignAWB(ctx, o.Shipment.ShipmentID)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	return s.saveShipment(ctx, o.SN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.AWBCode = res.AWBCode
		cur.CourierName = res.CourierName
		cur.Status = order.ShipmentStatusAWBAssigned
		return cur
	})
}

// generatePickup 揽收只会成功预约一次, PickupAt非零即已预约
func (s *service) generatePickup(ctx context.Context, o order.Order) (order.ShipmentRecord, error) {
	if o.Shipment.PickupAt != 0 {
		return o.Shipment, nil
	}
	if o.Shipment.AWBCode == "" {
		return order.ShipmentRecord{}, fmt.Errorf("%w: 必须先分配AWB", ErrPreconditionNotMet)
	}
	if _, err := s.carrier.GeneratePickup(ctx, o.Shipment.ShipmentID); err != nil {
		return order.ShipmentRecord{}, err
	}
	now := time.Now().UnixMilli()
	return s.saveShipment(ctx, o.SN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.PickupAt = now
		cur.Status = order.ShipmentStatusPickupGenerated
		return cur
	})
}

func (s *service) generateLabel(ctx context.Context, o order.Order) (order.ShipmentRecord, error) {
	if o.Shipment.LabelURL != "" {
		return o.Shipment, nil
	}
	if o.Shipment.ShipmentID == 0 {
		return order.ShipmentRecord{}, fmt.Errorf("%w: 必须先创建运单", ErrPreconditionNotMet)
	}
	res, err := s.carrier.GenerateLabel(ctx, o.Shipment.ShipmentID)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	return s.saveShipment(ctx, o.SN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.LabelURL = res.URL
		cur.Status = order.ShipmentStatusLabelReady
		return cur
	})
}

func (s *service) generateInvoice(ctx context.Context, o order.Order) (order.ShipmentRecord, error) {
	if o.Shipment.InvoiceURL != "" {
		return o.Shipment, nil
	}
	if o.Shipment.ShipmentID == 0 {
		return order.ShipmentRecord{}, fmt.Errorf("%w: 必须先创建运单", ErrPreconditionNotMet)
	}
	res, err := s.carrier.GenerateInvoice(ctx, o.Shipment.CarrierOrderID)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	return s.saveShipment(ctx, o.SN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.InvoiceURL = res.URL
		cur.Status = order.ShipmentStatusInvoiceReady
		return cur
	})
}

func (s *service) generateManifest(ctx context.Context, o order.Order) (order.ShipmentRecord, error) {
	if o.Shipment.ManifestURL != "" {
		return o.Shipment, nil
	}
	if o.Shipment.ShipmentID == 0 {
		return order.ShipmentRecord{}, fmt.Errorf("%w: 必须先创建运单", ErrPreconditionNotMet)
	}
	res, err := s.carrier.GenerateManifest(ctx, o.Shipment.ShipmentID)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	return s.saveShipment(ctx, o.SN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.ManifestURL = res.URL
		cur.Status = order.ShipmentStatusManifestReady
		return cur
	})
}

// saveShipment 每次提交前重读订单, 把本阶段的变更叠加在最新运单快照上,
// 禁止用阶段开始时的旧快照整体覆盖, 否则会抹掉并发阶段已落库的字段
func (s *service) saveShipment(ctx context.Context, sn string,
	apply func(cur order.ShipmentRecord) order.ShipmentRecord) (order.ShipmentRecord, error) {
	var err error
	for i := 0; i < maxCASRetries; i++ {
		var o order.Order
		o, err = s.orderSvc.FindOrderBySN(ctx, sn)
		if err != nil {
			return order.ShipmentRecord{}, err
		}
		record := apply(o.Shipment)
		err = s.orderSvc.SaveShipment(ctx, sn, o.Version, record)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, order.ErrConcurrentModification) {
			return order.ShipmentRecord{}, err
		}
	}
	return order.ShipmentRecord{}, err
}

func (s *service) FindShipment(ctx context.Context, orderSN string) (order.ShipmentRecord, error) {
	o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return order.ShipmentRecord{}, err
	}
	return o.Shipment, nil
}

// SavePackage 图片上限5张, 被移除的远端图片尽力删除, 删除失败不影响保存
func (s *service) SavePackage(ctx context.Context, cmd SavePackageCommand) error {
	var fe validation.FieldErrors
	if len(cmd.Images) > maxPackageImages {
		fe.Add("images", fmt.Sprintf("打包照片最多%d张", maxPackageImages))
	}
	if cmd.Length <= 0 || cmd.Breadth <= 0 || cmd.Height <= 0 {
		fe.Add("dimensions", "长宽高必须大于0")
	}
	if cmd.Weight <= 0 {
		fe.Add("weight", "重量必须大于0")
	}
	if err := fe.AsError(); err != nil {
		return err
	}
	o, err := s.orderSvc.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return err
	}
	removed := slice.DiffSet(o.Package.Images, cmd.Images)
	pkg := order.ShippingPackage{
		Length:   cmd.Length,
		Breadth:  cmd.Breadth,
		Height:   cmd.Height,
		Weight:   cmd.Weight,
		Notes:    cmd.Notes,
		Images:   cmd.Images,
		PackedAt: time.Now().UnixMilli(),
	}
	if err = s.orderSvc.SavePackage(ctx, o.SN, o.Version, pkg); err != nil {
		return err
	}
	for _, img := range removed {
		if er := s.mediaSvc.DeleteObject(ctx, img); er != nil {
			s.l.Warn("删除已移除的打包照片失败",
				elog.String("orderSN", cmd.OrderSN),
				elog.String("image", img),
				elog.FieldErr(er))
		}
	}
	return nil
}

// MarkTrackingUpdated 轨迹推送与生成类阶段没有顺序约束
func (s *service) MarkTrackingUpdated(ctx context.Context, cb domain.TrackingCallback) error {
	first, err := s.trackingRepo.MarkReceived(ctx, cb)
	if err != nil {
		return fmt.Errorf("记录轨迹事件失败: %w", err)
	}
	if !first {
		s.l.Info("忽略重复的轨迹推送", elog.String("eventID", cb.EventID))
		return nil
	}
	_, err = s.saveShipment(ctx, cb.OrderSN, func(cur order.ShipmentRecord) order.ShipmentRecord {
		cur.Status = order.ShipmentStatusTrackingUpdated
		return cur
	})
	if err != nil {
		// 状态没落下去, 释放去重标记让承运商的重推有机会重放
		if der := s.trackingRepo.Unmark(ctx, cb.EventID); der != nil {
			s.l.Error("释放轨迹去重标记失败",
				elog.String("eventID", cb.EventID),
				elog.FieldErr(der))
		}
	}
	return err
}
