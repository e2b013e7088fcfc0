package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

// Consumer 后台事件消费者, 随应用启动
type Consumer interface {
	Start(ctx context.Context)
}

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
}
