package ioc

import (
	"net/http"
	"strings"

	"github.com/desikart/fulfillment/internal/media"
	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/payment"
	"github.com/desikart/fulfillment/internal/pkg/middleware"
	"github.com/desikart/fulfillment/internal/shipment"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	mb *middleware.MetricsBuilder,
	orderHdl *order.Handler,
	paymentHdl *payment.Handler,
	shipmentHdl *shipment.Handler,
	mediaHdl *media.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(mb.Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "desikart.in")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 网关与承运商回调不走会话
	paymentHdl.PublicRoutes(res.Engine)
	shipmentHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	orderHdl.PrivateRoutes(res.Engine)
	mediaHdl.PrivateRoutes(res.Engine)
	return res
}
