package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supernova0730/mbsms/adapters/logger"
	"github.com/supernova0730/mbsms/adapters/server/https"
	"github.com/supernova0730/mbsms/adapters/sms"
)

type St struct {
	lg  logger.Lite
	sms sms.Sms
}

func GetHandler(lg logger.Lite, sms sms.Sms, withCors bool) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(https.MwRecovery(lg, nil))

	if withCors {
		r.Use(https.MwCors())
	}

	s := &St{
		lg:  lg,
		sms: sms,
	}

	r.GET("/", s.hForm)
	r.POST("/sms", s.hSend)
	r.GET("/balance", s.hBalance)

	return r
}
