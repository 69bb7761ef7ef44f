package https

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	cors "github.com/rs/cors/wrapper/gin"
	"github.com/supernova0730/mbsms/adapters/logger"
	"github.com/supernova0730/mbsms/mbErrs"
	"github.com/supernova0730/mbsms/mbTypes"
)

const (
	ReadHeaderTimeout = 10 * time.Second
	ReadTimeout       = 2 * time.Minute
	MaxHeaderBytes    = 300 * 1024
)

type St struct {
	lg logger.Lite

	addr   string
	server *http.Server
	eChan  chan error
}

func Start(addr string, handler http.Handler, lg logger.Lite) *St {
	s := &St{
		lg:   lg,
		addr: addr,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			MaxHeaderBytes:    MaxHeaderBytes,
		},
		eChan: make(chan error, 1),
	}

	s.lg.Infow("Start http-server", "addr", s.server.Addr)

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.lg.Errorw("Http server closed", err)
			s.eChan <- err
		}
	}()

	return s
}

func (s *St) Wait() <-chan error {
	return s.eChan
}

func (s *St) Shutdown(timeout time.Duration) bool {
	defer close(s.eChan)

	ctx, ctxCancel := context.WithTimeout(context.Background(), timeout)
	defer ctxCancel()

	err := s.server.Shutdown(ctx)
	if err != nil {
		s.lg.Errorw("Fail to shutdown http-server", err, "addr", s.addr)
		return false
	}

	return true
}

func Error(c *gin.Context, err error) bool {
	if err != nil {
		_ = c.Error(err)
		return true
	}
	return false
}

// BindForm binds and validates the request into obj. Failed `binding` rules
// are reported as mbErrs.FormErr keyed by the `form` names of the fields.
func BindForm(c *gin.Context, obj any) bool {
	err := c.ShouldBind(obj)
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			Error(c, ValidationFormErr(obj, vErrs))
			return false
		}

		Error(c, mbErrs.ErrWithDesc{
			Err:  mbErrs.BadFormParams,
			Desc: err.Error(),
		})

		return false
	}

	return true
}

func ValidationFormErr(obj any, vErrs validator.ValidationErrors) mbErrs.FormErr {
	objType := reflect.Indirect(reflect.ValueOf(obj)).Type()

	fields := make(map[string]mbErrs.Err, len(vErrs))

	for _, fe := range vErrs {
		name := fe.Field()
		if sf, ok := objType.FieldByName(fe.StructField()); ok {
			if tag := strings.SplitN(sf.Tag.Get("form"), ",", 2)[0]; tag != "" && tag != "-" {
				name = tag
			}
		}

		if fe.Tag() == "required" {
			fields[name] = mbErrs.Required
		} else {
			fields[name] = mbErrs.InvalidArgument
		}
	}

	return mbErrs.FormErr{Fields: fields}
}

func MwRecovery(lg logger.WarnAndError, handler func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			var err error

			if recoverRep := recover(); recoverRep != nil { // recovery error
				var ok bool
				if err, ok = recoverRep.(error); !ok {
					err = errors.New(fmt.Sprint(recoverRep))
				}
			} else if gErr := c.Errors.Last(); gErr != nil { // gin error
				err = gErr.Err
			}

			if err == nil {
				return
			}

			if handler != nil {
				handler(c, err)
				return
			}

			RenderError(c, lg, err)
		}()

		c.Next()
	}
}

// RenderError maps mbErrs errors to 400 responses and anything else to 500.
func RenderError(c *gin.Context, lg logger.WarnAndError, err error) {
	var formErr mbErrs.FormErr
	var descErr mbErrs.ErrWithDesc
	var cErr mbErrs.Err

	switch {
	case errors.As(err, &formErr):
		fields := make(map[string]string, len(formErr.Fields))
		for k, v := range formErr.Fields {
			fields[k] = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, mbTypes.ErrRep{
			ErrorCode: mbErrs.FormValidate.Error(),
			Fields:    fields,
		})
	case errors.As(err, &descErr):
		c.AbortWithStatusJSON(statusFor(descErr.Err), mbTypes.ErrRep{
			ErrorCode: descErr.Err.Error(),
			Desc:      descErr.Desc,
		})
	case errors.As(err, &cErr):
		c.AbortWithStatusJSON(statusFor(cErr), mbTypes.ErrRep{
			ErrorCode: cErr.Error(),
		})
	default:
		lg.Errorw(
			"Error in http handler",
			err,
			"method", c.Request.Method,
			"path", c.Request.URL.String(),
		)

		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func statusFor(err mbErrs.Err) int {
	switch err {
	case mbErrs.TransportFailure, mbErrs.ResponseParseError, mbErrs.BadStatusCode, mbErrs.NotAuthorized:
		return http.StatusBadGateway
	case mbErrs.ServiceNA:
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

func MwCors() gin.HandlerFunc {
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           604800,
	})
}
