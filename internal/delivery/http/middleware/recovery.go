package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"hospital-management-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type Recovery struct {
	log *logrus.Logger
}

func NewRecovery(log *logrus.Logger) *Recovery {
	return &Recovery{log: log}
}

// Handle turns a handler panic into a 500 envelope
func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if r := recover(); r != nil {
				var stack [4096]byte
				n := runtime.Stack(stack[:], false)

				requestID, _ := GetRequestIDFromContext(req.Context())
				m.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"panic":      fmt.Sprintf("%v", r),
					"stack":      string(stack[:n]),
				}).Error("panic recovered")

				response.InternalServerError(w, "")
			}
		}()

		next.ServeHTTP(w, req)
	})
}
