package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, map[string]bool{"ok": true})
	}
}
