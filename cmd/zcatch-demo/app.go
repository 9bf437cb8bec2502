package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/evan-idocoding/zcatch/httpx"
	"github.com/evan-idocoding/zcatch/ops"
	"github.com/evan-idocoding/zcatch/promsub"
	"github.com/evan-idocoding/zcatch/rt/errnotify"
	"github.com/evan-idocoding/zcatch/sink/zapsink"
)

type app struct {
	notifier *errnotify.Notifier
	registry *prometheus.Registry
	logger   *zap.Logger
}

func newApp(cfg errnotify.Config, logger *zap.Logger) (*app, error) {
	reg := prometheus.NewRegistry()
	metrics, err := promsub.New(reg)
	if err != nil {
		return nil, err
	}

	n := errnotify.New(errnotify.WithLogger(zapsink.New(logger)))
	n.InitConfig(cfg, []any{
		metrics,
		errnotify.Named{Name: "event-log", Func: eventLog(logger)},
	})

	return &app{notifier: n, registry: reg, logger: logger}, nil
}

// eventLog logs every caught error with a fresh event id and reports the id back.
func eventLog(logger *zap.Logger) errnotify.SubscriberFunc {
	return func(err error, opts any, fb errnotify.Failback) {
		id := uuid.NewString()
		logger.Error("caught error",
			zap.String("event_id", id),
			zap.Any("source", opts),
			zap.Error(err),
		)
		fb(nil, id)
	}
}

func requestSource(r *http.Request) any {
	return r.Method + " " + r.URL.Path
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(httpx.Recover(a.notifier, httpx.WithRequestOptions(requestSource)))

		r.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("hello\n"))
		})
		r.Get("/panic", func(http.ResponseWriter, *http.Request) {
			panic("demo panic")
		})
		r.Get("/divide", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			x, errA := strconv.Atoi(q.Get("a"))
			y, errB := strconv.Atoi(q.Get("b"))
			if errA != nil || errB != nil {
				http.Error(w, "a and b must be integers", http.StatusBadRequest)
				return
			}
			res := x / y
			_, _ = fmt.Fprintf(w, "%d\n", res)
		})
	})

	r.Post("/report", func(w http.ResponseWriter, req *http.Request) {
		msg := req.URL.Query().Get("msg")
		if msg == "" {
			http.Error(w, "missing msg", http.StatusBadRequest)
			return
		}
		a.notifier.Notify(errors.New(msg), "manual")
		w.WriteHeader(http.StatusNoContent)
	})

	r.Handle("/-/catch", ops.CatchStateHandler(a.notifier))
	r.Handle("/-/catch/set", ops.CatchStateSetHandler(a.notifier))
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	return r
}
