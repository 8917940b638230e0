package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/DavidArdelean7/ledger-api/cmd/api/consumer"
	"github.com/DavidArdelean7/ledger-api/cmd/api/handler"
	"github.com/DavidArdelean7/ledger-api/cmd/api/notification"
	"github.com/DavidArdelean7/ledger-api/cmd/api/savings"
	"github.com/DavidArdelean7/ledger-api/cmd/api/seed"
	"github.com/DavidArdelean7/ledger-api/cmd/api/transaction"
	"github.com/DavidArdelean7/ledger-api/internal/cache"
	"github.com/DavidArdelean7/ledger-api/internal/clock"
	"github.com/DavidArdelean7/ledger-api/internal/env"
	"github.com/DavidArdelean7/ledger-api/internal/mq"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

func main() {
	log.SetFormatter(&log.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})

	envCfg := env.GetEnvCfg()

	st := store.NewAccountStore()
	cl := clock.Real()
	seed.Run(st, cl)

	tm := transaction.NewManager(st, cl)
	sm := savings.NewManager(st, cl)

	redis := cache.NewConnection(cache.Config{
		Host: envCfg.RedisHost,
		Pass: envCfg.RedisPass,
		Port: envCfg.RedisPort,
	})
	if redis == nil {
		log.Warn("running without balance cache")
	}

	var notifier *notification.Publisher

	mqCfg := mq.Config{
		User:         envCfg.MQUser,
		Pass:         envCfg.MQPass,
		Host:         envCfg.MQHost,
		Port:         envCfg.MQPort,
		Concurrency:  envCfg.Concurrency,
		MaxReconnect: envCfg.MaxReconnect,
	}
	conn, err := mq.NewConnection(mqCfg)
	if err != nil {
		log.Warnf("error connecting to mq, running without consumers and notifications: %v", err)
	} else {
		defer func() {
			if err := conn.Channel.Close(); err != nil {
				log.Errorf("error closing mq channel: %v", err)
			}
		}()

		transfers, withdrawals, err := conn.DeclareQueues(mqCfg.Concurrency)
		if err != nil {
			log.Errorf("error declaring queues: %v", err)
			return
		}

		notifier = notification.NewPublisher(conn)
		tc := consumer.TransactionConsumer{
			Transfers:   transfers,
			Withdrawals: withdrawals,
			Concurrency: mqCfg.Concurrency,
			Publisher:   notifier,
		}

		if err = tc.StartConsume(conn, tm); err != nil {
			log.Errorf("error starting consumers: %v", err)
			return
		}
		go tc.ClosedConnectionListener(mqCfg, tm, conn.Channel.NotifyClose(make(chan *amqp.Error)))
	}

	server := http.Server{
		Addr:           fmt.Sprintf(":%d", envCfg.Port),
		Handler:        handler.NewApplication(st, tm, sm, redis, notifier),
		ReadTimeout:    envCfg.ReadTimeout,
		WriteTimeout:   envCfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Infof("server started successfully, listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("server failed to start: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), envCfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Warnf("shutdown: graceful shutdown did not complete in %v: %v", envCfg.ShutdownTimeout, err)

		if err := server.Close(); err != nil {
			log.Warnf("shutdown: error killing server: %v", err)
		}
	}
}
