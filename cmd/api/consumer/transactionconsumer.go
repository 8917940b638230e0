package consumer

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/cmd/api/notification"
	"github.com/DavidArdelean7/ledger-api/cmd/api/transaction"
	"github.com/DavidArdelean7/ledger-api/internal/mq"
)

// TransactionConsumer drives the rule engine from transfer and
// withdrawal command messages.
type TransactionConsumer struct {
	Transfers   amqp.Queue
	Withdrawals amqp.Queue
	Concurrency int
	Publisher   *notification.Publisher
}

func (tc TransactionConsumer) StartConsume(conn mq.Conn, m *transaction.Manager) error {
	transfers, err := conn.Channel.Consume(tc.Transfers.Name, "transfer-consumer", false, false,
		false, false, nil,
	)
	if err != nil {
		return err
	}

	withdrawals, err := conn.Channel.Consume(tc.Withdrawals.Name, "withdrawal-consumer", false, false,
		false, false, nil,
	)
	if err != nil {
		return err
	}

	for i := 0; i < tc.Concurrency; i++ {
		go func() {
			for d := range transfers {
				if err2 := tc.handleTransfer(d, m); err2 != nil {
					_ = d.Nack(false, false)
				} else {
					_ = d.Ack(false)
				}
			}
		}()
	}

	for i := 0; i < tc.Concurrency; i++ {
		go func() {
			for w := range withdrawals {
				if err2 := tc.handleWithdraw(w, m); err2 != nil {
					_ = w.Nack(false, false)
				} else {
					_ = w.Ack(false)
				}
			}
		}()
	}

	return nil
}

func (tc TransactionConsumer) ClosedConnectionListener(cfg mq.Config, m *transaction.Manager, closed <-chan *amqp.Error) {
	err := <-closed
	if err == nil {
		log.Info("mq connection closed normally, will not reconnect")
		return
	}

	log.Errorf("closed mq connection: %v", err)

	reconnect := func() error {
		log.Info("attempting to reconnect to mq")

		conn, err := mq.NewConnection(cfg)
		if err != nil {
			return err
		}

		transfers, withdrawals, err := conn.DeclareQueues(cfg.Concurrency)
		if err != nil {
			return err
		}

		tc.Transfers = transfers
		tc.Withdrawals = withdrawals

		return tc.StartConsume(conn, m)
	}

	if err := retry.Do(reconnect, retry.Attempts(uint(cfg.MaxReconnect)), retry.Delay(1*time.Second)); err != nil {
		log.Error("reached max attempts, unable to reconnect to mq")
		return
	}

	log.Info("reconnected to mq")
}

func (tc TransactionConsumer) handleTransfer(d amqp.Delivery, m *transaction.Manager) error {
	var payload TransferMessage

	r := bytes.NewReader(d.Body)
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return errors.New("invalid message payload, unable to parse")
	}

	if payload.Amount.IsNegative() {
		return errors.New("transfer amount can't be negative")
	}

	txs, err := m.Transfer(payload.FromID, payload.ToID, money.New(payload.Amount, payload.Currency), payload.AuthCode)
	if err != nil {
		log.Warnf("transfer from account %s to account %s was rejected: %v", payload.FromID, payload.ToID, err)
		return err
	}

	tc.Publisher.PublishCommitted(transaction.Transfer, txs...)

	log.Infof("successfully transferred %s %s from account %s to account %s",
		payload.Amount, payload.Currency, payload.FromID, payload.ToID)
	return nil
}

func (tc TransactionConsumer) handleWithdraw(d amqp.Delivery, m *transaction.Manager) error {
	var payload WithdrawMessage

	r := bytes.NewReader(d.Body)
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return errors.New("invalid message payload, unable to parse")
	}

	if payload.Amount.IsNegative() {
		return errors.New("withdrawal amount can't be negative")
	}

	tx, err := m.Withdraw(payload.AccountID, money.New(payload.Amount, payload.Currency), payload.AuthCode)
	if err != nil {
		log.Warnf("withdrawal from account %s was rejected: %v", payload.AccountID, err)
		return err
	}

	tc.Publisher.PublishCommitted(transaction.Withdraw, tx)

	log.Infof("successfully withdrew %s %s from account %s", payload.Amount, payload.Currency, payload.AccountID)
	return nil
}
