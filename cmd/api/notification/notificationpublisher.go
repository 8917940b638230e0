package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/DavidArdelean7/ledger-api/cmd/api/ledger"
	"github.com/DavidArdelean7/ledger-api/cmd/api/transaction"
	"github.com/DavidArdelean7/ledger-api/internal/mq"
)

const (
	exchangeName = "transaction-notifications"
	routeKey     = "notif"
)

type Notification struct {
	TransactionID string    `json:"transactionId"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Amount        string    `json:"amount"`
	Operation     string    `json:"operation"`
	CreatedAt     time.Time `json:"createdAt"`
	Ack           bool      `json:"ack"`
}

// Publisher emits an event per committed ledger record; a nil
// *Publisher drops events so the engines run without a broker.
type Publisher struct {
	conn mq.Conn
}

func NewPublisher(conn mq.Conn) *Publisher {
	_ = conn.Channel.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil)
	return &Publisher{conn: conn}
}

func (p *Publisher) PublishCommitted(op transaction.Operation, txs ...ledger.Transaction) {
	if p == nil {
		return
	}

	for _, tx := range txs {
		n := Notification{
			TransactionID: tx.ID,
			From:          tx.From,
			To:            tx.To,
			Amount:        tx.Amount.Display(),
			Operation:     op.String(),
			CreatedAt:     tx.Timestamp,
			Ack:           true,
		}

		body, err := json.Marshal(n)
		if err != nil {
			log.Warnf("failed to marshal notification: %v", err)
			continue
		}

		err = p.conn.Channel.Publish(exchangeName, routeKey, false, false, amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.New().String(),
			Body:         body,
			DeliveryMode: amqp.Transient,
		})
		if err != nil {
			log.Errorf("error sending notification to %s topic: %v", exchangeName, err)
		}
	}
}
