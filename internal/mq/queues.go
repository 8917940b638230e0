package mq

import (
	"github.com/streadway/amqp"
)

const (
	paymentsExchangeName = "payments"
	transferQueueName    = "transfers"
	withdrawalQueueName  = "withdrawals"
	kind                 = "topic"
	transferRouteKey     = "trnsfr"
	withdrawalRouteKey   = "wit"
)

// DeclareQueues sets up the payments exchange with the transfer and
// withdrawal command queues consumed by the transaction consumer.
func (conn Conn) DeclareQueues(concurrency int) (amqp.Queue, amqp.Queue, error) {
	err := conn.Channel.ExchangeDeclare(paymentsExchangeName, kind, true, false, false, false, nil)
	if err != nil {
		return amqp.Queue{}, amqp.Queue{}, err
	}

	transfer, err := conn.Channel.QueueDeclare(transferQueueName, true, false, false, false, nil)
	if err != nil {
		return amqp.Queue{}, amqp.Queue{}, err
	}

	err = conn.Channel.QueueBind(transferQueueName, transferRouteKey, paymentsExchangeName, false, nil)
	if err != nil {
		return amqp.Queue{}, amqp.Queue{}, err
	}

	withdrawal, err := conn.Channel.QueueDeclare(withdrawalQueueName, true, false, false, false, nil)
	if err != nil {
		return amqp.Queue{}, amqp.Queue{}, err
	}

	err = conn.Channel.QueueBind(withdrawalQueueName, withdrawalRouteKey, paymentsExchangeName, false, nil)
	if err != nil {
		return amqp.Queue{}, amqp.Queue{}, err
	}

	prefetchCount := concurrency * 4
	if err = conn.Channel.Qos(prefetchCount, 0, false); err != nil {
		return amqp.Queue{}, amqp.Queue{}, err
	}

	return transfer, withdrawal, nil
}
