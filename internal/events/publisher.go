package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// TransactionCreated 交易落库成功后对外广播的消息体
type TransactionCreated struct {
	Kind          string    `json:"kind"` // expense | income
	UserID        uint      `json:"user_id"`
	TransactionID uint      `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
}

// Publisher 发布失败只记日志，绝不让请求失败
type Publisher interface {
	PublishTransactionCreated(ctx context.Context, ev TransactionCreated) error
}

// NoopPublisher 未配置 amqp.url 时的空实现
type NoopPublisher struct{}

func (NoopPublisher) PublishTransactionCreated(context.Context, TransactionCreated) error {
	return nil
}

// AMQPPublisher 把交易事件发到一个持久化队列
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewAMQPPublisher(url, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	queue, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPPublisher{conn: conn, channel: ch, queue: queue}, nil
}

func (p *AMQPPublisher) PublishTransactionCreated(ctx context.Context, ev TransactionCreated) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		"",           // default exchange
		p.queue.Name, // routing key = 队列名
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *AMQPPublisher) Close() {
	p.channel.Close()
	p.conn.Close()
}
